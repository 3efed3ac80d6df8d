package repositories

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/jrazmi/artisan/core/scaffolding/fop"
	"github.com/jrazmi/artisan/infrastructure/postgresdb"
	"github.com/jrazmi/artisan/sdk/logger"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicatedEntry = errors.New("duplicated entry")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidPage     = fop.ErrInvalidPage
)

// Model is an entity a Repository can be bound to. TableName identifies the
// backing table.
type Model interface {
	TableName() string
}

// Fields is a column name (or Go field name) to value mapping used for mass
// assignment.
type Fields map[string]any

// Fillable may be implemented by a Model to restrict mass assignment to the
// listed columns.
type Fillable interface {
	Fillable() []string
}

// Validator may be implemented by a Model to check a record before it is
// written.
type Validator interface {
	Validate() error
}

// Repositorer is the data access contract every Repository satisfies.
type Repositorer[T Model] interface {
	All(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id any) (T, error)
	Create(ctx context.Context, fields Fields) (T, error)
	UpdateByID(ctx context.Context, id any, fields Fields) (T, error)
	DeleteByID(ctx context.Context, id any) (T, error)
	Paginate(ctx context.Context, page fop.Page) (fop.PageResult[T], error)
}

// Repository provides generic CRUD access to one entity type. The query
// handle is created once in New and reused for every call; it carries no
// per-call filter state.
type Repository[T Model] struct {
	log      *logger.Logger
	query    *gorm.DB
	schema   *schema.Schema
	table    string
	fillable map[string]bool
}

// New binds a Repository to T, which must be a struct type rather than a
// pointer. T's schema is parsed with db's naming strategy and cached on db.
func New[T Model](log *logger.Logger, db *gorm.DB) (*Repository[T], error) {
	if typ := reflect.TypeFor[T](); typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("repository %s: model must be a struct type, got %s", typ, typ.Kind())
	}

	var model T
	table := model.TableName()

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&model); err != nil {
		return nil, fmt.Errorf("repository %s: parse schema: %w", table, err)
	}
	sch := stmt.Schema
	if sch.PrioritizedPrimaryField == nil {
		return nil, fmt.Errorf("repository %s: no primary key", table)
	}

	r := &Repository[T]{
		log:    log,
		query:  db.Model(new(T)).Session(&gorm.Session{}),
		schema: sch,
		table:  table,
	}

	if f, ok := any(&model).(Fillable); ok {
		r.fillable = make(map[string]bool)
		for _, name := range f.Fillable() {
			field := sch.LookUpField(name)
			if field == nil {
				return nil, fmt.Errorf("repository %s: fillable field %q not in schema", table, name)
			}
			r.fillable[field.DBName] = true
		}
	}

	return r, nil
}

// Query returns the bound query handle scoped to ctx, for custom queries in
// embedding repositories.
func (r *Repository[T]) Query(ctx context.Context) *gorm.DB {
	return r.query.WithContext(ctx)
}

// All returns every record. There is no ordering guarantee and no bound.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	if err := r.query.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%s all: %w", r.table, translate(err))
	}
	return records, nil
}

// FindByID returns the record with the given primary key or ErrNotFound.
func (r *Repository[T]) FindByID(ctx context.Context, id any) (T, error) {
	var record T
	err := r.query.WithContext(ctx).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		First(&record).Error
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s find %v: %w", r.table, id, translate(err))
	}
	return record, nil
}

// Create mass-assigns fields onto a new record and inserts it. The returned
// record carries store generated values such as the id and timestamps.
func (r *Repository[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var zero, record T

	if _, err := r.fill(ctx, &record, fields, true); err != nil {
		return zero, fmt.Errorf("%s create: %w", r.table, err)
	}
	if err := validate(&record); err != nil {
		return zero, fmt.Errorf("%s create: %w", r.table, err)
	}

	if err := r.query.WithContext(ctx).Model(&record).Create(&record).Error; err != nil {
		return zero, fmt.Errorf("%s create: %w", r.table, translate(err))
	}

	r.log.DebugContext(ctx, "repository: created", "table", r.table)
	return record, nil
}

// UpdateByID loads the record, assigns fields and persists only the columns
// that were assigned. ErrNotFound propagates when the id is unknown.
func (r *Repository[T]) UpdateByID(ctx context.Context, id any, fields Fields) (T, error) {
	var zero T

	record, err := r.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	columns, err := r.fill(ctx, &record, fields, false)
	if err != nil {
		return zero, fmt.Errorf("%s update %v: %w", r.table, id, err)
	}
	if len(columns) == 0 {
		return record, nil
	}
	if err := validate(&record); err != nil {
		return zero, fmt.Errorf("%s update %v: %w", r.table, id, err)
	}

	err = r.query.WithContext(ctx).
		Model(&record).
		Select(columns).
		Updates(&record).Error
	if err != nil {
		return zero, fmt.Errorf("%s update %v: %w", r.table, id, translate(err))
	}

	r.log.DebugContext(ctx, "repository: updated", "table", r.table, "id", id, "columns", columns)
	return record, nil
}

// DeleteByID removes the record and returns it as it was before deletion.
func (r *Repository[T]) DeleteByID(ctx context.Context, id any) (T, error) {
	var zero T

	record, err := r.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}

	if err := r.query.WithContext(ctx).Model(&record).Delete(&record).Error; err != nil {
		return zero, fmt.Errorf("%s delete %v: %w", r.table, id, translate(err))
	}

	r.log.DebugContext(ctx, "repository: deleted", "table", r.table, "id", id)
	return record, nil
}

// Paginate returns one page of records ordered by primary key together with
// the total record count. Pages past the end are empty.
func (r *Repository[T]) Paginate(ctx context.Context, page fop.Page) (fop.PageResult[T], error) {
	if err := page.Validate(); err != nil {
		return fop.PageResult[T]{}, fmt.Errorf("%s paginate: %w", r.table, err)
	}

	var total int64
	if err := r.query.WithContext(ctx).Count(&total).Error; err != nil {
		return fop.PageResult[T]{}, fmt.Errorf("%s paginate: count: %w", r.table, translate(err))
	}

	items := make([]T, 0)
	err := r.query.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&items).Error
	if err != nil {
		return fop.PageResult[T]{}, fmt.Errorf("%s paginate: %w", r.table, translate(err))
	}

	return fop.PageResult[T]{
		Items:      items,
		PageSize:   page.Size,
		PageNumber: page.Number,
		TotalCount: total,
	}, nil
}

// fill assigns the writable subset of fields onto record and returns the
// column names it set. Unknown, protected and non fillable keys are dropped.
func (r *Repository[T]) fill(ctx context.Context, record *T, fields Fields, creating bool) ([]string, error) {
	rv := reflect.ValueOf(record).Elem()
	columns := make([]string, 0, len(fields))

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		field := r.schema.LookUpField(key)
		if field == nil || !r.assignable(field, creating) {
			r.log.DebugContext(ctx, "repository: discarding field", "table", r.table, "field", key)
			continue
		}
		if err := field.Set(ctx, rv, fields[key]); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrValidation, key, err)
		}
		columns = append(columns, field.DBName)
	}

	return columns, nil
}

func (r *Repository[T]) assignable(field *schema.Field, creating bool) bool {
	switch {
	case field.DBName == "":
		return false
	case creating && !field.Creatable:
		return false
	case !creating && !field.Updatable:
		return false
	case r.fillable != nil:
		return r.fillable[field.DBName]
	default:
		return !field.PrimaryKey && field.AutoCreateTime == 0 && field.AutoUpdateTime == 0
	}
}

func validate(record any) error {
	v, ok := record.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// IsNotFound reports whether err means the record does not exist, either as
// ErrNotFound or as the raw gorm sentinel from a custom query.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// translate maps store errors onto the package sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicatedEntry, err)
	case errors.Is(postgresdb.HandlePgError(err), postgresdb.ErrDBDuplicatedEntry):
		return fmt.Errorf("%w: %w", ErrDuplicatedEntry, err)
	}
	return err
}
