package repositories_test

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/jrazmi/artisan/core/repositories"
	"github.com/jrazmi/artisan/core/scaffolding/fop"
	"github.com/jrazmi/artisan/infrastructure/databases/gormdb"
	"github.com/jrazmi/artisan/sdk/logger"
)

type post struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex"`
	Views     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (post) TableName() string { return "posts" }

type note struct {
	ID   uint `gorm:"primaryKey"`
	Body string
	Lock string
}

func (note) TableName() string  { return "notes" }
func (note) Fillable() []string { return []string{"body"} }
func (n note) Validate() error {
	if n.Body == "forbidden" {
		return fmt.Errorf("body is forbidden")
	}
	return nil
}

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gormdb.OpenSQLite(logger.NewDiscard(), filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = gormdb.Close(db) })
	require.NoError(t, db.AutoMigrate(&post{}, &note{}))
	return db
}

func newPosts(t *testing.T) *repositories.Repository[post] {
	t.Helper()
	repo, err := repositories.New[post](logger.NewDiscard(), newDB(t))
	require.NoError(t, err)
	return repo
}

func TestCreateThenFind(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	created, err := repo.Create(ctx, repositories.Fields{"title": "Hello", "slug": "hello", "Views": 3})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, 3, created.Views)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Title, found.Title)
	assert.Equal(t, created.Slug, found.Slug)
	assert.Equal(t, created.Views, found.Views)
	assert.WithinDuration(t, created.CreatedAt, found.CreatedAt, time.Second)
}

func TestCreateDiscardsProtectedFields(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	created, err := repo.Create(ctx, repositories.Fields{"id": 999, "title": "x", "slug": "x", "unknown": true})
	require.NoError(t, err)
	assert.NotEqual(t, uint(999), created.ID)
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	_, err := repo.Create(ctx, repositories.Fields{"title": "a", "slug": "same"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, repositories.Fields{"title": "b", "slug": "same"})
	require.ErrorIs(t, err, repositories.ErrDuplicatedEntry)
}

func TestFindByIDMissing(t *testing.T) {
	_, err := newPosts(t).FindByID(context.Background(), 42)
	require.ErrorIs(t, err, repositories.ErrNotFound)
	assert.True(t, repositories.IsNotFound(err))
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	created, err := repo.Create(ctx, repositories.Fields{"title": "draft", "slug": "draft", "views": 7})
	require.NoError(t, err)

	updated, err := repo.UpdateByID(ctx, created.ID, repositories.Fields{"title": "final", "views": 0})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, 0, updated.Views, "zero values are written when named")
	assert.Equal(t, "draft", updated.Slug, "unnamed columns are untouched")

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", found.Title)
	assert.Equal(t, 0, found.Views)
	assert.Equal(t, created.ID, found.ID)
}

func TestUpdateByIDMissing(t *testing.T) {
	_, err := newPosts(t).UpdateByID(context.Background(), 7, repositories.Fields{"title": "x"})
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	created, err := repo.Create(ctx, repositories.Fields{"title": "bye", "slug": "bye"})
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "bye", deleted.Title)

	_, err = repo.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.DeleteByID(ctx, created.ID)
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAll(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for i := range 3 {
		_, err := repo.Create(ctx, repositories.Fields{"title": fmt.Sprint(i), "slug": fmt.Sprint("s", i)})
		require.NoError(t, err)
	}

	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	for i := 1; i <= 25; i++ {
		_, err := repo.Create(ctx, repositories.Fields{"title": fmt.Sprintf("post %d", i), "slug": fmt.Sprintf("post-%d", i)})
		require.NoError(t, err)
	}

	page, err := repo.Paginate(ctx, fop.Page{Size: 10, Number: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 2, page.PageNumber)
	require.Len(t, page.Items, 10)
	for i, item := range page.Items {
		assert.Equal(t, fmt.Sprintf("post %d", 11+i), item.Title)
	}

	def, err := repo.Paginate(ctx, fop.DefaultPage())
	require.NoError(t, err)
	assert.Len(t, def.Items, 25)
	assert.Equal(t, 50, def.PageSize)
	assert.Equal(t, 1, def.PageNumber)

	past, err := repo.Paginate(ctx, fop.Page{Size: 10, Number: 9})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.Equal(t, int64(25), past.TotalCount)
}

func TestPaginateInvalid(t *testing.T) {
	repo := newPosts(t)

	_, err := repo.Paginate(context.Background(), fop.Page{Size: 0, Number: 1})
	require.ErrorIs(t, err, repositories.ErrInvalidPage)

	_, err = repo.Paginate(context.Background(), fop.Page{Size: 10, Number: 0})
	require.ErrorIs(t, err, repositories.ErrInvalidPage)

	_, err = repo.Paginate(context.Background(), fop.Page{Size: 10, Number: math.MaxInt/10 + 2})
	require.ErrorIs(t, err, repositories.ErrInvalidPage)
}

func TestFillableAndValidate(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.New[note](logger.NewDiscard(), newDB(t))
	require.NoError(t, err)

	created, err := repo.Create(ctx, repositories.Fields{"body": "hi", "lock": "secret"})
	require.NoError(t, err)
	assert.Equal(t, "hi", created.Body)
	assert.Empty(t, created.Lock, "non fillable column is discarded")

	_, err = repo.Create(ctx, repositories.Fields{"body": "forbidden"})
	require.ErrorIs(t, err, repositories.ErrValidation)

	_, err = repo.UpdateByID(ctx, created.ID, repositories.Fields{"body": "forbidden"})
	require.ErrorIs(t, err, repositories.ErrValidation)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", found.Body)
}

func TestQueryHandleCarriesNoState(t *testing.T) {
	ctx := context.Background()
	repo := newPosts(t)

	for i := range 3 {
		_, err := repo.Create(ctx, repositories.Fields{"title": fmt.Sprint(i), "slug": fmt.Sprint("q", i)})
		require.NoError(t, err)
	}

	var filtered []post
	require.NoError(t, repo.Query(ctx).Where("title = ?", "1").Find(&filtered).Error)
	assert.Len(t, filtered, 1)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3, "a custom filter must not leak into later calls")
}

func TestNewRejectsPointerModel(t *testing.T) {
	_, err := repositories.New[*post](logger.NewDiscard(), newDB(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a struct type")
}

func TestSchemaFollowsEachDatabaseNaming(t *testing.T) {
	ctx := context.Background()

	plain := newPosts(t)
	_, err := plain.Create(ctx, repositories.Fields{"Title": "plain", "Slug": "plain"})
	require.NoError(t, err)

	renamed, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "renamed.db")), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{NameReplacer: strings.NewReplacer("Title", "Headline")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gormdb.Close(renamed) })
	require.NoError(t, renamed.AutoMigrate(&post{}))
	require.True(t, renamed.Migrator().HasColumn(&post{}, "headline"))

	repo, err := repositories.New[post](logger.NewDiscard(), renamed)
	require.NoError(t, err)

	created, err := repo.Create(ctx, repositories.Fields{"Title": "renamed", "Slug": "renamed"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", found.Title)
}
