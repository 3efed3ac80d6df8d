package usersrepo

import (
	"github.com/jrazmi/artisan/core/repositories"
	"github.com/jrazmi/artisan/sdk/logger"
	"gorm.io/gorm"
)

// Repository provides access to user storage. It embeds the generic
// repository for the standard operations and adds user specific lookups.
type Repository struct {
	*repositories.Repository[User]
}

var _ repositories.Repositorer[User] = (*Repository)(nil)

// NewRepository creates a new User repository
func NewRepository(log *logger.Logger, db *gorm.DB) (*Repository, error) {
	repo, err := repositories.New[User](log, db)
	if err != nil {
		return nil, err
	}
	return &Repository{Repository: repo}, nil
}
