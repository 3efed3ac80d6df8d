package usersrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/artisan/core/repositories"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// FindByEmail returns the user registered under email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.Query(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return User{}, fmt.Errorf("users find by email: %w", notFound(err))
	}
	return user, nil
}

func notFound(err error) error {
	if repositories.IsNotFound(err) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, repositories.ErrNotFound)
	}
	return err
}
