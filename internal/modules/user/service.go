package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user with id = %d not found", ErrNotFound, id)
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) GetAll(ctx context.Context, offset, limit int) ([]domain.User, error) {
	return s.users.GetAll(ctx, limit, offset)
}

// Update patches the requester's own profile. Editing someone else's is
// rejected.
func (s *Service) Update(ctx context.Context, requesterID, userID int64, req UpdateUserRequest) (*domain.User, error) {
	if requesterID != userID {
		return nil, fmt.Errorf("%w: access denied for user %d", ErrForbidden, requesterID)
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}

	if err := s.users.Update(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, u.Email)
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, requesterID, userID int64) error {
	if requesterID != userID {
		return fmt.Errorf("%w: access denied for user %d", ErrForbidden, requesterID)
	}
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// isUniqueViolation matches the unique-email constraint on both backends:
// PgError 23505 on PostgreSQL, the driver message on SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
