package users

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/tulisify/tulisify/pkg/auth"
	"github.com/tulisify/tulisify/pkg/errcodes"
	"github.com/tulisify/tulisify/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles user operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new users service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// CreateUserOptions contains options for creating a user.
type CreateUserOptions struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Create creates a new user. Registration always passes RoleUser; the seed
// command is the only caller that creates admins.
func (s *Service) Create(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	exists, err := s.db.NewSelect().
		Model((*models.User)(nil)).
		Where("email = ? COLLATE NOCASE", opts.Email).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.FieldError("email", "Email has already been taken")
	}

	hashedPassword, err := auth.HashPassword(opts.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         opts.Name,
		Email:        opts.Email,
		PasswordHash: hashedPassword,
		Role:         opts.Role,
	}

	_, err = s.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Retrieve gets a user by ID.
func (s *Service) Retrieve(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, errcodes.NotFound("User")
	}
	return user, nil
}

// ListReadersOptions contains options for the admin user listing.
type ListReadersOptions struct {
	Search *string
	Limit  int
	Offset int
}

// ListReaders returns a paginated list of non-admin users, newest first, each
// carrying the count of books they have downloaded.
func (s *Service) ListReaders(ctx context.Context, opts ListReadersOptions) ([]*models.User, int, error) {
	users := []*models.User{}

	q := s.db.NewSelect().
		Model(&users).
		ColumnExpr("u.*").
		ColumnExpr("(SELECT COUNT(*) FROM book_downloads bd WHERE bd.user_id = u.id) AS download_count").
		Where("u.role = ?", models.RoleUser).
		Order("u.created_at DESC")

	if opts.Search != nil && *opts.Search != "" {
		search := "%" + *opts.Search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("u.name LIKE ? COLLATE NOCASE", search).
				WhereOr("u.email LIKE ? COLLATE NOCASE", search)
		})
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return users, total, nil
}
