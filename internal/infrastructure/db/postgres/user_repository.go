package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/buildservice/build-service/internal/core/domain"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

// UserRepository implements ports.UserRepository using PostgreSQL.
type UserRepository struct {
	db DBInterface
}

func NewUserRepository(db DBInterface) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.Insert("users").
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var created domain.User
	if err := pgxscan.Get(ctx, r.db, &created, query, args...); err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByEmail matches the email case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Expr("lower(email) = lower(?)", email))
}

func (r *UserRepository) findOne(ctx context.Context, pred squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var user domain.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	users := make([]*domain.User, 0)
	if err := pgxscan.Select(ctx, r.db, &users, query, args...); err != nil {
		return nil, fmt.Errorf("scanning users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": user.ID}).
		Suffix(returning(userColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var updated domain.User
	if err := pgxscan.Get(ctx, r.db, &updated, query, args...); err != nil {
		switch {
		case pgxscan.NotFound(err):
			return nil, domain.ErrUserNotFound
		case pgErrorCode(err) == codeUniqueViolation:
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &updated, nil
}

// Delete removes the user. Owned contractor profiles and working sites go
// with it; authored comments are kept without an author.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "users", id, domain.ErrUserNotFound)
}
