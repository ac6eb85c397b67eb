package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/buildservice/build-service/internal/core/domain"
)

// ContractorRepository implements ports.ContractorRepository using PostgreSQL.
// Reads aggregate the working sites a brigade is assigned to.
type ContractorRepository struct {
	db DBInterface
}

func NewContractorRepository(db DBInterface) *ContractorRepository {
	return &ContractorRepository{db: db}
}

func contractorSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.user_id", "c.name", "c.email", "c.password_hash",
		"c.workers_amount", "c.rating",
		"COALESCE(array_agg(wsc.working_site_id ORDER BY wsc.working_site_id) FILTER (WHERE wsc.working_site_id IS NOT NULL), '{}') AS working_site_ids",
		"c.created_at", "c.updated_at",
	).
		From("contractors c").
		LeftJoin("working_site_contractors wsc ON wsc.contractor_id = c.id").
		GroupBy("c.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *ContractorRepository) Create(ctx context.Context, c *domain.Contractor) (*domain.Contractor, error) {
	query, args, err := squirrel.Insert("contractors").
		Columns("user_id", "name", "email", "password_hash", "workers_amount", "rating").
		Values(c.UserID, c.Name, c.Email, c.PasswordHash, c.WorkersAmount, c.Rating).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	created := *c
	created.WorkingSiteIDs = []int64{}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			if c.UserID != nil {
				return nil, domain.ErrContractorExists
			}
			return nil, domain.ErrEmailTaken
		case codeForeignKeyViolation:
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("inserting contractor: %w", err)
	}
	return &created, nil
}

func (r *ContractorRepository) FindByID(ctx context.Context, id int64) (*domain.Contractor, error) {
	return r.findOne(ctx, squirrel.Eq{"c.id": id})
}

// FindByEmail matches the email case-insensitively.
func (r *ContractorRepository) FindByEmail(ctx context.Context, email string) (*domain.Contractor, error) {
	return r.findOne(ctx, squirrel.Expr("lower(c.email) = lower(?)", email))
}

func (r *ContractorRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Contractor, error) {
	return r.findOne(ctx, squirrel.Eq{"c.user_id": userID})
}

func (r *ContractorRepository) findOne(ctx context.Context, pred squirrel.Sqlizer) (*domain.Contractor, error) {
	query, args, err := contractorSelect().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var c domain.Contractor
	if err := pgxscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("scanning contractor: %w", err)
	}
	return &c, nil
}

func (r *ContractorRepository) List(ctx context.Context) ([]*domain.Contractor, error) {
	query, args, err := contractorSelect().OrderBy("c.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	contractors := make([]*domain.Contractor, 0)
	if err := pgxscan.Select(ctx, r.db, &contractors, query, args...); err != nil {
		return nil, fmt.Errorf("scanning contractors: %w", err)
	}
	return contractors, nil
}

func (r *ContractorRepository) Update(ctx context.Context, c *domain.Contractor) (*domain.Contractor, error) {
	query, args, err := squirrel.Update("contractors").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("workers_amount", c.WorkersAmount).
		Set("rating", c.Rating).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("updating contractor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrContractorNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *ContractorRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "contractors", id, domain.ErrContractorNotFound)
}
