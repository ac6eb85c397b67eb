package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/buildservice/build-service/internal/core/domain"
)

// WorkingSiteRepository implements ports.WorkingSiteRepository using PostgreSQL.
type WorkingSiteRepository struct {
	db DBInterface
}

func NewWorkingSiteRepository(db DBInterface) *WorkingSiteRepository {
	return &WorkingSiteRepository{db: db}
}

func workingSiteSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"ws.id", "ws.name", "ws.user_id",
		"COALESCE(array_agg(wsc.contractor_id ORDER BY wsc.contractor_id) FILTER (WHERE wsc.contractor_id IS NOT NULL), '{}') AS contractor_ids",
		"ws.created_at", "ws.updated_at",
	).
		From("working_sites ws").
		LeftJoin("working_site_contractors wsc ON wsc.working_site_id = ws.id").
		GroupBy("ws.id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *WorkingSiteRepository) Create(ctx context.Context, site *domain.WorkingSite) (*domain.WorkingSite, error) {
	query, args, err := squirrel.Insert("working_sites").
		Columns("name", "user_id").
		Values(site.Name, site.UserID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	created := *site
	created.ContractorIDs = []int64{}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("inserting working site: %w", err)
	}
	return &created, nil
}

func (r *WorkingSiteRepository) FindByID(ctx context.Context, id int64) (*domain.WorkingSite, error) {
	query, args, err := workingSiteSelect().Where(squirrel.Eq{"ws.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var site domain.WorkingSite
	if err := pgxscan.Get(ctx, r.db, &site, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrWorkingSiteNotFound
		}
		return nil, fmt.Errorf("scanning working site: %w", err)
	}
	return &site, nil
}

func (r *WorkingSiteRepository) List(ctx context.Context) ([]*domain.WorkingSite, error) {
	query, args, err := workingSiteSelect().OrderBy("ws.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	sites := make([]*domain.WorkingSite, 0)
	if err := pgxscan.Select(ctx, r.db, &sites, query, args...); err != nil {
		return nil, fmt.Errorf("scanning working sites: %w", err)
	}
	return sites, nil
}

// Update renames the site and, when contractorIDs is non-nil, replaces its
// contractor links in the same transaction.
func (r *WorkingSiteRepository) Update(ctx context.Context, site *domain.WorkingSite, contractorIDs []int64) (*domain.WorkingSite, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query, args, err := squirrel.Update("working_sites").
		Set("name", site.Name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": site.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating working site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrWorkingSiteNotFound
	}

	if contractorIDs != nil {
		if err := replaceSiteContractors(ctx, tx, site.ID, contractorIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return r.FindByID(ctx, site.ID)
}

func replaceSiteContractors(ctx context.Context, tx DBInterface, siteID int64, contractorIDs []int64) error {
	query, args, err := squirrel.Delete("working_site_contractors").
		Where(squirrel.Eq{"working_site_id": siteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing site contractors: %w", err)
	}

	if len(contractorIDs) == 0 {
		return nil
	}

	insert := squirrel.Insert("working_site_contractors").
		Columns("working_site_id", "contractor_id").
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, id := range contractorIDs {
		insert = insert.Values(siteID, id)
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return domain.ErrContractorNotFound
		}
		return fmt.Errorf("linking site contractors: %w", err)
	}
	return nil
}

// Delete removes the site and its contractor links. The owning user is left
// untouched.
func (r *WorkingSiteRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "working_sites", id, domain.ErrWorkingSiteNotFound)
}
