package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/buildservice/build-service/internal/core/domain"
)

const commentsTable = "contractor_comments"

var commentColumns = []string{"id", "contractor_id", "user_id", "comment", "is_changed", "created_at", "updated_at"}

// CommentRepository implements ports.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBInterface
}

func NewCommentRepository(db DBInterface) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query, args, err := squirrel.Insert(commentsTable).
		Columns("contractor_id", "user_id", "comment").
		Values(c.ContractorID, c.UserID, c.Comment).
		Suffix(returning(commentColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var created domain.Comment
	if err := pgxscan.Get(ctx, r.db, &created, query, args...); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("inserting comment: %w", err)
	}
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query, args, err := squirrel.Select(commentColumns...).
		From(commentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var c domain.Comment
	if err := pgxscan.Get(ctx, r.db, &c, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scanning comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepository) ListByContractor(ctx context.Context, contractorID int64) ([]*domain.Comment, error) {
	return r.list(ctx, squirrel.Eq{"contractor_id": contractorID})
}

func (r *CommentRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *CommentRepository) list(ctx context.Context, pred squirrel.Eq) ([]*domain.Comment, error) {
	query, args, err := squirrel.Select(commentColumns...).
		From(commentsTable).
		Where(pred).
		OrderBy("created_at", "id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	comments := make([]*domain.Comment, 0)
	if err := pgxscan.Select(ctx, r.db, &comments, query, args...); err != nil {
		return nil, fmt.Errorf("scanning comments: %w", err)
	}
	return comments, nil
}

// UpdateText replaces the comment body and marks it as changed.
func (r *CommentRepository) UpdateText(ctx context.Context, id int64, text string) (*domain.Comment, error) {
	query, args, err := squirrel.Update(commentsTable).
		Set("comment", text).
		Set("is_changed", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(commentColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var updated domain.Comment
	if err := pgxscan.Get(ctx, r.db, &updated, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return &updated, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, commentsTable, id, domain.ErrCommentNotFound)
}
