// Package diaries provides the PostgreSQL-backed repository for diary
// persistence and owner-scoped search.
package diaries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"diary/internal/common"
	"diary/internal/dbx"
	"diary/internal/server/models"
)

// PostgresRepository implements diary storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, diary *models.Diary) (*models.Diary, error) {
	query := `
		INSERT INTO diaries (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		diary.UserID, diary.Title, diary.Content).Scan(&diary.ID, &diary.CreatedAt, &diary.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return diary, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID int64) (*models.Diary, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at FROM diaries
		WHERE id = $1 AND user_id = $2
	`
	diary := &models.Diary{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&diary.ID, &diary.UserID, &diary.Title, &diary.Content, &diary.CreatedAt, &diary.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return diary, nil
}

// ListByUser returns the user's diaries, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Diary, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at FROM diaries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanDiaries(rows)
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM diaries WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

// Search matches the keyword against diary content with LIKE, scoped to the
// owner, newest first.
func (r *PostgresRepository) Search(ctx context.Context, userID int64, keyword string, limit, offset int) ([]*models.Diary, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at FROM diaries
		WHERE user_id = $1 AND content LIKE $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, query, userID, "%"+keyword+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanDiaries(rows)
}

func (r *PostgresRepository) CountSearch(ctx context.Context, userID int64, keyword string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM diaries WHERE user_id = $1 AND content LIKE $2`,
		userID, "%"+keyword+"%").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

// Update rewrites title and content for a diary owned by diary.UserID.
// A row owned by someone else is indistinguishable from a missing row.
func (r *PostgresRepository) Update(ctx context.Context, diary *models.Diary) (*models.Diary, error) {
	query := `
		UPDATE diaries SET title = $1, content = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		diary.Title, diary.Content, diary.ID, diary.UserID).Scan(&diary.CreatedAt, &diary.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return diary, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanDiaries(rows *sql.Rows) ([]*models.Diary, error) {
	var result []*models.Diary
	for rows.Next() {
		var item models.Diary
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
