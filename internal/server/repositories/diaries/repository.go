package diaries

import (
	"context"

	"diary/internal/server/models"
)

// Repository persists diary rows. Every lookup and mutation is scoped by the
// owner's user id in the query predicate.
type Repository interface {
	Create(ctx context.Context, diary *models.Diary) (*models.Diary, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Diary, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Diary, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Search(ctx context.Context, userID int64, keyword string, limit, offset int) ([]*models.Diary, error)
	CountSearch(ctx context.Context, userID int64, keyword string) (int64, error)
	Update(ctx context.Context, diary *models.Diary) (*models.Diary, error)
	Delete(ctx context.Context, id, userID int64) error
}
