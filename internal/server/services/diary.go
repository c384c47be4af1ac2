package services

import (
	"context"
	"database/sql"
	"errors"

	"diary/internal/common"
	"diary/internal/dbx"
	"diary/internal/server/models"
	"diary/internal/server/repositories/repomanager"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// DiaryPage is one page of a user's diaries plus the total match count.
type DiaryPage struct {
	Data  []*models.Diary `json:"data"`
	Total int64           `json:"total"`
}

// DiaryService implements owner-scoped diary CRUD and search. Every method
// takes the guard-resolved user id explicitly; a diary belonging to another
// user behaves exactly like a missing one.
type DiaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDiaryService constructs a DiaryService over the given repositories.
func NewDiaryService(db *sql.DB, m repomanager.RepositoryManager) *DiaryService {
	return &DiaryService{db: db, repomanager: m}
}

// Create stores a new diary owned by userID.
func (s *DiaryService) Create(ctx context.Context, userID int64, title, content string) (*models.Diary, error) {
	repo := s.repomanager.Diaries(s.db)

	diary := &models.Diary{UserID: userID, Title: title, Content: content}
	d, err := repo.Create(ctx, diary)
	if err != nil {
		return nil, internalError("create diary", err)
	}
	return d, nil
}

// Get returns the diary with the given id if userID owns it.
func (s *DiaryService) Get(ctx context.Context, id, userID int64) (*models.Diary, error) {
	repo := s.repomanager.Diaries(s.db)

	d, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, internalError("get diary", err)
	}
	return d, nil
}

// List returns one page of the user's diaries, newest first.
func (s *DiaryService) List(ctx context.Context, userID int64, page, limit int) (*DiaryPage, error) {
	page, limit = normalizePaging(page, limit)
	repo := s.repomanager.Diaries(s.db)

	data, err := repo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, internalError("list diaries", err)
	}
	total, err := repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, internalError("count diaries", err)
	}
	if data == nil {
		data = []*models.Diary{}
	}
	return &DiaryPage{Data: data, Total: total}, nil
}

// Search returns one page of the user's diaries whose content contains the
// keyword, newest first.
func (s *DiaryService) Search(ctx context.Context, userID int64, keyword string, page, limit int) (*DiaryPage, error) {
	page, limit = normalizePaging(page, limit)
	repo := s.repomanager.Diaries(s.db)

	data, err := repo.Search(ctx, userID, keyword, limit, (page-1)*limit)
	if err != nil {
		return nil, internalError("search diaries", err)
	}
	total, err := repo.CountSearch(ctx, userID, keyword)
	if err != nil {
		return nil, internalError("count search results", err)
	}
	if data == nil {
		data = []*models.Diary{}
	}
	return &DiaryPage{Data: data, Total: total}, nil
}

// Update merges the present fields of upd into the stored diary, keeping the
// owner check inside the query predicate. The read-modify-write sequence runs
// in one transaction so concurrent updates cannot interleave between the read
// and the write.
func (s *DiaryService) Update(ctx context.Context, id, userID int64, upd *models.DiaryUpdate) (*models.Diary, error) {
	var updated *models.Diary

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Diaries(tx)

		diary, err := repo.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}

		if upd.Title != nil {
			diary.Title = *upd.Title
		}
		if upd.Content != nil {
			diary.Content = *upd.Content
		}

		updated, err = repo.Update(ctx, diary)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, internalError("update diary", err)
	}
	return updated, nil
}

// Delete removes the diary if userID owns it.
func (s *DiaryService) Delete(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Diaries(s.db)

	if err := repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return internalError("delete diary", err)
	}
	return nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
