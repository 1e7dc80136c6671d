package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/types"
)

type EntryRepo interface {
	// CreateIfSessionDraft inserts the entry only while its session row is
	// still draft, in one statement, so an entry can never land on a session
	// that finalized between the caller's read and the insert. Returns false
	// when the guard rejected the insert.
	CreateIfSessionDraft(ctx context.Context, tx *gorm.DB, e *types.AnswerEntry) (bool, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AnswerEntry, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.AnswerEntry, error)
	GetBySessionAndQuestion(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, questionID string) ([]*types.AnswerEntry, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type entryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntryRepo(db *gorm.DB, baseLog *logger.Logger) EntryRepo {
	return &entryRepo{db: db, log: baseLog.With("repo", "EntryRepo")}
}

func (r *entryRepo) CreateIfSessionDraft(ctx context.Context, tx *gorm.DB, e *types.AnswerEntry) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).Exec(
		`INSERT INTO answer_entry (id, session_id, question_id, text, created_at)
		 SELECT ?, ?, ?, ?, ?
		 WHERE EXISTS (SELECT 1 FROM "session" WHERE id = ? AND status = ?)`,
		e.ID, e.SessionID, e.QuestionID, e.Text, e.CreatedAt,
		e.SessionID, types.SessionStatusDraft,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *entryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AnswerEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var e types.AnswerEntry
	if err := transaction.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.AnswerEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AnswerEntry
	// Secondary id ordering keeps the sequence stable when two entries share
	// a creation timestamp.
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entryRepo) GetBySessionAndQuestion(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, questionID string) ([]*types.AnswerEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AnswerEntry
	if err := transaction.WithContext(ctx).
		Where("session_id = ? AND question_id = ?", sessionID, questionID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *entryRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.AnswerEntry{}).Error
}
