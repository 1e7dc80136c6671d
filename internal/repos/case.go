package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/types"
)

type CaseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, c *types.Case) (*types.Case, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Case, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Case, error)
}

type caseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCaseRepo(db *gorm.DB, baseLog *logger.Logger) CaseRepo {
	return &caseRepo{db: db, log: baseLog.With("repo", "CaseRepo")}
}

func (r *caseRepo) Create(ctx context.Context, tx *gorm.DB, c *types.Case) (*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *caseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var c types.Case
	if err := transaction.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *caseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Case
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
