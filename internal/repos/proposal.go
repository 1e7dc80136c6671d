package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/types"
)

type ProposalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, proposals []*types.SemanticProposal) ([]*types.SemanticProposal, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SemanticProposal, error)
	GetByEntryID(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) ([]*types.SemanticProposal, error)
	GetByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) ([]*types.SemanticProposal, error)
	DeleteByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) error
}

type proposalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProposalRepo(db *gorm.DB, baseLog *logger.Logger) ProposalRepo {
	return &proposalRepo{db: db, log: baseLog.With("repo", "ProposalRepo")}
}

func (r *proposalRepo) Create(ctx context.Context, tx *gorm.DB, proposals []*types.SemanticProposal) ([]*types.SemanticProposal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(proposals) == 0 {
		return []*types.SemanticProposal{}, nil
	}
	if err := transaction.WithContext(ctx).Create(proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SemanticProposal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var p types.SemanticProposal
	if err := transaction.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepo) GetByEntryID(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) ([]*types.SemanticProposal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SemanticProposal
	if err := transaction.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *proposalRepo) GetByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) ([]*types.SemanticProposal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.SemanticProposal
	if len(entryIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("entry_id IN ?", entryIDs).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *proposalRepo) DeleteByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(entryIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("entry_id IN ?", entryIDs).
		Delete(&types.SemanticProposal{}).Error
}
