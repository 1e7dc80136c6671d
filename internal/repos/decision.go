package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/types"
)

type DecisionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, d *types.ProposalDecision) (*types.ProposalDecision, error)
	GetByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) ([]*types.ProposalDecision, error)
	DeleteByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) error
}

type decisionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDecisionRepo(db *gorm.DB, baseLog *logger.Logger) DecisionRepo {
	return &decisionRepo{db: db, log: baseLog.With("repo", "DecisionRepo")}
}

func (r *decisionRepo) Create(ctx context.Context, tx *gorm.DB, d *types.ProposalDecision) (*types.ProposalDecision, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

func (r *decisionRepo) GetByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) ([]*types.ProposalDecision, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ProposalDecision
	if len(proposalIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("proposal_id IN ?", proposalIDs).
		Order("decided_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *decisionRepo) DeleteByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(proposalIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("proposal_id IN ?", proposalIDs).
		Delete(&types.ProposalDecision{}).Error
}
