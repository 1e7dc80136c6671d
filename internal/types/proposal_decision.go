package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	DecisionAcceptedManual = "accepted_manual"
	DecisionRejectedManual = "rejected_manual"
	DecisionUndecided      = "undecided"
)

// ValidDecision reports whether v is one of the three decision values.
func ValidDecision(v string) bool {
	switch v {
	case DecisionAcceptedManual, DecisionRejectedManual, DecisionUndecided:
		return true
	}
	return false
}

// ProposalDecision is a human verdict on exactly one proposal. Multiple rows
// per proposal may exist; readers take the latest by DecidedAt.
type ProposalDecision struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"decision_id"`
	ProposalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"proposal_id"`
	Proposal   *SemanticProposal `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProposalID;references:ID" json:"proposal,omitempty"`
	Decision   string            `gorm:"column:decision;not null" json:"decision"`
	Reason     *string           `gorm:"column:reason" json:"reason,omitempty"`
	DecidedBy  string            `gorm:"column:decided_by;not null" json:"decided_by"`
	DecidedAt  time.Time         `gorm:"not null" json:"decided_at"`
}

func (ProposalDecision) TableName() string { return "proposal_decision" }
