package types

import (
	"time"

	"github.com/google/uuid"
)

// SemanticProposal is an AI-authored candidate tag over one entry. SpanText
// must be an exact substring of the entry text; confidence is advisory only
// and never drives an automatic accept. Rows are never mutated or deleted
// except when their entry is deleted.
type SemanticProposal struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"proposal_id"`
	EntryID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"entry_id"`
	Entry       *AnswerEntry `gorm:"constraint:OnDelete:CASCADE;foreignKey:EntryID;references:ID" json:"entry,omitempty"`
	MechanismID string       `gorm:"column:mechanism_id;not null" json:"mechanism_id"`
	SpanText    string       `gorm:"column:span_text;not null" json:"span_text"`
	Rationale   *string      `gorm:"column:rationale" json:"rationale,omitempty"`
	Confidence  *float64     `gorm:"column:confidence" json:"confidence,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

func (SemanticProposal) TableName() string { return "semantic_proposal" }
