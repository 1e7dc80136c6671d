package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusDraft     = "draft"
	SessionStatusFinalized = "finalized"
)

// Session is one interview run bound to exactly one Case. The question-set
// and mechanism-set id+version pairs are snapshotted at creation and never
// re-resolved. Status only ever moves draft -> finalized, and FinalizedAt is
// set iff status is finalized.
type Session struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"session_id"`
	CaseID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_id"`
	Case                *Case      `gorm:"constraint:OnDelete:CASCADE;foreignKey:CaseID;references:ID" json:"case,omitempty"`
	QuestionSetID       string     `gorm:"column:question_set_id;not null" json:"question_set_id"`
	QuestionSetVersion  string     `gorm:"column:question_set_version;not null" json:"question_set_version"`
	MechanismSetID      string     `gorm:"column:mechanism_set_id;not null" json:"mechanism_set_id"`
	MechanismSetVersion string     `gorm:"column:mechanism_set_version;not null" json:"mechanism_set_version"`
	Status              string     `gorm:"column:status;not null" json:"status"`
	CreatedBy           string     `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	FinalizedAt         *time.Time `gorm:"column:finalized_at" json:"finalized_at,omitempty"`
}

func (Session) TableName() string { return "session" }
