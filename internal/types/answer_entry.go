package types

import (
	"time"

	"github.com/google/uuid"
)

// AnswerEntry is one verbatim answer unit for one question within a session.
// Text is stored byte-for-byte with only edge whitespace trimmed on intake.
type AnswerEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Session    *Session  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"session,omitempty"`
	QuestionID string    `gorm:"column:question_id;not null" json:"question_id"`
	Text       string    `gorm:"column:text;not null" json:"text"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (AnswerEntry) TableName() string { return "answer_entry" }
