package types

import (
	"time"

	"github.com/google/uuid"
)

// Case is the static legal context a session is run against. Immutable after
// creation.
type Case struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"case_id"`
	Domain              string    `gorm:"column:domain;not null" json:"domain"`
	CaseNameOrReference string    `gorm:"column:case_name_or_reference;not null" json:"case_name_or_reference"`
	Jurisdiction        *string   `gorm:"column:jurisdiction" json:"jurisdiction,omitempty"`
	ParticipantRole     string    `gorm:"column:participant_role;not null" json:"participant_role"`
	CreatedBy           string    `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
}

func (Case) TableName() string { return "case" }
