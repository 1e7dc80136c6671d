package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Artifact is the permanent output of a finalized session. Document holds the
// serialized canonical document exactly as produced at finalize time; reads
// return those bytes unchanged, so the column is text rather than jsonb
// (jsonb would normalize whitespace and key order). HashSHA256 and Signature
// are reserved for a future integrity component and stay empty here.
type Artifact struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"artifact_id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"`
	Session    *Session       `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"session,omitempty"`
	Document   datatypes.JSON `gorm:"column:artifact_json;type:text;not null" json:"document"`
	HashSHA256 *string        `gorm:"column:hash_sha256" json:"hash_sha256,omitempty"`
	Signature  *string        `gorm:"column:signature" json:"signature,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (Artifact) TableName() string { return "artifact" }
