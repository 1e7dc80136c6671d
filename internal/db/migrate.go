package db

import (
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Case{},
		&types.Session{},
		&types.AnswerEntry{},
		&types.SemanticProposal{},
		&types.ProposalDecision{},
		&types.Artifact{},
	)
}
