package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/types"
)

func SeedCase(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Case {
	tb.Helper()
	c := &types.Case{
		ID:                  uuid.New(),
		Domain:              "Legal Strategy",
		CaseNameOrReference: name,
		ParticipantRole:     "claimant",
		CreatedBy:           "tester",
		CreatedAt:           time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed case: %v", err)
	}
	return c
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, caseID uuid.UUID, status string) *types.Session {
	tb.Helper()
	s := &types.Session{
		ID:                  uuid.New(),
		CaseID:              caseID,
		QuestionSetID:       "qs_test",
		QuestionSetVersion:  "1.0.0",
		MechanismSetID:      "ms_test",
		MechanismSetVersion: "1.0.0",
		Status:              status,
		CreatedBy:           "tester",
		CreatedAt:           time.Now().UTC(),
	}
	if status == types.SessionStatusFinalized {
		finalized := time.Now().UTC()
		s.FinalizedAt = &finalized
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}

func SeedEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, questionID, text string) *types.AnswerEntry {
	tb.Helper()
	e := &types.AnswerEntry{
		ID:         uuid.New(),
		SessionID:  sessionID,
		QuestionID: questionID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed entry: %v", err)
	}
	return e
}

func SeedProposal(tb testing.TB, ctx context.Context, tx *gorm.DB, entryID uuid.UUID, mechanismID, spanText string) *types.SemanticProposal {
	tb.Helper()
	p := &types.SemanticProposal{
		ID:          uuid.New(),
		EntryID:     entryID,
		MechanismID: mechanismID,
		SpanText:    spanText,
		CreatedAt:   time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed proposal: %v", err)
	}
	return p
}
