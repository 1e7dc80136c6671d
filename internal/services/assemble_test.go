package services

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/arylegal/ary-backend/internal/types"
)

func assembleFixture() (uuid.UUID, *types.Session, []*types.AnswerEntry, []*types.SemanticProposal, []*types.ProposalDecision) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	finalized := base.Add(time.Hour)

	session := &types.Session{
		ID:                  uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		CaseID:              uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		QuestionSetID:       "qs_test",
		QuestionSetVersion:  "1.0.0",
		MechanismSetID:      "ms_test",
		MechanismSetVersion: "1.0.0",
		Status:              types.SessionStatusFinalized,
		CreatedBy:           "tester",
		CreatedAt:           base,
		FinalizedAt:         &finalized,
	}

	e1 := &types.AnswerEntry{ID: uuid.MustParse("33333333-3333-3333-3333-333333333331"), SessionID: session.ID, QuestionID: "Q1", Text: "Settle early", CreatedAt: base.Add(time.Minute)}
	e2 := &types.AnswerEntry{ID: uuid.MustParse("33333333-3333-3333-3333-333333333332"), SessionID: session.ID, QuestionID: "Q2", Text: "Factor A", CreatedAt: base.Add(2 * time.Minute)}
	e3 := &types.AnswerEntry{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), SessionID: session.ID, QuestionID: "Q2", Text: "Factor B", CreatedAt: base.Add(3 * time.Minute)}

	p1 := &types.SemanticProposal{ID: uuid.MustParse("44444444-4444-4444-4444-444444444441"), EntryID: e2.ID, MechanismID: "waiver", SpanText: "Factor", CreatedAt: base.Add(4 * time.Minute)}
	p2 := &types.SemanticProposal{ID: uuid.MustParse("44444444-4444-4444-4444-444444444442"), EntryID: e3.ID, MechanismID: "waiver", SpanText: "Factor B", CreatedAt: base.Add(5 * time.Minute)}

	reason := "confirmed"
	d1 := &types.ProposalDecision{ID: uuid.MustParse("55555555-5555-5555-5555-555555555551"), ProposalID: p1.ID, Decision: types.DecisionRejectedManual, DecidedBy: "tester", DecidedAt: base.Add(6 * time.Minute)}
	d2 := &types.ProposalDecision{ID: uuid.MustParse("55555555-5555-5555-5555-555555555552"), ProposalID: p1.ID, Decision: types.DecisionAcceptedManual, Reason: &reason, DecidedBy: "tester", DecidedAt: base.Add(7 * time.Minute)}

	artifactID := uuid.MustParse("66666666-6666-6666-6666-666666666666")
	return artifactID, session, []*types.AnswerEntry{e1, e2, e3}, []*types.SemanticProposal{p1, p2}, []*types.ProposalDecision{d1, d2}
}

func TestBuildArtifactDocument_Deterministic(t *testing.T) {
	artifactID, session, entries, proposals, decisions := assembleFixture()
	qs := testQuestionSet()

	first := BuildArtifactDocument(artifactID, session, qs, entries, proposals, decisions)
	second := BuildArtifactDocument(artifactID, session, qs, entries, proposals, decisions)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("documents differ (-first +second):\n%s", diff)
	}

	rawFirst, err := json.MarshalIndent(first, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	rawSecond, err := json.MarshalIndent(second, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(rawFirst, rawSecond) {
		t.Fatalf("serialized documents differ")
	}
}

func TestBuildArtifactDocument_GroupsAndDecides(t *testing.T) {
	artifactID, session, entries, proposals, decisions := assembleFixture()
	doc := BuildArtifactDocument(artifactID, session, testQuestionSet(), entries, proposals, decisions)

	if doc.Strategy.Text != "Settle early" {
		t.Fatalf("unexpected strategy text %q", doc.Strategy.Text)
	}
	if len(doc.Answers["Q2"]) != 2 {
		t.Fatalf("unexpected Q2 grouping: %#v", doc.Answers["Q2"])
	}
	if got, ok := doc.Answers["Q3"]; !ok || len(got) != 0 {
		t.Fatalf("question with no entries must yield an empty list, got %#v", got)
	}

	if len(doc.SemanticProposals) != 2 {
		t.Fatalf("expected 2 flattened proposals, got %d", len(doc.SemanticProposals))
	}
	// p1 carries its latest decision; p2 has no decision row.
	if doc.SemanticProposals[0].Decision != types.DecisionAcceptedManual {
		t.Fatalf("latest decision must win: %+v", doc.SemanticProposals[0])
	}
	if doc.SemanticProposals[0].DecisionReason == nil || *doc.SemanticProposals[0].DecisionReason != "confirmed" {
		t.Fatalf("decision reason lost: %+v", doc.SemanticProposals[0])
	}
	if doc.SemanticProposals[1].Decision != types.DecisionUndecided {
		t.Fatalf("expected undecided default: %+v", doc.SemanticProposals[1])
	}

	if doc.Session.FinalizedAt != "2026-03-01T11:00:00Z" {
		t.Fatalf("unexpected finalized_at: %q", doc.Session.FinalizedAt)
	}
	if doc.Integrity.Hash != "" || doc.Integrity.Signature != "" {
		t.Fatalf("integrity must be present-but-empty: %#v", doc.Integrity)
	}
}

func TestBuildArtifactDocument_MissingStrategyEntryYieldsEmptyText(t *testing.T) {
	artifactID, session, entries, _, _ := assembleFixture()
	// Drop the Q1 entry.
	doc := BuildArtifactDocument(artifactID, session, testQuestionSet(), entries[1:], nil, nil)

	if doc.Strategy.Text != "" {
		t.Fatalf("expected empty strategy text, got %q", doc.Strategy.Text)
	}
	if len(doc.SemanticProposals) != 0 {
		t.Fatalf("expected no proposal records, got %d", len(doc.SemanticProposals))
	}
}
