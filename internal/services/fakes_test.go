package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/apierr"
	"github.com/arylegal/ary-backend/internal/config"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/proposer"
	"github.com/arylegal/ary-backend/internal/types"
)

// fakeStore is a shared in-memory backing store for the fake repos. Slices
// keep insertion order, which the tests use as creation order.
type fakeStore struct {
	cases     map[uuid.UUID]*types.Case
	sessions  map[uuid.UUID]*types.Session
	entries   []*types.AnswerEntry
	proposals []*types.SemanticProposal
	decisions []*types.ProposalDecision
	artifacts map[uuid.UUID]*types.Artifact
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cases:     make(map[uuid.UUID]*types.Case),
		sessions:  make(map[uuid.UUID]*types.Session),
		artifacts: make(map[uuid.UUID]*types.Artifact),
	}
}

type fakeCaseRepo struct{ store *fakeStore }

func (r *fakeCaseRepo) Create(ctx context.Context, tx *gorm.DB, c *types.Case) (*types.Case, error) {
	r.store.cases[c.ID] = c
	return c, nil
}

func (r *fakeCaseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Case, error) {
	return r.store.cases[id], nil
}

func (r *fakeCaseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Case, error) {
	out := make([]*types.Case, 0, len(r.store.cases))
	for _, c := range r.store.cases {
		out = append(out, c)
	}
	return out, nil
}

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Session) (*types.Session, error) {
	r.store.sessions[s.ID] = s
	return s, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Session, error) {
	return r.store.sessions[id], nil
}

func (r *fakeSessionRepo) GetByCaseID(ctx context.Context, tx *gorm.DB, caseID uuid.UUID) ([]*types.Session, error) {
	var out []*types.Session
	for _, s := range r.store.sessions {
		if s.CaseID == caseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) FinalizeDraft(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) (bool, error) {
	s := r.store.sessions[id]
	if s == nil || s.Status != types.SessionStatusDraft {
		return false, nil
	}
	s.Status = types.SessionStatusFinalized
	finalized := at
	s.FinalizedAt = &finalized
	return true, nil
}

type fakeEntryRepo struct{ store *fakeStore }

func (r *fakeEntryRepo) CreateIfSessionDraft(ctx context.Context, tx *gorm.DB, e *types.AnswerEntry) (bool, error) {
	s := r.store.sessions[e.SessionID]
	if s == nil || s.Status != types.SessionStatusDraft {
		return false, nil
	}
	r.store.entries = append(r.store.entries, e)
	return true, nil
}

func (r *fakeEntryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AnswerEntry, error) {
	for _, e := range r.store.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) ([]*types.AnswerEntry, error) {
	var out []*types.AnswerEntry
	for _, e := range r.store.entries {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) GetBySessionAndQuestion(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, questionID string) ([]*types.AnswerEntry, error) {
	var out []*types.AnswerEntry
	for _, e := range r.store.entries {
		if e.SessionID == sessionID && e.QuestionID == questionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.store.entries[:0]
	for _, e := range r.store.entries {
		if !drop[e.ID] {
			kept = append(kept, e)
		}
	}
	r.store.entries = kept
	return nil
}

type fakeProposalRepo struct{ store *fakeStore }

func (r *fakeProposalRepo) Create(ctx context.Context, tx *gorm.DB, proposals []*types.SemanticProposal) ([]*types.SemanticProposal, error) {
	r.store.proposals = append(r.store.proposals, proposals...)
	return proposals, nil
}

func (r *fakeProposalRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SemanticProposal, error) {
	for _, p := range r.store.proposals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProposalRepo) GetByEntryID(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) ([]*types.SemanticProposal, error) {
	return r.GetByEntryIDs(ctx, tx, []uuid.UUID{entryID})
}

func (r *fakeProposalRepo) GetByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) ([]*types.SemanticProposal, error) {
	want := make(map[uuid.UUID]bool, len(entryIDs))
	for _, id := range entryIDs {
		want[id] = true
	}
	var out []*types.SemanticProposal
	for _, p := range r.store.proposals {
		if want[p.EntryID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProposalRepo) DeleteByEntryIDs(ctx context.Context, tx *gorm.DB, entryIDs []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(entryIDs))
	for _, id := range entryIDs {
		drop[id] = true
	}
	kept := r.store.proposals[:0]
	for _, p := range r.store.proposals {
		if !drop[p.EntryID] {
			kept = append(kept, p)
		}
	}
	r.store.proposals = kept
	return nil
}

type fakeDecisionRepo struct{ store *fakeStore }

func (r *fakeDecisionRepo) Create(ctx context.Context, tx *gorm.DB, d *types.ProposalDecision) (*types.ProposalDecision, error) {
	r.store.decisions = append(r.store.decisions, d)
	return d, nil
}

func (r *fakeDecisionRepo) GetByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) ([]*types.ProposalDecision, error) {
	want := make(map[uuid.UUID]bool, len(proposalIDs))
	for _, id := range proposalIDs {
		want[id] = true
	}
	var out []*types.ProposalDecision
	for _, d := range r.store.decisions {
		if want[d.ProposalID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDecisionRepo) DeleteByProposalIDs(ctx context.Context, tx *gorm.DB, proposalIDs []uuid.UUID) error {
	drop := make(map[uuid.UUID]bool, len(proposalIDs))
	for _, id := range proposalIDs {
		drop[id] = true
	}
	kept := r.store.decisions[:0]
	for _, d := range r.store.decisions {
		if !drop[d.ProposalID] {
			kept = append(kept, d)
		}
	}
	r.store.decisions = kept
	return nil
}

type fakeArtifactRepo struct{ store *fakeStore }

func (r *fakeArtifactRepo) Create(ctx context.Context, tx *gorm.DB, a *types.Artifact) (*types.Artifact, error) {
	r.store.artifacts[a.ID] = a
	return a, nil
}

func (r *fakeArtifactRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Artifact, error) {
	return r.store.artifacts[id], nil
}

func (r *fakeArtifactRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (*types.Artifact, error) {
	for _, a := range r.store.artifacts {
		if a.SessionID == sessionID {
			return a, nil
		}
	}
	return nil, nil
}

// fakeGenerator returns canned spans or a canned error.
type fakeGenerator struct {
	spans []proposer.ProposedSpan
	err   error
}

func (g *fakeGenerator) Generate(ctx context.Context, entryText string, allowedMechanisms []string) ([]proposer.ProposedSpan, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.spans, nil
}

func testQuestionSet() *config.QuestionSetConfig {
	return &config.QuestionSetConfig{
		QuestionSetID: "qs_test",
		Version:       "1.0.0",
		Questions: []config.QuestionConfig{
			{QuestionID: "Q1", Prompt: "Strategy?", AnswerMode: config.AnswerModeSingle},
			{QuestionID: "Q2", Prompt: "Factors?", AnswerMode: config.AnswerModeMultiAtomic, ExpectedMechanisms: []string{"waiver"}},
			{QuestionID: "Q3", Prompt: "Risks?", AnswerMode: config.AnswerModeMultiAtomic},
		},
	}
}

func testMechanismSet() *config.MechanismSetConfig {
	return &config.MechanismSetConfig{
		MechanismSetID: "ms_test",
		Version:        "1.0.0",
		Mechanisms: []config.MechanismConfig{
			{MechanismID: "waiver", Name: "Waiver"},
		},
	}
}

func testProvider(t *testing.T) config.Provider {
	t.Helper()
	p, err := config.NewStaticProvider(
		[]*config.QuestionSetConfig{testQuestionSet()},
		[]*config.MechanismSetConfig{testMechanismSet()},
	)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	return p
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

// testEnv wires every service over one shared fake store.
type testEnv struct {
	store     *fakeStore
	generator *fakeGenerator
	cases     CaseService
	sessions  SessionService
	entries   EntryService
	proposals ProposalService
	artifacts ArtifactService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newFakeStore()
	log := testLogger(t)
	cfg := testProvider(t)
	gen := &fakeGenerator{}

	caseRepo := &fakeCaseRepo{store: store}
	sessionRepo := &fakeSessionRepo{store: store}
	entryRepo := &fakeEntryRepo{store: store}
	proposalRepo := &fakeProposalRepo{store: store}
	decisionRepo := &fakeDecisionRepo{store: store}
	artifactRepo := &fakeArtifactRepo{store: store}

	return &testEnv{
		store:     store,
		generator: gen,
		cases:     NewCaseService(nil, log, caseRepo),
		sessions:  NewSessionService(nil, log, cfg, caseRepo, sessionRepo, entryRepo, proposalRepo, decisionRepo, artifactRepo),
		entries:   NewEntryService(nil, log, cfg, sessionRepo, entryRepo, proposalRepo, decisionRepo),
		proposals: NewProposalService(nil, log, cfg, gen, time.Second, sessionRepo, entryRepo, proposalRepo, decisionRepo),
		artifacts: NewArtifactService(nil, log, artifactRepo),
	}
}

func (env *testEnv) mustCase(t *testing.T) *types.Case {
	t.Helper()
	c, err := env.cases.Create(context.Background(), CreateCaseInput{
		CaseNameOrReference: "Smith v. Jones",
		ParticipantRole:     "claimant",
	})
	if err != nil {
		t.Fatalf("create case: %v", err)
	}
	return c
}

func (env *testEnv) mustSession(t *testing.T) *types.Session {
	t.Helper()
	c := env.mustCase(t)
	s, err := env.sessions.Create(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return s
}

func (env *testEnv) mustEntry(t *testing.T, sessionID uuid.UUID, questionID, text string) *types.AnswerEntry {
	t.Helper()
	e, err := env.entries.Add(context.Background(), sessionID, questionID, text)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

func wantAPIErr(t *testing.T, err error, status int, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status=%d code=%q, got nil", status, code)
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
	}
	if ae.Status != status || ae.Code != code {
		t.Fatalf("expected status=%d code=%q, got status=%d code=%q", status, code, ae.Status, ae.Code)
	}
}
