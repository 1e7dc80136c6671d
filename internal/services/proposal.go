package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/apierr"
	"github.com/arylegal/ary-backend/internal/config"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/proposer"
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/requestdata"
	"github.com/arylegal/ary-backend/internal/types"
)

type ProposalService interface {
	// ProposeForEntry asks the generator for candidate tags over the entry's
	// verbatim text and persists the conforming ones. Additive: repeated
	// calls append, they never replace prior proposals.
	ProposeForEntry(ctx context.Context, entryID uuid.UUID) ([]*types.SemanticProposal, error)
	ListForEntry(ctx context.Context, entryID uuid.UUID) ([]*types.SemanticProposal, error)
	// Decide records a human verdict. Each call appends a decision row; the
	// read contract is "latest by decision time wins".
	Decide(ctx context.Context, proposalID uuid.UUID, decision string, reason *string) (*types.ProposalDecision, error)
}

type proposalService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          config.Provider
	generator    proposer.Generator
	genTimeout   time.Duration
	sessionRepo  repos.SessionRepo
	entryRepo    repos.EntryRepo
	proposalRepo repos.ProposalRepo
	decisionRepo repos.DecisionRepo
}

func NewProposalService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg config.Provider,
	generator proposer.Generator,
	genTimeout time.Duration,
	sessionRepo repos.SessionRepo,
	entryRepo repos.EntryRepo,
	proposalRepo repos.ProposalRepo,
	decisionRepo repos.DecisionRepo,
) ProposalService {
	if genTimeout <= 0 {
		genTimeout = 60 * time.Second
	}
	return &proposalService{
		db:           db,
		log:          baseLog.With("service", "ProposalService"),
		cfg:          cfg,
		generator:    generator,
		genTimeout:   genTimeout,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		proposalRepo: proposalRepo,
		decisionRepo: decisionRepo,
	}
}

func (s *proposalService) ProposeForEntry(ctx context.Context, entryID uuid.UUID) ([]*types.SemanticProposal, error) {
	entry, err := s.entryRepo.GetByID(ctx, nil, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apierr.NotFound("entry_not_found", "entry not found")
	}
	session, err := s.sessionRepo.GetByID(ctx, nil, entry.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("session_not_found", "session not found")
	}
	if session.Status != types.SessionStatusDraft {
		return nil, apierr.Forbidden("session_finalized", "cannot request proposals after finalize")
	}

	// Allow-list from the bound config: guidance for the generator, not a
	// filter applied to its output.
	var allowed []string
	if qs, err := s.cfg.QuestionSet(session.QuestionSetID, session.QuestionSetVersion); err == nil {
		if q := qs.Question(entry.QuestionID); q != nil {
			allowed = q.ExpectedMechanisms
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()
	spans, err := s.generator.Generate(genCtx, entry.Text, allowed)
	if err != nil {
		s.log.Warn("proposal generation failed", "error", err, "entry_id", entryID)
		return nil, apierr.Upstream("proposal_generation_failed", "proposal generator: %v", err)
	}

	// Verbatim-capture guard: every span must be an exact substring of the
	// entry text. One non-conforming span rejects the whole batch and nothing
	// is persisted.
	now := time.Now().UTC()
	rows := make([]*types.SemanticProposal, 0, len(spans))
	for _, span := range spans {
		if strings.TrimSpace(span.MechanismID) == "" {
			return nil, apierr.Upstream("proposal_invalid", "proposal generator returned an empty mechanism_id")
		}
		if span.SpanText == "" || !strings.Contains(entry.Text, span.SpanText) {
			return nil, apierr.Upstream("proposal_span_mismatch", "proposal span is not a verbatim substring of the entry text")
		}
		rows = append(rows, &types.SemanticProposal{
			ID:          uuid.New(),
			EntryID:     entry.ID,
			MechanismID: span.MechanismID,
			SpanText:    span.SpanText,
			Rationale:   span.Rationale,
			Confidence:  span.Confidence,
			CreatedAt:   now,
		})
	}

	txErr := runInTx(s.db, func(tx *gorm.DB) error {
		current, err := s.sessionRepo.GetByID(ctx, tx, entry.SessionID)
		if err != nil {
			return err
		}
		if current == nil || current.Status != types.SessionStatusDraft {
			return apierr.Forbidden("session_finalized", "cannot request proposals after finalize")
		}
		_, err = s.proposalRepo.Create(ctx, tx, rows)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("proposals created", "entry_id", entryID, "count", len(rows))
	return rows, nil
}

func (s *proposalService) ListForEntry(ctx context.Context, entryID uuid.UUID) ([]*types.SemanticProposal, error) {
	entry, err := s.entryRepo.GetByID(ctx, nil, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apierr.NotFound("entry_not_found", "entry not found")
	}
	return s.proposalRepo.GetByEntryID(ctx, nil, entryID)
}

func (s *proposalService) Decide(ctx context.Context, proposalID uuid.UUID, decision string, reason *string) (*types.ProposalDecision, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, nil, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, apierr.NotFound("proposal_not_found", "proposal not found")
	}
	entry, err := s.entryRepo.GetByID(ctx, nil, proposal.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apierr.NotFound("entry_not_found", "entry not found")
	}
	session, err := s.sessionRepo.GetByID(ctx, nil, entry.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Status != types.SessionStatusDraft {
		return nil, apierr.Forbidden("session_finalized", "cannot decide after finalize")
	}
	if !types.ValidDecision(decision) {
		return nil, apierr.Validation("invalid_decision_value", "decision must be one of: accepted_manual, rejected_manual, undecided")
	}

	row := &types.ProposalDecision{
		ID:         uuid.New(),
		ProposalID: proposalID,
		Decision:   decision,
		Reason:     reason,
		DecidedBy:  requestdata.Actor(ctx, "operator"),
		DecidedAt:  time.Now().UTC(),
	}

	txErr := runInTx(s.db, func(tx *gorm.DB) error {
		current, err := s.sessionRepo.GetByID(ctx, tx, entry.SessionID)
		if err != nil {
			return err
		}
		if current == nil || current.Status != types.SessionStatusDraft {
			return apierr.Forbidden("session_finalized", "cannot decide after finalize")
		}
		_, err = s.decisionRepo.Create(ctx, tx, row)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Debug("decision recorded", "proposal_id", proposalID, "decision", decision)
	return row, nil
}
