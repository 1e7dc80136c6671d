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
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/types"
)

type EntryService interface {
	// Add records one verbatim answer. Edge whitespace is trimmed, nothing
	// else is touched; an empty string is a legal answer distinct from "no
	// entry". For a single-cardinality question the new entry replaces any
	// prior one for the same (session, question), cascading its proposals and
	// decisions.
	Add(ctx context.Context, sessionID uuid.UUID, questionID, text string) (*types.AnswerEntry, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]*types.AnswerEntry, error)
	// Delete removes one entry and cascades its proposals and their
	// decisions. An entry under the wrong session is not found, never
	// silently ignored.
	Delete(ctx context.Context, sessionID, entryID uuid.UUID) error
}

type entryService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          config.Provider
	sessionRepo  repos.SessionRepo
	entryRepo    repos.EntryRepo
	proposalRepo repos.ProposalRepo
	decisionRepo repos.DecisionRepo
}

func NewEntryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg config.Provider,
	sessionRepo repos.SessionRepo,
	entryRepo repos.EntryRepo,
	proposalRepo repos.ProposalRepo,
	decisionRepo repos.DecisionRepo,
) EntryService {
	return &entryService{
		db:           db,
		log:          baseLog.With("service", "EntryService"),
		cfg:          cfg,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		proposalRepo: proposalRepo,
		decisionRepo: decisionRepo,
	}
}

func (s *entryService) Add(ctx context.Context, sessionID uuid.UUID, questionID, text string) (*types.AnswerEntry, error) {
	session, err := s.sessionRepo.GetByID(ctx, nil, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("session_not_found", "session not found")
	}
	if session.Status != types.SessionStatusDraft {
		return nil, apierr.Forbidden("session_finalized", "cannot add entries after finalize")
	}
	if strings.TrimSpace(questionID) == "" {
		return nil, apierr.Validation("question_id_required", "question_id is required")
	}

	entry := &types.AnswerEntry{
		ID:         uuid.New(),
		SessionID:  sessionID,
		QuestionID: questionID,
		Text:       strings.TrimSpace(text),
		CreatedAt:  time.Now().UTC(),
	}

	txErr := runInTx(s.db, func(tx *gorm.DB) error {
		if s.isSingleCardinality(session, questionID) {
			existing, err := s.entryRepo.GetBySessionAndQuestion(ctx, tx, sessionID, questionID)
			if err != nil {
				return err
			}
			if err := s.cascadeDelete(ctx, tx, existing); err != nil {
				return err
			}
		}
		inserted, err := s.entryRepo.CreateIfSessionDraft(ctx, tx, entry)
		if err != nil {
			return err
		}
		if !inserted {
			// Finalize won the race between our status read and this insert.
			return apierr.Forbidden("session_finalized", "cannot add entries after finalize")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Debug("entry added", "session_id", sessionID, "question_id", questionID, "entry_id", entry.ID)
	return entry, nil
}

func (s *entryService) List(ctx context.Context, sessionID uuid.UUID) ([]*types.AnswerEntry, error) {
	session, err := s.sessionRepo.GetByID(ctx, nil, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("session_not_found", "session not found")
	}
	return s.entryRepo.GetBySessionID(ctx, nil, sessionID)
}

func (s *entryService) Delete(ctx context.Context, sessionID, entryID uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(ctx, nil, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return apierr.NotFound("session_not_found", "session not found")
	}
	if session.Status != types.SessionStatusDraft {
		return apierr.Forbidden("session_finalized", "cannot delete entries after finalize")
	}

	entry, err := s.entryRepo.GetByID(ctx, nil, entryID)
	if err != nil {
		return err
	}
	if entry == nil || entry.SessionID != sessionID {
		return apierr.NotFound("entry_not_found", "entry not found")
	}

	return runInTx(s.db, func(tx *gorm.DB) error {
		return s.cascadeDelete(ctx, tx, []*types.AnswerEntry{entry})
	})
}

// isSingleCardinality resolves the bound question set; a question unknown to
// the bound set is treated as multi_atomic.
func (s *entryService) isSingleCardinality(session *types.Session, questionID string) bool {
	qs, err := s.cfg.QuestionSet(session.QuestionSetID, session.QuestionSetVersion)
	if err != nil {
		s.log.Warn("bound question set unavailable, treating question as multi_atomic",
			"question_set", session.QuestionSetID+"@"+session.QuestionSetVersion, "error", err)
		return false
	}
	q := qs.Question(questionID)
	return q != nil && q.AnswerMode == config.AnswerModeSingle
}

// cascadeDelete removes entries together with their proposals and those
// proposals' decisions.
func (s *entryService) cascadeDelete(ctx context.Context, tx *gorm.DB, entries []*types.AnswerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	entryIDs := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.ID
	}
	proposals, err := s.proposalRepo.GetByEntryIDs(ctx, tx, entryIDs)
	if err != nil {
		return err
	}
	proposalIDs := make([]uuid.UUID, len(proposals))
	for i, p := range proposals {
		proposalIDs[i] = p.ID
	}
	if err := s.decisionRepo.DeleteByProposalIDs(ctx, tx, proposalIDs); err != nil {
		return err
	}
	if err := s.proposalRepo.DeleteByEntryIDs(ctx, tx, entryIDs); err != nil {
		return err
	}
	return s.entryRepo.DeleteByIDs(ctx, tx, entryIDs)
}
