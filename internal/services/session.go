package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/apierr"
	"github.com/arylegal/ary-backend/internal/config"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/requestdata"
	"github.com/arylegal/ary-backend/internal/types"
)

type SessionService interface {
	// Create binds the current question-set and mechanism-set id+version into
	// the new session; no later config change affects it.
	Create(ctx context.Context, caseID uuid.UUID) (*types.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Session, error)
	ListForCase(ctx context.Context, caseID uuid.UUID) ([]*types.Session, error)
	// Finalize drives the one-way draft -> finalized transition and assembles
	// the session's artifact in the same transaction. Not idempotent: a second
	// call fails with a conflict.
	Finalize(ctx context.Context, sessionID uuid.UUID) (*types.Artifact, error)
}

type sessionService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          config.Provider
	caseRepo     repos.CaseRepo
	sessionRepo  repos.SessionRepo
	entryRepo    repos.EntryRepo
	proposalRepo repos.ProposalRepo
	decisionRepo repos.DecisionRepo
	artifactRepo repos.ArtifactRepo
}

func NewSessionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg config.Provider,
	caseRepo repos.CaseRepo,
	sessionRepo repos.SessionRepo,
	entryRepo repos.EntryRepo,
	proposalRepo repos.ProposalRepo,
	decisionRepo repos.DecisionRepo,
	artifactRepo repos.ArtifactRepo,
) SessionService {
	return &sessionService{
		db:           db,
		log:          baseLog.With("service", "SessionService"),
		cfg:          cfg,
		caseRepo:     caseRepo,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		proposalRepo: proposalRepo,
		decisionRepo: decisionRepo,
		artifactRepo: artifactRepo,
	}
}

func (s *sessionService) Create(ctx context.Context, caseID uuid.UUID) (*types.Session, error) {
	c, err := s.caseRepo.GetByID(ctx, nil, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierr.NotFound("case_not_found", "case not found")
	}

	qs := s.cfg.CurrentQuestionSet()
	ms := s.cfg.CurrentMechanismSet()

	session := &types.Session{
		ID:                  uuid.New(),
		CaseID:              c.ID,
		QuestionSetID:       qs.QuestionSetID,
		QuestionSetVersion:  qs.Version,
		MechanismSetID:      ms.MechanismSetID,
		MechanismSetVersion: ms.Version,
		Status:              types.SessionStatusDraft,
		CreatedBy:           requestdata.Actor(ctx, "system"),
		CreatedAt:           time.Now().UTC(),
	}
	created, err := s.sessionRepo.Create(ctx, nil, session)
	if err != nil {
		s.log.Error("create session failed", "error", err, "case_id", caseID)
		return nil, err
	}
	s.log.Info("session created",
		"session_id", created.ID,
		"case_id", caseID,
		"question_set", qs.QuestionSetID+"@"+qs.Version,
		"mechanism_set", ms.MechanismSetID+"@"+ms.Version,
	)
	return created, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("session_not_found", "session not found")
	}
	return session, nil
}

func (s *sessionService) ListForCase(ctx context.Context, caseID uuid.UUID) ([]*types.Session, error) {
	c, err := s.caseRepo.GetByID(ctx, nil, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierr.NotFound("case_not_found", "case not found")
	}
	return s.sessionRepo.GetByCaseID(ctx, nil, caseID)
}

func (s *sessionService) Finalize(ctx context.Context, sessionID uuid.UUID) (*types.Artifact, error) {
	session, err := s.sessionRepo.GetByID(ctx, nil, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apierr.NotFound("session_not_found", "session not found")
	}
	if session.Status != types.SessionStatusDraft {
		return nil, apierr.Conflict("session_already_finalized", "session already finalized")
	}

	// Resolve the BOUND question set, never the current one.
	questionSet, err := s.cfg.QuestionSet(session.QuestionSetID, session.QuestionSetVersion)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "question_set_unavailable", err)
	}

	now := time.Now().UTC()
	var artifact *types.Artifact

	// Status flip and artifact insert commit or roll back together: a session
	// is never finalized without its artifact, and no artifact ever exists
	// for a draft session.
	txErr := runInTx(s.db, func(tx *gorm.DB) error {
		flipped, err := s.sessionRepo.FinalizeDraft(ctx, tx, sessionID, now)
		if err != nil {
			return err
		}
		if !flipped {
			return apierr.Conflict("session_already_finalized", "session already finalized")
		}
		session.Status = types.SessionStatusFinalized
		session.FinalizedAt = &now

		entries, err := s.entryRepo.GetBySessionID(ctx, tx, sessionID)
		if err != nil {
			return err
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
		decisions, err := s.decisionRepo.GetByProposalIDs(ctx, tx, proposalIDs)
		if err != nil {
			return err
		}

		artifactID := uuid.New()
		doc := BuildArtifactDocument(artifactID, session, questionSet, entries, proposals, decisions)
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}

		artifact, err = s.artifactRepo.Create(ctx, tx, &types.Artifact{
			ID:        artifactID,
			SessionID: sessionID,
			Document:  datatypes.JSON(raw),
			CreatedAt: now,
		})
		return err
	})
	if txErr != nil {
		s.log.Warn("finalize failed", "error", txErr, "session_id", sessionID)
		return nil, txErr
	}

	s.log.Info("session finalized", "session_id", sessionID, "artifact_id", artifact.ID)
	return artifact, nil
}
