package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/apierr"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/requestdata"
	"github.com/arylegal/ary-backend/internal/types"
)

const defaultCaseDomain = "Legal Strategy"

type CreateCaseInput struct {
	Domain              string  `json:"domain"`
	CaseNameOrReference string  `json:"case_name_or_reference"`
	Jurisdiction        *string `json:"jurisdiction,omitempty"`
	ParticipantRole     string  `json:"participant_role"`
}

type CaseService interface {
	Create(ctx context.Context, in CreateCaseInput) (*types.Case, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Case, error)
	List(ctx context.Context) ([]*types.Case, error)
}

type caseService struct {
	db       *gorm.DB
	log      *logger.Logger
	caseRepo repos.CaseRepo
}

func NewCaseService(db *gorm.DB, baseLog *logger.Logger, caseRepo repos.CaseRepo) CaseService {
	return &caseService{
		db:       db,
		log:      baseLog.With("service", "CaseService"),
		caseRepo: caseRepo,
	}
}

func (s *caseService) Create(ctx context.Context, in CreateCaseInput) (*types.Case, error) {
	if strings.TrimSpace(in.CaseNameOrReference) == "" || strings.TrimSpace(in.ParticipantRole) == "" {
		return nil, apierr.Validation("case_fields_required", "case_name_or_reference and participant_role are required")
	}
	domain := in.Domain
	if strings.TrimSpace(domain) == "" {
		domain = defaultCaseDomain
	}

	c := &types.Case{
		ID:                  uuid.New(),
		Domain:              domain,
		CaseNameOrReference: in.CaseNameOrReference,
		Jurisdiction:        in.Jurisdiction,
		ParticipantRole:     in.ParticipantRole,
		CreatedBy:           requestdata.Actor(ctx, "system"),
		CreatedAt:           time.Now().UTC(),
	}
	created, err := s.caseRepo.Create(ctx, nil, c)
	if err != nil {
		s.log.Error("create case failed", "error", err)
		return nil, err
	}
	s.log.Info("case created", "case_id", created.ID)
	return created, nil
}

func (s *caseService) Get(ctx context.Context, id uuid.UUID) (*types.Case, error) {
	c, err := s.caseRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apierr.NotFound("case_not_found", "case not found")
	}
	return c, nil
}

func (s *caseService) List(ctx context.Context) ([]*types.Case, error) {
	return s.caseRepo.List(ctx, nil)
}
