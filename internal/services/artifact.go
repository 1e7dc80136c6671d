package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arylegal/ary-backend/internal/apierr"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/types"
)

type ArtifactService interface {
	// Get returns the stored artifact. The document bytes are served exactly
	// as persisted at finalize time, so repeated reads are byte-identical.
	Get(ctx context.Context, id uuid.UUID) (*types.Artifact, error)
	GetForSession(ctx context.Context, sessionID uuid.UUID) (*types.Artifact, error)
}

type artifactService struct {
	db           *gorm.DB
	log          *logger.Logger
	artifactRepo repos.ArtifactRepo
}

func NewArtifactService(db *gorm.DB, baseLog *logger.Logger, artifactRepo repos.ArtifactRepo) ArtifactService {
	return &artifactService{
		db:           db,
		log:          baseLog.With("service", "ArtifactService"),
		artifactRepo: artifactRepo,
	}
}

func (s *artifactService) Get(ctx context.Context, id uuid.UUID) (*types.Artifact, error) {
	a, err := s.artifactRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apierr.NotFound("artifact_not_found", "artifact not found")
	}
	return a, nil
}

func (s *artifactService) GetForSession(ctx context.Context, sessionID uuid.UUID) (*types.Artifact, error) {
	a, err := s.artifactRepo.GetBySessionID(ctx, nil, sessionID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apierr.NotFound("artifact_not_found", "artifact not found")
	}
	return a, nil
}
