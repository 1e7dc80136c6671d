package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arylegal/ary-backend/internal/config"
	"github.com/arylegal/ary-backend/internal/db"
	"github.com/arylegal/ary-backend/internal/handlers"
	"github.com/arylegal/ary-backend/internal/logger"
	"github.com/arylegal/ary-backend/internal/middleware"
	"github.com/arylegal/ary-backend/internal/observability"
	"github.com/arylegal/ary-backend/internal/proposer"
	"github.com/arylegal/ary-backend/internal/repos"
	"github.com/arylegal/ary-backend/internal/server"
	"github.com/arylegal/ary-backend/internal/services"
	"github.com/arylegal/ary-backend/internal/utils"
)

const serviceName = "ary-backend"

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		Version:     utils.GetEnv("SERVICE_VERSION", "", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Protocol config: versioned question set + mechanism set, bound into
	// sessions at creation
	questionSetPath := utils.GetEnv("QUESTION_SET_PATH", "config/question_set.json", log)
	mechanismSetPath := utils.GetEnv("MECHANISM_SET_PATH", "config/mechanism_set.json", log)
	questionSet, err := config.LoadQuestionSet(questionSetPath)
	if err != nil {
		log.Error("Could not load question set", "error", err)
		os.Exit(1)
	}
	mechanismSet, err := config.LoadMechanismSet(mechanismSetPath)
	if err != nil {
		log.Error("Could not load mechanism set", "error", err)
		os.Exit(1)
	}
	cfgProvider, err := config.NewStaticProvider(
		[]*config.QuestionSetConfig{questionSet},
		[]*config.MechanismSetConfig{mechanismSet},
	)
	if err != nil {
		log.Error("Could not build config provider", "error", err)
		os.Exit(1)
	}

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()
	if err := db.AutoMigrateAll(dbService.DB()); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	caseRepo := repos.NewCaseRepo(theDB, log)
	sessionRepo := repos.NewSessionRepo(theDB, log)
	entryRepo := repos.NewEntryRepo(theDB, log)
	proposalRepo := repos.NewProposalRepo(theDB, log)
	decisionRepo := repos.NewDecisionRepo(theDB, log)
	artifactRepo := repos.NewArtifactRepo(theDB, log)

	// Proposal generator: LLM-backed when configured, otherwise inert
	generator, err := proposer.NewOpenAIGenerator(log)
	if err != nil {
		log.Warn("Proposal generator not configured, proposals will be empty", "reason", err)
		generator = proposer.NewStaticGenerator()
	}
	genTimeout := time.Duration(utils.GetEnvAsInt("PROPOSER_TIMEOUT_SECONDS", 60, log)) * time.Second

	// Services
	log.Info("Setting up services...")
	caseService := services.NewCaseService(theDB, log, caseRepo)
	sessionService := services.NewSessionService(theDB, log, cfgProvider, caseRepo, sessionRepo, entryRepo, proposalRepo, decisionRepo, artifactRepo)
	entryService := services.NewEntryService(theDB, log, cfgProvider, sessionRepo, entryRepo, proposalRepo, decisionRepo)
	proposalService := services.NewProposalService(theDB, log, cfgProvider, generator, genTimeout, sessionRepo, entryRepo, proposalRepo, decisionRepo)
	artifactService := services.NewArtifactService(theDB, log, artifactRepo)

	// Handlers
	log.Info("Setting up handlers...")
	caseHandler := handlers.NewCaseHandler(caseService, sessionService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	entryHandler := handlers.NewEntryHandler(entryService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	decisionHandler := handlers.NewDecisionHandler(proposalService)
	artifactHandler := handlers.NewArtifactHandler(sessionService, artifactService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ServiceName:     serviceName,
		CORSOrigins:     utils.GetEnv("CORS_ORIGINS", "", log),
		ActorMiddleware: middleware.NewActorMiddleware(log),
		CaseHandler:     caseHandler,
		SessionHandler:  sessionHandler,
		EntryHandler:    entryHandler,
		ProposalHandler: proposalHandler,
		DecisionHandler: decisionHandler,
		ArtifactHandler: artifactHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
