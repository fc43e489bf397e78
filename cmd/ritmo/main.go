package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ritmo-app/ritmo/internal/cli"
	"github.com/ritmo-app/ritmo/internal/db"
	"github.com/ritmo-app/ritmo/internal/intelligence"
	"github.com/ritmo-app/ritmo/internal/llm"
	"github.com/ritmo-app/ritmo/internal/repository"
	"github.com/ritmo-app/ritmo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ritmo/ritmo.db
	dbPath := os.Getenv("RITMO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ritmo", "ritmo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	subjectRepo := repository.NewSQLiteSubjectRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	planSvc := service.NewPlanService(planRepo, sessionRepo, profileRepo)
	profileSvc := service.NewProfileService(profileRepo)

	app := &cli.App{
		Plans:    planSvc,
		Sessions: service.NewSessionService(sessionRepo, uow),
		Stats:    service.NewStatsService(sessionRepo),
		Subjects: service.NewSubjectService(subjectRepo),
		Profiles: profileSvc,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the AI coach only when the LLM is enabled
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		adjust := intelligence.NewAdjustService(llmClient)
		app.Coach = service.NewCoachService(adjust, sessionRepo, planSvc, profileSvc)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
