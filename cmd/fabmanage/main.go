package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/cli/formatter"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/config"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/logging"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", zap.String("path", cfg.DBPath))

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	tileRepo := repository.NewSQLiteTileRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	stockRepo := repository.NewSQLiteStockRepo(database)
	reservationRepo := repository.NewSQLiteReservationRepo(database)
	requestRepo := repository.NewSQLitePurchaseRequestRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	calendarSvc := service.NewCalendarService(resourceRepo, eventRepo, tileRepo, uow, logger, observer)
	materialsSvc := service.NewMaterialsService(tileRepo, stockRepo, reservationRepo, requestRepo, uow, logger, observer)
	targets := service.SchedulingTargets{
		DefaultDesigner:  cfg.Scheduling.DefaultDesigner,
		CNCResource:      cfg.Scheduling.CNCResource,
		AssemblyResource: cfg.Scheduling.AssemblyResource,
	}

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, observer),
		Import:    service.NewImportService(uow, observer),
		Tiles:     service.NewTileService(tileRepo, depRepo, projectRepo, uow, observer),
		Workflow:  service.NewWorkflowService(tileRepo, calendarSvc, materialsSvc, targets, logger, observer),
		Calendar:  calendarSvc,
		Materials: materialsSvc,
		Costs:     cfg.Costs.Options(),
	}

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}
