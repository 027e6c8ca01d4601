package app

import (
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/roster-manager/internal/config"
	"github.com/riskibarqy/roster-manager/internal/domain/roster"
	"github.com/riskibarqy/roster-manager/internal/infrastructure/repository/file"
	"github.com/riskibarqy/roster-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/roster-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/roster-manager/internal/interfaces/console"
	"github.com/riskibarqy/roster-manager/internal/platform/logging"
	"github.com/riskibarqy/roster-manager/internal/usecase"
)

// NewSession builds the interactive session for cfg. The returned close
// function releases the storage backend and must be called once the session ends.
func NewSession(cfg config.Config, in io.Reader, out io.Writer, logger *logging.Logger) (*console.Session, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repo, closeRepo, err := newRosterRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	service := usecase.NewRosterService(repo, logger)
	return console.NewSession(service, in, out, logger), closeRepo, nil
}

func newRosterRepository(cfg config.Config, logger *logging.Logger) (roster.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendFile:
		repo := file.NewRosterRepository(file.Options{
			InputPath:     cfg.InputFile,
			OutputPath:    cfg.OutputFile,
			Format:        cfg.FileFormat,
			SkipMalformed: cfg.MalformedLines == config.MalformedSkip,
		}, logger.With("backend", config.BackendFile))
		return repo, noop, nil

	case config.BackendMemory:
		repo := memory.NewRosterRepository(cfg.InputSnapshot, cfg.OutputSnapshot)
		repo.Put(cfg.InputSnapshot, memory.SeedRoster())
		return repo, noop, nil

	case config.BackendPostgres:
		dsn, err := cfg.PostgresDSN()
		if err != nil {
			return nil, nil, err
		}
		db, err := sqlx.Open("postgres", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(1)
		logger.Info("postgres roster backend", "input_snapshot", cfg.InputSnapshot, "output_snapshot", cfg.OutputSnapshot)
		return postgres.NewRosterRepository(db, cfg.InputSnapshot, cfg.OutputSnapshot), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported roster backend %q", cfg.Backend)
	}
}
