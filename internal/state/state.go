package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vavargasdev/vanotes/internal/attachment"
	"github.com/vavargasdev/vanotes/internal/category"
	"github.com/vavargasdev/vanotes/internal/config"
	"github.com/vavargasdev/vanotes/internal/constants"
	"github.com/vavargasdev/vanotes/internal/services/cards"
	"github.com/vavargasdev/vanotes/internal/services/list"
	"github.com/vavargasdev/vanotes/internal/store"
)

// State wires the store, category registry, attachment handler and
// controllers together for a single data directory. Everything the TUI
// and commands need hangs off of here.
type State struct {
	DataDir     string
	Config      *config.Config
	Store       *store.Store
	Registry    *category.Registry
	Attachments *attachment.Handler
	Cards       *cards.Service
	List        *list.Service
	Logger      *slog.Logger

	logFile io.Closer
}

// NewState opens (bootstrapping on first run) everything under dataDir.
// Callers own the returned state and must Close it.
func NewState(dataDir string) (*State, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}

	if err := store.Bootstrap(filepath.Join(dir, constants.DBFile)); err != nil {
		return nil, err
	}

	cfg, err := config.EnsureDefault(filepath.Join(dir, constants.ConfigFile))
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(dir)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(filepath.Join(dir, constants.DBFile))
	if err != nil {
		logFile.Close()
		return nil, err
	}

	reg, err := category.Load(filepath.Join(dir, constants.CategoriesFile), st, cfg.PaletteKeys())
	if err != nil {
		st.Close()
		logFile.Close()
		return nil, err
	}

	attach := attachment.NewHandler(
		filepath.Join(dir, constants.ImageDir),
		filepath.Join(dir, constants.ThumbDir),
		constants.ThumbSize,
		attachment.NewSystemClipboard(),
		st,
		logger,
	)

	cardSvc := cards.NewService(st, reg, logger)
	listSvc := list.NewService(st, cardSvc, cfg.MaxItems, logger)

	return &State{
		DataDir:     dir,
		Config:      cfg,
		Store:       st,
		Registry:    reg,
		Attachments: attach,
		Cards:       cardSvc,
		List:        listSvc,
		Logger:      logger,
		logFile:     logFile,
	}, nil
}

func resolveDataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = filepath.Join(wd, constants.DataDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

func newLogger(dir string) (*slog.Logger, io.WriteCloser, error) {
	f, err := os.OpenFile(
		filepath.Join(dir, constants.LogFile),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), f, nil
}

// Close releases the store and log file. Safe to call more than once.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logFile = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
