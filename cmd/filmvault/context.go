package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"filmvault/internal/catalog"
	"filmvault/internal/config"
	"filmvault/internal/enhance"
	"filmvault/internal/logging"
	"filmvault/internal/scan"
	"filmvault/internal/tmdb"
	"filmvault/internal/vision"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	})
	return c.logger, c.loggerErr
}

// newScanner builds the scan pipeline from configuration: image codec,
// Vision OCR client, and TMDB search client with per-service timeouts.
func (c *commandContext) newScanner() (*scan.Scanner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	extractor, err := vision.New(cfg.Vision.APIKey, cfg.Vision.BaseURL,
		vision.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Vision.TimeoutSec) * time.Second}))
	if err != nil {
		return nil, err
	}
	searcher, err := c.newSearcher()
	if err != nil {
		return nil, err
	}
	return scan.NewScanner(enhance.NewCodec(), extractor, searcher, logger, cfg.Scanner.MaxCandidates), nil
}

func (c *commandContext) newSearcher() (tmdb.Searcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TMDB.TimeoutSec) * time.Second}))
}

// withStore opens the catalog for the duration of fn and always closes it.
func (c *commandContext) withStore(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func requireCollection(store *catalog.Store, cmd *cobra.Command, name string) (*catalog.Collection, error) {
	collection, err := store.FindCollectionByName(cmd.Context(), name)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("collection %q not found (create it with 'filmvault collection create')", name)
	}
	return collection, nil
}
