package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVision(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateScanner(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateVision() error {
	if c.Vision.BaseURL == "" {
		return errors.New("vision.base_url must be set")
	}
	if c.Vision.TimeoutSec < minServiceTimeoutSeconds {
		return errors.New("vision.timeout_seconds must be at least 1")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/filmvault/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'filmvault config init')", defaultPath)
	}
	if c.TMDB.BaseURL == "" {
		return errors.New("tmdb.base_url must be set")
	}
	if c.TMDB.TimeoutSec < minServiceTimeoutSeconds {
		return errors.New("tmdb.timeout_seconds must be at least 1")
	}
	if c.TMDB.Language != "" {
		if _, err := language.Parse(c.TMDB.Language); err != nil {
			return fmt.Errorf("tmdb.language %q is not a valid BCP 47 tag: %w", c.TMDB.Language, err)
		}
	}
	return nil
}

func (c *Config) validateScanner() error {
	if c.Scanner.MaxCandidates < 1 || c.Scanner.MaxCandidates > maxCandidatesUpperBound {
		return fmt.Errorf("scanner.max_candidates must be between 1 and %d", maxCandidatesUpperBound)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
