package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shborse/Task-Manager/app/models"
)

const (
	DefaultAddr         = "0.0.0.0:8080"
	DefaultHistoryLimit = 128
	DefaultNotifyLimit  = 5
)

// Neo4j holds the optional graph mirror connection. An empty URI disables it.
type Neo4j struct {
	URI      string
	User     string
	Password string
}

// Enabled reports whether a mirror should be started.
func (n Neo4j) Enabled() bool { return n.URI != "" }

// Config is the server configuration, filled from flags and environment.
type Config struct {
	Addr         string
	StaticDir    string
	DefaultDue   string
	HistoryLimit int
	NotifyLimit  int
	Neo4j        Neo4j
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Addr:         DefaultAddr,
		DefaultDue:   models.DefaultDue.Format(models.DateLayout),
		HistoryLimit: DefaultHistoryLimit,
		NotifyLimit:  DefaultNotifyLimit,
		Neo4j:        Neo4j{User: "neo4j"},
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is required")
	}
	if _, err := c.DueDate(); err != nil {
		return err
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.NotifyLimit < 1 {
		return fmt.Errorf("notification limit must be at least 1, got %d", c.NotifyLimit)
	}
	return nil
}

// DueDate parses DefaultDue. An empty value falls back to models.DefaultDue.
func (c Config) DueDate() (time.Time, error) {
	if c.DefaultDue == "" {
		return models.DefaultDue, nil
	}
	d, err := models.ParseDate(c.DefaultDue)
	if err != nil {
		return time.Time{}, fmt.Errorf("default due: %w", err)
	}
	return d, nil
}
