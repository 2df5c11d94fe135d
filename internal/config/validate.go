package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRateLimit < 1 {
		return fmt.Errorf("server.write_rate_limit must be >= 1 (got %d)", c.Server.WriteRateLimit)
	}

	if err := c.Alert.validate(); err != nil {
		return fmt.Errorf("alert: %w", err)
	}

	if err := c.Sweep.validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	return nil
}

func (a *AlertConfig) validate() error {
	if a.ThrottleWindow <= 0 {
		return fmt.Errorf("throttle_window must be > 0 (got %v)", a.ThrottleWindow)
	}
	if a.StaleContradictionAfter <= 0 {
		return fmt.Errorf("stale_contradiction_after must be > 0 (got %v)", a.StaleContradictionAfter)
	}
	return nil
}

func (s *SweepConfig) validate() error {
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", s.Concurrency)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}

	raw := strings.TrimSpace(s.ActorIDRaw)
	if raw == "" {
		s.ActorID = uuid.Nil
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("actor_id: %w", err)
	}
	s.ActorID = id
	return nil
}
