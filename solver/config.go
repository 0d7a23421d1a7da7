package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/23skdu/varlda/internal/logging"
)

// Config validation errors
var (
	ErrInvalidMaxIter = errors.New("max_iter must be positive")
	ErrInvalidTol     = errors.New("tol must be non-negative")
)

// Verbosity controls how much the driver logs while iterating.
type Verbosity int

const (
	// Silent emits nothing.
	Silent Verbosity = iota
	// PerIteration logs the objective after every sweep.
	PerIteration
	// FinalOnly logs a single summary when the run ends.
	FinalOnly
)

func (v Verbosity) String() string {
	switch v {
	case PerIteration:
		return "per_iteration"
	case FinalOnly:
		return "final_only"
	default:
		return "silent"
	}
}

// UnmarshalText lets envconfig parse verbosity names from the environment.
func (v *Verbosity) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "silent":
		*v = Silent
	case "per_iteration", "periteration", "per-iteration":
		*v = PerIteration
	case "final_only", "finalonly", "final-only":
		*v = FinalOnly
	default:
		return fmt.Errorf("unknown verbosity %q", string(text))
	}
	return nil
}

// Config holds the driver's stopping and reporting policy. The engine
// being driven never sees it; termination is owned entirely here.
type Config struct {
	// MaxIter caps the number of update sweeps.
	MaxIter int `envconfig:"MAX_ITER" default:"100"`
	// Tol is the relative objective-change threshold for convergence.
	Tol float64 `envconfig:"TOL" default:"1e-6"`
	// Verbosity selects silent, per_iteration or final_only reporting.
	Verbosity Verbosity `envconfig:"VERBOSITY" default:"silent"`
	// Logger overrides the default solver logger when non-nil.
	Logger *zerolog.Logger `ignored:"true"`
}

// DefaultConfig returns the default stopping policy.
func DefaultConfig() Config {
	return Config{
		MaxIter:   100,
		Tol:       1e-6,
		Verbosity: Silent,
	}
}

// ConfigFromEnv loads the stopping policy from VARLDA_* environment
// variables, honoring a .env file when one is present.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("VARLDA", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error if invalid
func (c Config) Validate() error {
	if c.MaxIter <= 0 {
		return ErrInvalidMaxIter
	}
	if c.Tol < 0 {
		return ErrInvalidTol
	}
	return nil
}

func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	log, err := logging.NewLogger(logging.Config{
		Format:    "console",
		Level:     "info",
		Component: "solver",
	})
	if err != nil {
		return zerolog.Nop()
	}
	return log
}
