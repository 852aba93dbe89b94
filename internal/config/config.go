// Package config loads process configuration from the environment, with an
// optional .env file read through godotenv.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// Environment variable names.
const (
	EnvHTTPAddr           = "MAZESOLVER_HTTP_ADDR"
	EnvBaseURL            = "MAZESOLVER_BASE_URL"
	EnvGinMode            = "GIN_MODE"
	EnvLogLevel           = "MAZESOLVER_LOG_LEVEL"
	EnvDefaultMaze        = "MAZESOLVER_DEFAULT_MAZE"
	EnvDefaultAlgorithm   = "MAZESOLVER_DEFAULT_ALGORITHM"
	EnvSMAMemory          = "MAZESOLVER_SMA_MEMORY"
	EnvRandomWalkMaxSteps = "MAZESOLVER_RANDOM_WALK_MAX_STEPS"
	EnvSolveTimeout       = "MAZESOLVER_SOLVE_TIMEOUT"
	EnvFrameDelay         = "MAZESOLVER_FRAME_DELAY"
)

// ErrInvalid is wrapped by every parse or validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	HTTPAddr           string             // Address the HTTP API listens on
	BaseURL            string             // Prefix for API routes
	GinMode            string             // Mode for the Gin framework (release, debug, test)
	LogLevel           slog.Level         // Minimum level for the process logger
	DefaultMaze        string             // Built-in maze used when none is named
	DefaultAlgorithm   pathfind.Algorithm // Solver used when none is named
	SMAMemory          int                // SMA* open-list bound
	RandomWalkMaxSteps int                // Random Walk move cap, 0 = none
	SolveTimeout       time.Duration      // Upper bound for one solve request
	FrameDelay         time.Duration      // Delay between CLI animation frames
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		HTTPAddr:         ":8080",
		BaseURL:          "/api",
		GinMode:          "release",
		LogLevel:         slog.LevelInfo,
		DefaultMaze:      "Maze 1",
		DefaultAlgorithm: pathfind.AlgoBFS,
		SMAMemory:        pathfind.DefaultMemoryLimit,
		SolveTimeout:     10 * time.Second,
		FrameDelay:       200 * time.Millisecond,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables that are already set,
// then builds a Config from the environment. A missing default .env file is
// not an error; a missing named file is.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading env files: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only. Unset or empty
// variables keep their Default values.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.HTTPAddr = getEnvWithDefault(EnvHTTPAddr, cfg.HTTPAddr)
	cfg.BaseURL = getEnvWithDefault(EnvBaseURL, cfg.BaseURL)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)
	cfg.DefaultMaze = getEnvWithDefault(EnvDefaultMaze, cfg.DefaultMaze)

	var err error
	if cfg.LogLevel, err = getEnvAsLevel(EnvLogLevel, cfg.LogLevel); err != nil {
		return Config{}, err
	}
	algo := getEnvWithDefault(EnvDefaultAlgorithm, string(cfg.DefaultAlgorithm))
	if cfg.DefaultAlgorithm, err = pathfind.ParseAlgorithm(algo); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDefaultAlgorithm, err)
	}
	if cfg.SMAMemory, err = getEnvAsInt(EnvSMAMemory, cfg.SMAMemory); err != nil {
		return Config{}, err
	}
	if cfg.RandomWalkMaxSteps, err = getEnvAsInt(EnvRandomWalkMaxSteps, cfg.RandomWalkMaxSteps); err != nil {
		return Config{}, err
	}
	if cfg.SolveTimeout, err = getEnvAsDuration(EnvSolveTimeout, cfg.SolveTimeout); err != nil {
		return Config{}, err
	}
	if cfg.FrameDelay, err = getEnvAsDuration(EnvFrameDelay, cfg.FrameDelay); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if _, err := gridgraph.Maze(c.DefaultMaze); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDefaultMaze, err)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: %s must be debug, release or test (%q)", ErrInvalid, EnvGinMode, c.GinMode)
	}
	if c.SMAMemory < 1 {
		return fmt.Errorf("%w: %s must be positive (%d)", ErrInvalid, EnvSMAMemory, c.SMAMemory)
	}
	if c.RandomWalkMaxSteps < 0 {
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, EnvRandomWalkMaxSteps, c.RandomWalkMaxSteps)
	}
	if c.SolveTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive (%s)", ErrInvalid, EnvSolveTimeout, c.SolveTimeout)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: %s cannot be negative (%s)", ErrInvalid, EnvFrameDelay, c.FrameDelay)
	}
	return nil
}

// SolverOptions turns the solver-related settings into pathfind options.
func (c Config) SolverOptions() []pathfind.Option {
	return []pathfind.Option{
		pathfind.WithMemoryLimit(c.SMAMemory),
		pathfind.WithMaxSteps(c.RandomWalkMaxSteps),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalid, key, err)
	}
	return value, nil
}

// getEnvAsDuration retrieves a time.ParseDuration variable.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %w", ErrInvalid, key, err)
	}
	return value, nil
}

// getEnvAsLevel retrieves a slog level name (debug, info, warn, error).
func getEnvAsLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return level, nil
}
