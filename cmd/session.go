package cmd

import (
	"fmt"

	"github.com/alexiusacademia/movload/internal/config"
	"github.com/alexiusacademia/movload/internal/logging"
	"github.com/alexiusacademia/movload/internal/movingload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string

	// Problem inputs (m, kN)
	inputSpan    float64
	inputW1      float64
	inputW2      float64
	inputSpacing float64

	// Options
	outputPrecision int
	strictSpacing   bool
	outputJSON      bool
	verbose         bool
)

// session is the resolved state a subcommand runs against.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	problem *movingload.Problem
}

// newSession resolves configuration from flags, builds the logger and the
// problem. extra may adjust overrides before they are applied.
func newSession(cmd *cobra.Command, extra func(*config.CLIOverrides)) (*session, error) {
	overrides := cliOverrides(cmd)
	if extra != nil {
		extra(overrides)
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Debug("resolved inputs",
		zap.String("command", cmd.Name()),
		zap.Float64("span_m", cfg.Span),
		zap.Float64("w1_kn", cfg.W1),
		zap.Float64("w2_kn", cfg.W2),
		zap.Float64("spacing_m", cfg.Spacing),
		zap.Bool("strict", cfg.Strict),
	)

	p, err := movingload.New(cfg.Span, cfg.W1, cfg.W2, cfg.Spacing)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	if !p.Valid() {
		if cfg.Strict {
			_ = logger.Sync()
			return nil, fmt.Errorf("spacing %g m is not shorter than span %g m", p.Spacing(), p.Span())
		}
		logger.Warn("load spacing is not shorter than the span; envelope values may not be meaningful",
			zap.Float64("spacing_m", p.Spacing()),
			zap.Float64("span_m", p.Span()),
		)
	}

	return &session{cfg: cfg, logger: logger, problem: p}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// cliOverrides collects only the flags the user actually set so that YAML
// and environment values are not masked by flag defaults.
func cliOverrides(cmd *cobra.Command) *config.CLIOverrides {
	flags := cmd.Flags()
	overrides := &config.CLIOverrides{ConfigFile: configFile}

	if flags.Changed("span") {
		overrides.Span = &inputSpan
	}
	if flags.Changed("w1") {
		overrides.W1 = &inputW1
	}
	if flags.Changed("w2") {
		overrides.W2 = &inputW2
	}
	if flags.Changed("spacing") {
		overrides.Spacing = &inputSpacing
	}
	if flags.Changed("precision") {
		overrides.Precision = &outputPrecision
	}
	if flags.Changed("strict") {
		overrides.Strict = &strictSpacing
	}
	if verbose {
		level := "debug"
		overrides.LogLevel = &level
	}

	return overrides
}
