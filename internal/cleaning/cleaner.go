package cleaning

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	tkerrors "tablekit/internal/errors"
)

// defaultIQRFactor is the classic boxplot multiplier for outlier bounds.
const defaultIQRFactor = 1.5

// minObservationsForQuartiles is the smallest sample for which Q1 and
// Q3 are considered defined.
const minObservationsForQuartiles = 4

// Config holds the tunable options of a Cleaner.
type Config struct {
	// IQRFactor multiplies the interquartile range when computing
	// outlier bounds. Zero selects the default of 1.5.
	IQRFactor float64 `validate:"gte=0"`
}

// Cleaner groups the table-cleaning operations. It carries no state
// beyond its configuration and logger, so a single instance is safe to
// share between callers.
type Cleaner struct {
	logger    *slog.Logger
	iqrFactor float64
}

// New creates a Cleaner with the given configuration. A nil logger
// falls back to slog.Default(). An invalid configuration returns an
// invalid-value error.
func New(logger *slog.Logger, cfg Config) (*Cleaner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, tkerrors.InvalidValueWithDetails(
			tkerrors.CodeInvalidConfig,
			"invalid cleaner configuration",
			err.Error(),
		)
	}

	if cfg.IQRFactor == 0 {
		cfg.IQRFactor = defaultIQRFactor
	}

	return &Cleaner{
		logger:    logger.With(slog.String("component", "cleaner")),
		iqrFactor: cfg.IQRFactor,
	}, nil
}
