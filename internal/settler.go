package internal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/teller/config"
	"github.com/vadiminshakov/teller/internal/domain"
	"github.com/vadiminshakov/teller/internal/services/batch"
	"github.com/vadiminshakov/teller/internal/services/ledger"
	"go.uber.org/zap"
)

// Settler runs one settlement batch: it streams transaction records from
// the configured input, applies them through its own account registry and
// writes the final snapshot per client to the configured output.
type Settler struct {
	cfg      config.Config
	registry *ledger.Registry
	runID    string
}

// NewSettler creates a settler with a fresh registry for one batch config.
func NewSettler(cfg config.Config) (*Settler, error) {
	if cfg.Input == "" {
		return nil, errors.New("batch config has no input file")
	}

	return &Settler{
		cfg:      cfg,
		registry: ledger.NewRegistry(),
		runID:    uuid.New().String(),
	}, nil
}

// Run executes the batch to completion. Records of one client apply in
// stream order. Malformed records and ignored transactions never stop the
// run; a broken balance invariant is logged and counted but the stream
// still drains.
func (s *Settler) Run(ctx context.Context, logger *zap.Logger) error {
	logger = logger.With(zap.String("run_id", s.runID), zap.String("input", s.cfg.Input))

	input, err := os.Open(s.cfg.Input)
	if err != nil {
		return errors.Wrap(err, "failed to open batch input")
	}
	defer input.Close()

	logger.Info("starting settlement batch")
	start := time.Now()

	var applied, ignored, invalid, malformed int
	decoder := batch.NewDecoder(input)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tx, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var recordErr *batch.RecordError
		if errors.As(err, &recordErr) {
			malformed++
			logger.Debug("dropping malformed record",
				zap.Int("line", recordErr.Line),
				zap.Error(recordErr.Err))
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to read transaction stream")
		}

		if err := s.registry.HandleTransaction(tx); err != nil {
			var ignoredErr *ledger.IgnoredTransactionError
			var invalidErr *ledger.InvalidBalanceError
			switch {
			case errors.As(err, &ignoredErr):
				ignored++
				logger.Debug("transaction ignored",
					zap.Uint16("client", uint16(tx.Client)),
					zap.Uint32("tx", uint32(tx.ID)),
					zap.String("reason", string(ignoredErr.Reason)))
			case errors.As(err, &invalidErr):
				invalid++
				logger.Error("client balance invariant broken",
					zap.Uint16("client", uint16(tx.Client)),
					zap.Uint32("tx", uint32(tx.ID)),
					zap.String("fault", string(invalidErr.Fault)))
			default:
				return errors.Wrap(err, "failed to handle transaction")
			}
			continue
		}
		applied++
	}

	snapshots := s.registry.Snapshots()
	if err := s.writeSnapshots(snapshots); err != nil {
		return err
	}

	logger.Info("settlement batch finished",
		zap.Int("applied", applied),
		zap.Int("ignored", ignored),
		zap.Int("invalid", invalid),
		zap.Int("malformed", malformed),
		zap.Int("clients", len(snapshots)),
		zap.Duration("took", time.Since(start)))

	return nil
}

// writeSnapshots emits the final snapshots to the configured output file,
// or to stdout when no output path is set.
func (s *Settler) writeSnapshots(snapshots []domain.BalanceSnapshot) error {
	var w io.Writer = os.Stdout
	if s.cfg.Output != "" {
		f, err := os.Create(s.cfg.Output)
		if err != nil {
			return errors.Wrap(err, "failed to create batch output")
		}
		defer f.Close()
		w = f
	}

	if err := batch.NewEncoder(w).Encode(snapshots); err != nil {
		return errors.Wrap(err, "failed to write snapshots")
	}
	return nil
}
