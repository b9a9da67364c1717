package batch

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/vadiminshakov/teller/internal/domain"
)

// Encoder writes balance snapshots as CSV with a
// client,available,held,total,locked header.
type Encoder struct {
	w *csv.Writer
}

// NewEncoder wraps w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: csv.NewWriter(w)}
}

// Encode writes all snapshots, lowest client ID first. The registry hands
// snapshots over in map order; sorting keeps batch output diffable.
func (e *Encoder) Encode(snapshots []domain.BalanceSnapshot) error {
	sorted := make([]domain.BalanceSnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Client < sorted[j].Client })

	if err := e.w.Write([]string{columnClient, "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, s := range sorted {
		record := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		}
		if err := e.w.Write(record); err != nil {
			return err
		}
	}

	e.w.Flush()
	return e.w.Error()
}
