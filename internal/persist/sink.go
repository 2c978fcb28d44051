package persist

import (
	"context"
	"log"

	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/store"
)

// HoldingsSink receives pushed holdings snapshots and runs them through the
// same sequence as a broker sync: replace the in-memory portfolio first, then
// persist it. A persistence failure is logged; the in-memory replace stands.
type HoldingsSink struct {
	store *store.Store
	saver *Saver
}

func NewHoldingsSink(st *store.Store, saver *Saver) *HoldingsSink {
	return &HoldingsSink{store: st, saver: saver}
}

// ReplaceAllHoldings applies a full snapshot. An invalid snapshot is rejected
// whole and neither store nor persistence is touched.
func (s *HoldingsSink) ReplaceAllHoldings(holdings []*models.Holding) error {
	vals := make([]models.Holding, len(holdings))
	for i, h := range holdings {
		vals[i] = *h
	}

	if err := s.store.ReplaceHoldings(vals); err != nil {
		return err
	}

	if s.saver != nil {
		if err := s.saver.SaveHoldings(context.Background(), vals); err != nil {
			log.Printf("Failed to persist pushed holdings snapshot: %v", err)
		}
	}
	return nil
}
