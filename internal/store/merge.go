package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/quotes"
)

// MergeResult summarizes one applied refresh cycle.
type MergeResult struct {
	IndicesUpdated     int
	InstrumentsUpdated int
	CommoditiesUpdated int
	Holdings           []models.Holding
}

// ApplyQuotes merges a fetched batch into the store under a single lock
// acquisition, so readers never observe a partially-merged cycle. The merge is
// field-wise: only fields present in a record overwrite local state; absent
// fields retain their prior value. Index baselines update only here, from the
// upstream previous close. Holdings' ltp/daychg are derived from the
// instrument updates; the refreshed holdings are returned for persistence.
func (s *Store) ApplyQuotes(records []quotes.QuoteRecord, fetchedAt time.Time) MergeResult {
	lookup := make(map[string]quotes.QuoteRecord, len(records))
	for _, r := range records {
		if r.Symbol != "" {
			lookup[r.Symbol] = r
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res MergeResult

	for i := range s.indices {
		q, ok := lookup[s.indices[i].UpstreamSymbol]
		if !ok {
			continue
		}
		if q.RegularMarketPrice != nil && *q.RegularMarketPrice > 0 {
			s.indices[i].Value = *q.RegularMarketPrice
		}
		if q.RegularMarketPreviousClose != nil && *q.RegularMarketPreviousClose > 0 {
			s.indices[i].Baseline = *q.RegularMarketPreviousClose
		}
		res.IndicesUpdated++
	}

	for i := range s.instruments {
		q, ok := lookup[s.instruments[i].UpstreamSymbol]
		if !ok {
			continue
		}
		mergeInstrument(&s.instruments[i], q)
		res.InstrumentsUpdated++
	}

	for i := range s.commodities {
		q, ok := lookup[s.commodities[i].Symbol]
		if !ok {
			continue
		}
		if q.RegularMarketPrice != nil && *q.RegularMarketPrice > 0 {
			s.commodities[i].Price = *q.RegularMarketPrice
		}
		if q.RegularMarketChangePercent != nil {
			s.commodities[i].ChangePct = *q.RegularMarketChangePercent
		}
		res.CommoditiesUpdated++
	}

	s.refreshMacroLocked(lookup)
	res.Holdings = s.refreshHoldingsLocked()

	s.mode = ModeLive
	s.status = StatusLive
	s.lastQuoteUpdate = fetchedAt

	return res
}

func mergeInstrument(inst *models.Instrument, q quotes.QuoteRecord) {
	if q.RegularMarketPrice != nil && *q.RegularMarketPrice > 0 {
		inst.LastPrice = *q.RegularMarketPrice
	}
	if q.RegularMarketChange != nil {
		inst.Change = *q.RegularMarketChange
	}
	if q.RegularMarketChangePercent != nil {
		inst.ChangePct = *q.RegularMarketChangePercent
	}
	if q.FiftyTwoWeekHigh != nil && *q.FiftyTwoWeekHigh > 0 {
		inst.High52 = quotes.Round52Week(*q.FiftyTwoWeekHigh)
	}
	if q.FiftyTwoWeekLow != nil && *q.FiftyTwoWeekLow > 0 {
		inst.Low52 = quotes.Round52Week(*q.FiftyTwoWeekLow)
	}
	if q.MarketCap != nil {
		if mcap := quotes.FormatMarketCap(*q.MarketCap); mcap != "" {
			inst.MarketCap = mcap
		}
	}
	if q.TrailingPE != nil && *q.TrailingPE > 0 {
		inst.PERatio = quotes.RoundPE(*q.TrailingPE)
	}
	if q.ShortName != "" && inst.Name == "" {
		inst.Name = q.ShortName
	}
}

// refreshMacroLocked updates the INR/USD and crude macro tiles from their
// commodity lookups. Caller holds the write lock.
func (s *Store) refreshMacroLocked(lookup map[string]quotes.QuoteRecord) {
	if q, ok := lookup["USDINR=X"]; ok && q.RegularMarketPrice != nil {
		for i := range s.macro {
			if s.macro[i].Name == "INR/USD" {
				s.macro[i].Value = fmt.Sprintf("%.2f", *q.RegularMarketPrice)
				if q.RegularMarketChange != nil {
					s.macro[i].Sub = fmt.Sprintf("%+.2f today", *q.RegularMarketChange)
				}
			}
		}
	}
	if q, ok := lookup["CL=F"]; ok && q.RegularMarketPrice != nil {
		for i := range s.macro {
			if s.macro[i].Name == "CRUDE (WTI)" {
				s.macro[i].Value = fmt.Sprintf("$%.1f", *q.RegularMarketPrice)
				if q.RegularMarketChangePercent != nil {
					s.macro[i].Sub = fmt.Sprintf("%+.2f%%", *q.RegularMarketChangePercent)
				}
			}
		}
	}
}

// refreshHoldingsLocked derives holdings ltp/daychg from the freshly merged
// instruments and returns the updated portfolio for persistence. Caller holds
// the write lock.
func (s *Store) refreshHoldingsLocked() []models.Holding {
	for i := range s.holdings {
		for _, inst := range s.instruments {
			if inst.Symbol == s.holdings[i].Symbol {
				s.holdings[i].LastPrice = decimal.NewFromFloat(inst.LastPrice)
				s.holdings[i].DayChangePct = inst.ChangePct
				break
			}
		}
	}
	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}
