package models

import "time"

// Sector constants: the fixed sector universe for instruments and holdings
const (
	SectorEnergy     = "Energy"
	SectorFinancials = "Financials"
	SectorIT         = "IT"
	SectorFMCG       = "FMCG"
	SectorPharma     = "Pharma"
	SectorAuto       = "Auto"
	SectorMetals     = "Metals"
	SectorTelecom    = "Telecom"
	SectorInfra      = "Infra"
	SectorOthers     = "Others"
)

// Sectors lists every valid sector value.
var Sectors = []string{
	SectorEnergy, SectorFinancials, SectorIT, SectorFMCG, SectorPharma,
	SectorAuto, SectorMetals, SectorTelecom, SectorInfra, SectorOthers,
}

// ValidSector reports whether s is one of the known sectors.
func ValidSector(s string) bool {
	for _, sec := range Sectors {
		if s == sec {
			return true
		}
	}
	return false
}

// Instrument represents a tradable stock with its latest quote and fundamentals.
// Change and ChangePct are always kept consistent with LastPrice: whichever code
// path updates LastPrice must update both in the same step.
type Instrument struct {
	Symbol         string  `json:"sym"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	LastPrice      float64 `json:"ltp"`
	Change         float64 `json:"chg"`
	ChangePct      float64 `json:"chgP"`
	High52         float64 `json:"hi52"`
	Low52          float64 `json:"lo52"`
	MarketCap      string  `json:"mcap"`
	PERatio        float64 `json:"pe"`
	UpstreamSymbol string  `json:"upstreamSym"`
}

// PreviousClose derives the previous close from the consistent price fields.
func (i *Instrument) PreviousClose() float64 {
	return i.LastPrice - i.Change
}

// Index represents a market index. Baseline is the previous close and is only
// ever updated from an authoritative upstream fetch, never from simulation.
type Index struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Baseline       float64 `json:"base"`
	Value          float64 `json:"val"`
	UpstreamSymbol string  `json:"upstreamSym"`
}

// Commodity represents a currency pair or commodity quote on the terminal strip.
type Commodity struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"changePercent"`
	Unit      string  `json:"unit,omitempty"`
}

// MacroIndicator is a macro-economic figure shown on the dashboard.
type MacroIndicator struct {
	Name  string `json:"name"`
	Value string `json:"val"`
	Sub   string `json:"sub"`
}

// WatchlistEntry snapshots an instrument's price fields at add time. The
// snapshot is refreshed opportunistically when rendered, not kept in sync.
type WatchlistEntry struct {
	Symbol    string    `json:"sym"`
	Sector    string    `json:"sector"`
	LastPrice float64   `json:"ltp"`
	Change    float64   `json:"chg"`
	ChangePct float64   `json:"chgP"`
	High52    float64   `json:"hi52"`
	Low52     float64   `json:"lo52"`
	AddedAt   time.Time `json:"added_at,omitempty"`
}
