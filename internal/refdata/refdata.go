// Package refdata holds the static seed universe the terminal boots with:
// index list, stock master, commodity strip and macro figures. Live refresh
// cycles overwrite prices in the state store; this data is never mutated.
package refdata

import "github.com/nkhandel/bharat-terminal/internal/models"

// Indices returns the seed index list. Baseline equals value at boot so the
// derived change starts at zero.
func Indices() []models.Index {
	return []models.Index{
		{ID: "nifty", Name: "NIFTY 50", Baseline: 22500.00, Value: 22500.00, UpstreamSymbol: "^NSEI"},
		{ID: "sensex", Name: "SENSEX", Baseline: 74200.00, Value: 74200.00, UpstreamSymbol: "^BSESN"},
		{ID: "banknifty", Name: "BANK NIFTY", Baseline: 48200.00, Value: 48200.00, UpstreamSymbol: "^NSEBANK"},
		{ID: "midcap", Name: "NIFTY MIDCAP", Baseline: 45800.00, Value: 45800.00, UpstreamSymbol: "NIFTYMIDCAP150.NS"},
		{ID: "vix", Name: "INDIA VIX", Baseline: 13.80, Value: 13.80, UpstreamSymbol: "^INDIAVIX"},
	}
}

// Instruments returns the seed stock master.
func Instruments() []models.Instrument {
	return []models.Instrument{
		{Symbol: "RELIANCE", Name: "Reliance Industries", Sector: models.SectorEnergy, LastPrice: 2892.50, Change: 34.20, ChangePct: 1.20, High52: 3024, Low52: 2180, MarketCap: "19.6L Cr", PERatio: 24.8, UpstreamSymbol: "RELIANCE.NS"},
		{Symbol: "TCS", Name: "Tata Consultancy Services", Sector: models.SectorIT, LastPrice: 3756.80, Change: -22.40, ChangePct: -0.59, High52: 4258, Low52: 3056, MarketCap: "13.6L Cr", PERatio: 28.4, UpstreamSymbol: "TCS.NS"},
		{Symbol: "HDFCBANK", Name: "HDFC Bank", Sector: models.SectorFinancials, LastPrice: 1678.40, Change: 14.60, ChangePct: 0.88, High52: 1880, Low52: 1363, MarketCap: "12.8L Cr", PERatio: 20.1, UpstreamSymbol: "HDFCBANK.NS"},
		{Symbol: "ICICIBANK", Name: "ICICI Bank", Sector: models.SectorFinancials, LastPrice: 1225.30, Change: 10.80, ChangePct: 0.89, High52: 1362, Low52: 904, MarketCap: "8.6L Cr", PERatio: 18.9, UpstreamSymbol: "ICICIBANK.NS"},
		{Symbol: "INFY", Name: "Infosys", Sector: models.SectorIT, LastPrice: 1842.60, Change: -11.20, ChangePct: -0.60, High52: 2006, Low52: 1351, MarketCap: "7.6L Cr", PERatio: 26.1, UpstreamSymbol: "INFY.NS"},
		{Symbol: "LT", Name: "Larsen & Toubro", Sector: models.SectorInfra, LastPrice: 3612.40, Change: 42.80, ChangePct: 1.20, High52: 3965, Low52: 2612, MarketCap: "5.1L Cr", PERatio: 34.8, UpstreamSymbol: "LT.NS"},
		{Symbol: "ITC", Name: "ITC Limited", Sector: models.SectorFMCG, LastPrice: 468.90, Change: 2.80, ChangePct: 0.60, High52: 528, Low52: 400, MarketCap: "5.8L Cr", PERatio: 28.6, UpstreamSymbol: "ITC.NS"},
		{Symbol: "HINDUNILVR", Name: "Hindustan Unilever", Sector: models.SectorFMCG, LastPrice: 2318.50, Change: -6.40, ChangePct: -0.28, High52: 2778, Low52: 2172, MarketCap: "5.4L Cr", PERatio: 55.2, UpstreamSymbol: "HINDUNILVR.NS"},
		{Symbol: "BAJFINANCE", Name: "Bajaj Finance", Sector: models.SectorFinancials, LastPrice: 7168.20, Change: 88.40, ChangePct: 1.25, High52: 8192, Low52: 6113, MarketCap: "4.3L Cr", PERatio: 32.4, UpstreamSymbol: "BAJFINANCE.NS"},
		{Symbol: "WIPRO", Name: "Wipro Limited", Sector: models.SectorIT, LastPrice: 608.70, Change: -3.80, ChangePct: -0.62, High52: 672, Low52: 478, MarketCap: "3.1L Cr", PERatio: 22.1, UpstreamSymbol: "WIPRO.NS"},
		{Symbol: "KOTAKBANK", Name: "Kotak Mahindra Bank", Sector: models.SectorFinancials, LastPrice: 1882.60, Change: 18.40, ChangePct: 0.99, High52: 2060, Low52: 1543, MarketCap: "3.7L Cr", PERatio: 22.1, UpstreamSymbol: "KOTAKBANK.NS"},
		{Symbol: "AXISBANK", Name: "Axis Bank", Sector: models.SectorFinancials, LastPrice: 1148.20, Change: 12.60, ChangePct: 1.11, High52: 1339, Low52: 915, MarketCap: "3.5L Cr", PERatio: 17.2, UpstreamSymbol: "AXISBANK.NS"},
		{Symbol: "SUNPHARMA", Name: "Sun Pharmaceutical", Sector: models.SectorPharma, LastPrice: 1724.30, Change: 20.80, ChangePct: 1.22, High52: 1960, Low52: 1098, MarketCap: "4.1L Cr", PERatio: 39.4, UpstreamSymbol: "SUNPHARMA.NS"},
		{Symbol: "MARUTI", Name: "Maruti Suzuki", Sector: models.SectorAuto, LastPrice: 11286.40, Change: 142.60, ChangePct: 1.28, High52: 13680, Low52: 9604, MarketCap: "3.4L Cr", PERatio: 23.4, UpstreamSymbol: "MARUTI.NS"},
		{Symbol: "ASIANPAINT", Name: "Asian Paints", Sector: models.SectorOthers, LastPrice: 2268.80, Change: -18.40, ChangePct: -0.80, High52: 3467, Low52: 2142, MarketCap: "2.2L Cr", PERatio: 46.8, UpstreamSymbol: "ASIANPAINT.NS"},
		{Symbol: "TATAMOTORS", Name: "Tata Motors", Sector: models.SectorAuto, LastPrice: 682.40, Change: 8.60, ChangePct: 1.28, High52: 1179, Low52: 601, MarketCap: "2.5L Cr", PERatio: 6.8, UpstreamSymbol: "TATAMOTORS.NS"},
		{Symbol: "NTPC", Name: "NTPC Limited", Sector: models.SectorEnergy, LastPrice: 328.60, Change: 3.40, ChangePct: 1.05, High52: 448, Low52: 222, MarketCap: "3.2L Cr", PERatio: 16.8, UpstreamSymbol: "NTPC.NS"},
		{Symbol: "ONGC", Name: "Oil & Natural Gas Corp", Sector: models.SectorEnergy, LastPrice: 242.80, Change: 2.60, ChangePct: 1.08, High52: 345, Low52: 197, MarketCap: "3.1L Cr", PERatio: 7.8, UpstreamSymbol: "ONGC.NS"},
		{Symbol: "M&M", Name: "Mahindra & Mahindra", Sector: models.SectorAuto, LastPrice: 2868.40, Change: 34.20, ChangePct: 1.21, High52: 3275, Low52: 1601, MarketCap: "3.5L Cr", PERatio: 28.6, UpstreamSymbol: "M&M.NS"},
		{Symbol: "TITAN", Name: "Titan Company", Sector: models.SectorOthers, LastPrice: 3248.60, Change: -14.20, ChangePct: -0.44, High52: 3887, Low52: 2815, MarketCap: "2.9L Cr", PERatio: 78.2, UpstreamSymbol: "TITAN.NS"},
		{Symbol: "JSWSTEEL", Name: "JSW Steel", Sector: models.SectorMetals, LastPrice: 878.20, Change: 10.40, ChangePct: 1.20, High52: 1064, Low52: 716, MarketCap: "2.1L Cr", PERatio: 17.2, UpstreamSymbol: "JSWSTEEL.NS"},
		{Symbol: "TATASTEEL", Name: "Tata Steel", Sector: models.SectorMetals, LastPrice: 148.60, Change: 1.80, ChangePct: 1.23, High52: 184, Low52: 119, MarketCap: "1.8L Cr", PERatio: 14.8, UpstreamSymbol: "TATASTEEL.NS"},
		{Symbol: "POWERGRID", Name: "Power Grid Corporation", Sector: models.SectorInfra, LastPrice: 298.40, Change: 2.80, ChangePct: 0.95, High52: 366, Low52: 213, MarketCap: "2.8L Cr", PERatio: 18.2, UpstreamSymbol: "POWERGRID.NS"},
		{Symbol: "BHARTIARTL", Name: "Bharti Airtel", Sector: models.SectorTelecom, LastPrice: 1684.20, Change: 18.60, ChangePct: 1.12, High52: 1779, Low52: 935, MarketCap: "9.5L Cr", PERatio: 70.4, UpstreamSymbol: "BHARTIARTL.NS"},
		{Symbol: "HCLTECH", Name: "HCL Technologies", Sector: models.SectorIT, LastPrice: 1648.80, Change: -8.40, ChangePct: -0.51, High52: 1814, Low52: 1235, MarketCap: "4.5L Cr", PERatio: 26.8, UpstreamSymbol: "HCLTECH.NS"},
		{Symbol: "SBIN", Name: "State Bank of India", Sector: models.SectorFinancials, LastPrice: 748.60, Change: 8.40, ChangePct: 1.13, High52: 912, Low52: 544, MarketCap: "6.7L Cr", PERatio: 10.4, UpstreamSymbol: "SBIN.NS"},
		{Symbol: "CIPLA", Name: "Cipla Limited", Sector: models.SectorPharma, LastPrice: 1472.40, Change: 16.80, ChangePct: 1.15, High52: 1702, Low52: 1218, MarketCap: "1.2L Cr", PERatio: 28.4, UpstreamSymbol: "CIPLA.NS"},
		{Symbol: "ZOMATO", Name: "Zomato Limited", Sector: models.SectorOthers, LastPrice: 224.80, Change: 4.20, ChangePct: 1.90, High52: 304, Low52: 128, MarketCap: "2.0L Cr", PERatio: 248, UpstreamSymbol: "ZOMATO.NS"},
	}
}

// Commodities returns the seed currency/commodity strip.
func Commodities() []models.Commodity {
	return []models.Commodity{
		{Symbol: "USDINR=X", Name: "INR / USD", Price: 83.45, ChangePct: 0.18},
		{Symbol: "EURINR=X", Name: "INR / EUR", Price: 90.12, ChangePct: -0.24},
		{Symbol: "GC=F", Name: "GOLD", Price: 2034.50, ChangePct: 0.35, Unit: "/oz"},
		{Symbol: "SI=F", Name: "SILVER", Price: 22.84, ChangePct: 0.82, Unit: "/oz"},
		{Symbol: "CL=F", Name: "CRUDE OIL", Price: 78.40, ChangePct: -0.64, Unit: "/bbl"},
		{Symbol: "NG=F", Name: "NGAS", Price: 2.85, ChangePct: 1.12, Unit: "/MMBtu"},
	}
}

// Macro returns the seed macro indicator grid.
func Macro() []models.MacroIndicator {
	return []models.MacroIndicator{
		{Name: "REPO RATE", Value: "6.50%", Sub: "RBI unchanged"},
		{Name: "CPI INFLATION", Value: "5.1%", Sub: "Dec '25"},
		{Name: "GDP GROWTH", Value: "8.2%", Sub: "FY25 (IMF)"},
		{Name: "INR/USD", Value: "83.45", Sub: "+0.18 today"},
		{Name: "10Y G-SEC", Value: "7.18%", Sub: "-2bps today"},
		{Name: "CRUDE (WTI)", Value: "$78.4", Sub: "-0.64%"},
	}
}

// News returns the seed article set shown until the first live news fetch.
func News() []models.NewsArticle {
	return []models.NewsArticle{
		{ID: 1, Category: models.CategoryPolicy, Title: "RBI Holds Rates Steady at 6.5% Amid Inflation Concerns", Summary: "The Reserve Bank of India maintained its benchmark repo rate at 6.5%, citing persistent food inflation and global uncertainty.", Impact: models.ImpactNeutral, Time: "09:42 AM", Source: "Economic Times", Affected: []string{"HDFCBANK", "ICICIBANK", "AXISBANK"}},
		{ID: 2, Category: models.CategoryEarnings, Title: "Reliance Industries Q3 Results Beat Estimates; Retail Revenue Up 18%", Summary: "Reliance Industries posted strong Q3 results with net profit rising 11.2% YoY. The retail and telecom segments led growth.", Impact: models.ImpactPositive, Time: "08:15 AM", Source: "Moneycontrol", Affected: []string{"RELIANCE"}},
		{ID: 3, Category: models.CategoryEconomy, Title: "India's GDP Growth Projected at 8.2% for FY25 — IMF Upgrades Forecast", Summary: "The IMF upgraded India's growth forecast to 8.2% for FY25, citing robust domestic consumption and infrastructure spending.", Impact: models.ImpactPositive, Time: "07:30 AM", Source: "Financial Express", Affected: []string{}},
		{ID: 4, Category: models.CategorySector, Title: "IT Sector Faces Headwinds as US Tech Spending Slows in Q4", Summary: "Major Indian IT firms may face near-term pressure as US technology clients signal belt-tightening. Deal wins declined quarter-on-quarter.", Impact: models.ImpactNegative, Time: "06:55 AM", Source: "CNBC TV18", Affected: []string{"TCS", "INFY", "WIPRO", "HCLTECH"}},
		{ID: 5, Category: models.CategoryGlobal, Title: "US Fed Minutes Signal Cautious Rate Cut Path; Dollar Strengthens", Summary: "Federal Reserve meeting minutes revealed policymakers remain cautious about cutting rates, pressuring emerging market currencies.", Impact: models.ImpactNegative, Time: "06:10 AM", Source: "Reuters India", Affected: []string{}},
		{ID: 6, Category: models.CategoryEarnings, Title: "Bajaj Finance Reports 28% YoY Profit Jump; AUM Crosses ₹3.5L Cr", Summary: "Bajaj Finance delivered stellar Q3 results with net profit surging 28.1%. Credit quality remained stable.", Impact: models.ImpactPositive, Time: "05:45 AM", Source: "Bloomberg Quint", Affected: []string{"BAJFINANCE"}},
	}
}
