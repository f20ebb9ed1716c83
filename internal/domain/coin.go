package domain

// Sector is a coarse asset-category grouping used for aggregate rotation comparison.
type Sector string

const (
	SectorMacro    Sector = "Macro"
	SectorL1       Sector = "L1"
	SectorL2       Sector = "L2"
	SectorOracle   Sector = "Oracle"
	SectorDeFi     Sector = "DeFi"
	SectorPayments Sector = "Payments"
)

// CoinDefinition describes one tracked asset. The set is fixed at startup and
// never mutated at runtime; the order of the universe is the stable tie-break
// order for every ranking.
type CoinDefinition struct {
	ID     string `json:"id"`     // provider coin id, e.g. "bitcoin"
	Symbol string `json:"symbol"` // display ticker, e.g. "BTC"
	Name   string `json:"name"`
	Sector Sector `json:"sector"`
}

// DefaultUniverse returns the built-in coin list tracked by the screener.
func DefaultUniverse() []CoinDefinition {
	return []CoinDefinition{
		{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Sector: SectorMacro},
		{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Sector: SectorL1},
		{ID: "solana", Symbol: "SOL", Name: "Solana", Sector: SectorL1},
		{ID: "avalanche-2", Symbol: "AVAX", Name: "Avalanche", Sector: SectorL1},
		{ID: "arbitrum", Symbol: "ARB", Name: "Arbitrum", Sector: SectorL2},
		{ID: "optimism", Symbol: "OP", Name: "Optimism", Sector: SectorL2},
		{ID: "chainlink", Symbol: "LINK", Name: "Chainlink", Sector: SectorOracle},
		{ID: "pyth-network", Symbol: "PYTH", Name: "Pyth Network", Sector: SectorOracle},
		{ID: "aave", Symbol: "AAVE", Name: "Aave", Sector: SectorDeFi},
		{ID: "uniswap", Symbol: "UNI", Name: "Uniswap", Sector: SectorDeFi},
		{ID: "ripple", Symbol: "XRP", Name: "XRP", Sector: SectorPayments},
	}
}
