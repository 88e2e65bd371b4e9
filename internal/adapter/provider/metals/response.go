package metals

import "github.com/shopspring/decimal"

// apiQuote is the subset of the spot price response this adapter reads.
type apiQuote struct {
	Timestamp    int64           `json:"timestamp"`
	Metal        string          `json:"metal"`
	Currency     string          `json:"currency"`
	Price        decimal.Decimal `json:"price"`
	PriceGram24k decimal.Decimal `json:"price_gram_24k"`
	Error        string          `json:"error"`
}
