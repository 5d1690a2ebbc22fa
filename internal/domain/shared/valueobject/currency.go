package valueobject

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	INR Currency = "INR" // Indian Rupee
	AED Currency = "AED" // UAE Dirham
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = USD

// SymbolPosition indicates where the currency symbol is rendered
// relative to the amount
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// CurrencyInfo carries the display metadata for a currency
type CurrencyInfo struct {
	Code     Currency
	Name     string
	Symbol   string
	Position SymbolPosition
}

var currencyInfos = map[Currency]CurrencyInfo{
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", Position: SymbolBefore},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", Position: SymbolAfter},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£", Position: SymbolBefore},
	INR: {Code: INR, Name: "Indian Rupee", Symbol: "₹", Position: SymbolBefore},
	AED: {Code: AED, Name: "UAE Dirham", Symbol: "AED", Position: SymbolBefore},
}

// Info returns the display metadata for the currency.
// Unknown codes fall back to the bare code rendered before the amount.
func (c Currency) Info() CurrencyInfo {
	if info, ok := currencyInfos[c]; ok {
		return info
	}
	return CurrencyInfo{Code: c, Name: string(c), Symbol: string(c), Position: SymbolBefore}
}

// IsValid returns true if the currency is one of the supported codes
func (c Currency) IsValid() bool {
	_, ok := currencyInfos[c]
	return ok
}
