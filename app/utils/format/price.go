package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatPrice renders a decimal amount for templates, e.g. "$1,299.00".
func FormatPrice(amount interface{}) string {
	var decAmount decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		decAmount = v
	case *decimal.Decimal:
		if v == nil {
			return usd.FormatMoneyDecimal(decimal.Zero)
		}
		decAmount = *v
	case float64:
		decAmount = decimal.NewFromFloat(v)
	case int:
		decAmount = decimal.NewFromInt(int64(v))
	case int64:
		decAmount = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return usd.FormatMoneyDecimal(decimal.Zero)
		}
		decAmount = parsed
	default:
		return usd.FormatMoneyDecimal(decimal.Zero)
	}

	return usd.FormatMoneyDecimal(decAmount)
}
