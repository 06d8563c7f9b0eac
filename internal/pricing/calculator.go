package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Total returns the price of a stay: the duration rounded up to whole days,
// multiplied by the venue's daily rate. A range covering any fraction of a day
// charges for the full day. Callers guarantee end > start and a positive rate.
func Total(start, end time.Time, pricePerDay decimal.Decimal) decimal.Decimal {
	d := end.Sub(start)
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return pricePerDay.Mul(decimal.NewFromInt(days))
}
