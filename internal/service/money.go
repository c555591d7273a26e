package service

import "github.com/shopspring/decimal"

// amountScale matches the DECIMAL(…,2) columns amounts are stored in.
const amountScale = 2

var sumTolerance = decimal.New(1, -amountScale) // 0.01

// partsMatchTotal reports whether parts add up to total within 0.01.
// Every amount is rounded to cents first, so the comparison happens at the
// precision the store keeps.
func partsMatchTotal(parts []decimal.Decimal, total decimal.Decimal) bool {
	sum := decimal.Zero
	for _, p := range parts {
		sum = sum.Add(p.Round(amountScale))
	}
	return sum.Sub(total.Round(amountScale)).Abs().LessThanOrEqual(sumTolerance)
}

func cents(d decimal.Decimal) decimal.Decimal { return d.Round(amountScale) }
