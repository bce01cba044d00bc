// Package settlement derives the dashboard's settlement and fee cards. No settlement or
// fee ledger is queried: every figure is arithmetic on PaymentStats and is marked as an
// estimate.
package settlement

import (
	"github.com/shopspring/decimal"

	"pay-dashboard-api/internal/model"
)

// DefaultFeeRate is the flat fee assumed by the fee revenue card.
var DefaultFeeRate = decimal.NewFromFloat(0.025)

var hundred = decimal.NewFromInt(100)

// Estimates are whole-currency-unit approximations. Estimated is always true.
type Estimates struct {
	AverageTicket           decimal.Decimal `json:"averageTicket"`
	PendingSettlementCount  int64           `json:"pendingSettlementCount"`
	PendingSettlementAmount decimal.Decimal `json:"pendingSettlementAmount"`
	FeeRate                 decimal.Decimal `json:"feeRate"`
	FeeRevenue              decimal.Decimal `json:"feeRevenue"`
	FailedCount             int64           `json:"failedCount"`
	FailedAmount            decimal.Decimal `json:"failedAmount"`
	Estimated               bool            `json:"estimated"`
}

// Estimate applies the card arithmetic to stats. A non-positive feeRate uses DefaultFeeRate.
func Estimate(stats model.PaymentStats, feeRate decimal.Decimal) Estimates {
	if !feeRate.IsPositive() {
		feeRate = DefaultFeeRate
	}

	rate := decimal.NewFromFloat(stats.SuccessRate).Div(hundred)
	failRate := decimal.NewFromInt(1).Sub(rate)
	count := decimal.NewFromInt(int64(stats.TodayCount))

	avg := decimal.Zero
	if stats.TodayCount > 0 {
		avg = stats.TodayAmount.Div(count).Round(0)
	}

	return Estimates{
		AverageTicket:           avg,
		PendingSettlementCount:  count.Mul(rate).Round(0).IntPart(),
		PendingSettlementAmount: stats.TodayAmount.Mul(rate).Round(0),
		FeeRate:                 feeRate,
		FeeRevenue:              stats.TodayAmount.Mul(feeRate).Round(0),
		FailedCount:             MaxDecimal(count.Mul(failRate).Round(0), decimal.Zero).IntPart(),
		FailedAmount:            MaxDecimal(stats.TodayAmount.Mul(failRate).Round(0), decimal.Zero),
		Estimated:               true,
	}
}

// MaxDecimal returns the larger of a and b.
func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
