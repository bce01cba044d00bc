package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pay-dashboard-api/internal/model"
)

func TestEstimate(t *testing.T) {
	stats := model.PaymentStats{
		TotalAmount: decimal.NewFromInt(1_000_000),
		TotalCount:  10,
		SuccessRate: 80,
		TodayAmount: decimal.NewFromInt(1_000_000),
		TodayCount:  10,
	}
	e := Estimate(stats, decimal.Zero)

	assert.True(t, e.Estimated)
	assert.Equal(t, "100000", e.AverageTicket.String())
	assert.Equal(t, int64(8), e.PendingSettlementCount)
	assert.Equal(t, "800000", e.PendingSettlementAmount.String())
	assert.True(t, e.FeeRate.Equal(DefaultFeeRate))
	assert.Equal(t, "25000", e.FeeRevenue.String())
	assert.Equal(t, int64(2), e.FailedCount)
	assert.Equal(t, "200000", e.FailedAmount.String())
}

func TestEstimateCustomFeeRate(t *testing.T) {
	stats := model.PaymentStats{TodayAmount: decimal.NewFromInt(10_000), TodayCount: 3, SuccessRate: 100}
	e := Estimate(stats, decimal.RequireFromString("0.033"))

	assert.Equal(t, "330", e.FeeRevenue.String())
	assert.Equal(t, "3333", e.AverageTicket.String())
	assert.Equal(t, int64(0), e.FailedCount)
	assert.True(t, e.FailedAmount.IsZero())
}

func TestEstimateEmpty(t *testing.T) {
	e := Estimate(model.PaymentStats{TotalAmount: decimal.Zero, TodayAmount: decimal.Zero}, DefaultFeeRate)

	assert.True(t, e.AverageTicket.IsZero())
	assert.Equal(t, int64(0), e.PendingSettlementCount)
	assert.True(t, e.FeeRevenue.IsZero())
	assert.Equal(t, int64(0), e.FailedCount)
	assert.True(t, e.Estimated)
}

func TestMaxDecimal(t *testing.T) {
	a, b := decimal.NewFromInt(-1), decimal.Zero
	assert.True(t, MaxDecimal(a, b).Equal(b))
	assert.True(t, MaxDecimal(b, a).Equal(b))
}
