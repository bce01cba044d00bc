package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pay-dashboard-api/internal/model"
)

func pay(code, mcht, amount string, status model.PaymentStatus, payType model.PayType, at time.Time) model.Payment {
	return model.Payment{
		PaymentCode: code,
		MchtCode:    mcht,
		Amount:      decimal.RequireFromString(amount),
		Currency:    model.DefaultCurrency,
		PayType:     payType,
		Status:      status,
		PaymentAt:   at,
	}
}

func TestComputeMerchantStats(t *testing.T) {
	merchants := []model.Merchant{
		{MchtCode: "M1", Status: model.MerchantActive},
		{MchtCode: "M2", Status: model.MerchantActive},
		{MchtCode: "M3", Status: model.MerchantInactive},
		{MchtCode: "M4", Status: model.MerchantReady},
		{MchtCode: "M5", Status: "UNKNOWN"},
	}
	stats := ComputeMerchantStats(merchants)
	assert.Equal(t, model.MerchantStats{TotalMerchants: 5, ActiveMerchants: 2, InactiveMerchants: 1}, stats)
	assert.LessOrEqual(t, stats.ActiveMerchants+stats.InactiveMerchants, stats.TotalMerchants)

	assert.Equal(t, model.MerchantStats{}, ComputeMerchantStats(nil))
}

func TestComputePaymentStatsExactSum(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	payments := []model.Payment{
		pay("P1", "M1", "10000.00", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P2", "M1", "0.01", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P3", "M2", "0.02", model.PaymentSuccess, model.PayTypeDevice, at),
	}
	stats := ComputePaymentStats(payments)
	assert.Equal(t, "10000.03", stats.TotalAmount.String())
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 100.0, stats.SuccessRate)
	assert.True(t, stats.TodayAmount.Equal(stats.TotalAmount))
	assert.Equal(t, stats.TotalCount, stats.TodayCount)
}

func TestComputePaymentStatsSuccessRate(t *testing.T) {
	at := time.Now()
	payments := []model.Payment{
		pay("P1", "M1", "100", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P2", "M1", "200", model.PaymentFailed, model.PayTypeOnline, at),
		pay("P3", "M1", "300", model.PaymentCancelled, model.PayTypeOnline, at),
	}
	stats := ComputePaymentStats(payments)
	assert.Equal(t, "100", stats.TotalAmount.String())
	assert.Equal(t, 33.3, stats.SuccessRate)
	assert.GreaterOrEqual(t, stats.SuccessRate, 0.0)
	assert.LessOrEqual(t, stats.SuccessRate, 100.0)

	empty := ComputePaymentStats(nil)
	assert.Equal(t, 0.0, empty.SuccessRate)
	assert.True(t, empty.TotalAmount.IsZero())
	assert.Equal(t, 0, empty.TotalCount)
}

func TestComputePayTypeBreakdown(t *testing.T) {
	at := time.Now()
	payments := []model.Payment{
		pay("P1", "M1", "300", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P2", "M1", "100", model.PaymentSuccess, model.PayTypeDevice, at),
		pay("P3", "M1", "999", model.PaymentFailed, model.PayTypeDevice, at),
		pay("P4", "M1", "100", model.PaymentSuccess, "CRYPTO", at),
	}
	got := ComputePayTypeBreakdown(payments)
	if !assert.Len(t, got, 6) {
		return
	}
	assert.Equal(t, model.PayTypeOnline, got[0].PayType)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 60.0, got[0].Share)
	assert.Equal(t, model.PayTypeDevice, got[1].PayType)
	assert.Equal(t, "100", got[1].Amount.String())
	assert.Equal(t, 20.0, got[1].Share)
	assert.Equal(t, model.PayTypeMobile, got[2].PayType)
	assert.Equal(t, 0, got[2].Count)
	assert.Equal(t, 0.0, got[2].Share)
	assert.Equal(t, model.PayType("CRYPTO"), got[5].PayType)
	assert.Equal(t, 20.0, got[5].Share)
}

func TestComputeMerchantActivities(t *testing.T) {
	at := time.Now()
	payments := []model.Payment{
		pay("P1", "M1", "1000", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P2", "M1", "500", model.PaymentFailed, model.PayTypeOnline, at),
		pay("P3", "M2", "250.5", model.PaymentSuccess, model.PayTypeOnline, at),
	}
	acts := ComputeMerchantActivities(payments)

	m1 := ActivityFor(acts, "M1")
	assert.Equal(t, 2, m1.TransactionCount)
	assert.Equal(t, 1, m1.SuccessCount)
	assert.Equal(t, "1000", m1.TransactionAmount.String())
	assert.Equal(t, 50.0, m1.SuccessRate)

	m2 := ActivityFor(acts, "M2")
	assert.Equal(t, "250.5", m2.TransactionAmount.String())
	assert.Equal(t, 100.0, m2.SuccessRate)

	none := ActivityFor(acts, "M9")
	assert.Equal(t, 0, none.TransactionCount)
	assert.True(t, none.TransactionAmount.IsZero())
}

func TestCountMerchantsByStatus(t *testing.T) {
	merchants := []model.Merchant{
		{MchtCode: "M1", Status: model.MerchantActive},
		{MchtCode: "M2", Status: model.MerchantActive},
		{MchtCode: "M3", Status: model.MerchantClosed},
	}
	codes := []model.Code{{Code: "READY", Description: "대기"}, {Code: "ACTIVE", Description: "활성"}, {Code: "CLOSED", Description: "폐기"}}
	got := CountMerchantsByStatus(merchants, codes)
	assert.Equal(t, []model.StatusCount{
		{Code: "READY", Description: "대기", Count: 0},
		{Code: "ACTIVE", Description: "활성", Count: 2},
		{Code: "CLOSED", Description: "폐기", Count: 1},
	}, got)
}

func TestRecentPayments(t *testing.T) {
	at := time.Now()
	payments := []model.Payment{
		pay("P1", "M1", "1", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P2", "M1", "1", model.PaymentSuccess, model.PayTypeOnline, at),
		pay("P3", "M1", "1", model.PaymentSuccess, model.PayTypeOnline, at),
	}
	got := RecentPayments(payments, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "P1", got[0].PaymentCode)

	got[0].PaymentCode = "changed"
	assert.Equal(t, "P1", payments[0].PaymentCode)

	assert.Len(t, RecentPayments(payments, 10), 3)
	assert.Empty(t, RecentPayments(payments, -1))
}
