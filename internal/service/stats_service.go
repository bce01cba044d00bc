package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"pay-dashboard-api/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ComputeMerchantStats counts the collection, its ACTIVE and its INACTIVE merchants.
func ComputeMerchantStats(merchants []model.Merchant) model.MerchantStats {
	stats := model.MerchantStats{TotalMerchants: len(merchants)}
	for _, m := range merchants {
		switch m.Status {
		case model.MerchantActive:
			stats.ActiveMerchants++
		case model.MerchantInactive:
			stats.InactiveMerchants++
		}
	}
	return stats
}

// ComputePaymentStats sums SUCCESS amounts exactly and derives the success rate over
// the whole scope passed in. The today fields alias the totals.
func ComputePaymentStats(payments []model.Payment) model.PaymentStats {
	total := decimal.Zero
	success := 0
	for _, p := range payments {
		if p.IsSuccess() {
			success++
			total = total.Add(p.Amount)
		}
	}
	return model.PaymentStats{
		TotalAmount: total,
		TotalCount:  len(payments),
		SuccessRate: percent(decimal.NewFromInt(int64(success)), decimal.NewFromInt(int64(len(payments)))),
		TodayAmount: total,
		TodayCount:  len(payments),
	}
}

// ComputePayTypeBreakdown splits SUCCESS volume by pay type. The known types are always
// listed in display order; unknown types follow sorted by code.
func ComputePayTypeBreakdown(payments []model.Payment) []model.PayTypeStat {
	byType := make(map[model.PayType]*model.PayTypeStat)
	total := decimal.Zero
	for _, p := range payments {
		if !p.IsSuccess() {
			continue
		}
		st, ok := byType[p.PayType]
		if !ok {
			st = &model.PayTypeStat{PayType: p.PayType, Amount: decimal.Zero}
			byType[p.PayType] = st
		}
		st.Count++
		st.Amount = st.Amount.Add(p.Amount)
		total = total.Add(p.Amount)
	}

	var unknown []model.PayType
	for t := range byType {
		if !t.IsKnown() {
			unknown = append(unknown, t)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	order := append(append([]model.PayType{}, model.PayTypes...), unknown...)
	out := make([]model.PayTypeStat, 0, len(order))
	for _, t := range order {
		st := model.PayTypeStat{PayType: t, Amount: decimal.Zero}
		if found, ok := byType[t]; ok {
			st = *found
		}
		st.Share = percent(st.Amount, total)
		out = append(out, st)
	}
	return out
}

// ComputeMerchantActivities summarizes payments per merchant code in one pass.
func ComputeMerchantActivities(payments []model.Payment) map[string]model.MerchantActivity {
	acc := make(map[string]model.MerchantActivity)
	for _, p := range payments {
		a, ok := acc[p.MchtCode]
		if !ok {
			a.TransactionAmount = decimal.Zero
		}
		a.TransactionCount++
		if p.IsSuccess() {
			a.SuccessCount++
			a.TransactionAmount = a.TransactionAmount.Add(p.Amount)
		}
		acc[p.MchtCode] = a
	}
	for code, a := range acc {
		a.SuccessRate = percent(decimal.NewFromInt(int64(a.SuccessCount)), decimal.NewFromInt(int64(a.TransactionCount)))
		acc[code] = a
	}
	return acc
}

// ActivityFor returns the merchant's activity, zero-valued when it has no payments.
func ActivityFor(activities map[string]model.MerchantActivity, mchtCode string) model.MerchantActivity {
	if a, ok := activities[mchtCode]; ok {
		return a
	}
	return model.MerchantActivity{TransactionAmount: decimal.Zero}
}

// CountMerchantsByStatus counts merchants per status tab, in code table order.
func CountMerchantsByStatus(merchants []model.Merchant, codes []model.Code) []model.StatusCount {
	counts := make(map[model.MerchantStatus]int)
	for _, m := range merchants {
		counts[m.Status]++
	}
	out := make([]model.StatusCount, 0, len(codes))
	for _, c := range codes {
		out = append(out, model.StatusCount{
			Code:        c.Code,
			Description: c.Description,
			Count:       counts[model.MerchantStatus(c.Code)],
		})
	}
	return out
}

// RecentPayments returns at most n payments from the head of the collection.
func RecentPayments(payments []model.Payment, n int) []model.Payment {
	if n < 0 {
		n = 0
	}
	if n > len(payments) {
		n = len(payments)
	}
	out := make([]model.Payment, n)
	copy(out, payments[:n])
	return out
}

// percent is part/whole*100 rounded to one decimal, 0 when whole is 0.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	f, _ := part.Mul(hundred).Div(whole).Round(1).Float64()
	return f
}
