package service

import (
	"strings"
	"time"

	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/utils/timeutil"
)

// DateRange selects the payment window.
type DateRange string

const (
	RangeAll    DateRange = "all"
	RangeToday  DateRange = "today"
	RangeWeek   DateRange = "week"
	RangeMonth  DateRange = "month"
	RangeCustom DateRange = "custom"
)

// FilterAll matches any status or pay type.
const FilterAll = "all"

const day = 24 * time.Hour

// PaymentCriteria is one immutable snapshot of the payment filter selections.
// Now is the reference instant; its location defines the local day. StartDate and
// EndDate are only read in custom mode, a zero value meaning unset; only their calendar
// date counts, whatever zone they carry.
type PaymentCriteria struct {
	DateRange  DateRange
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	PayType    string
	SearchTerm string
	Now        time.Time
}

// MerchantCriteria is one snapshot of the merchant filter selections.
type MerchantCriteria struct {
	Status     string
	SearchTerm string
}

// FilterPayments returns the payments matching every predicate: date range AND status
// AND pay type AND search. The input slice is not modified.
func FilterPayments(payments []model.Payment, c PaymentCriteria) []model.Payment {
	inRange := dateRangePredicate(c)
	search := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	out := make([]model.Payment, 0, len(payments))
	for _, p := range payments {
		if !inRange(p.PaymentAt) {
			continue
		}
		if !matchCode(c.Status, string(p.Status)) {
			continue
		}
		if !matchCode(c.PayType, string(p.PayType)) {
			continue
		}
		if search != "" && !containsFold(search, p.PaymentCode, p.MchtCode) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterMerchants returns the merchants matching status AND search (name or code).
func FilterMerchants(merchants []model.Merchant, c MerchantCriteria) []model.Merchant {
	search := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	out := make([]model.Merchant, 0, len(merchants))
	for _, m := range merchants {
		if !matchCode(c.Status, string(m.Status)) {
			continue
		}
		if search != "" && !containsFold(search, m.MchtName, m.MchtCode) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func dateRangePredicate(c PaymentCriteria) func(time.Time) bool {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := now.Location()
	today := timeutil.StartOfDay(now)

	switch c.DateRange {
	case RangeToday:
		return since(today)
	case RangeWeek:
		return since(today.Add(-7 * day))
	case RangeMonth:
		return since(today.Add(-30 * day))
	case RangeCustom:
		return customRange(c.StartDate, c.EndDate, loc)
	default:
		return func(time.Time) bool { return true }
	}
}

func since(boundary time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return !t.Before(boundary)
	}
}

// customRange compares the payment's local day against whole start and end days. Start
// and end are taken as calendar dates; their own zone does not shift the day.
func customRange(start, end time.Time, loc *time.Location) func(time.Time) bool {
	if start.IsZero() && end.IsZero() {
		return func(time.Time) bool { return false }
	}
	var from, to time.Time
	if !start.IsZero() {
		from = timeutil.StartOfDay(calendarDay(start, loc))
	}
	if !end.IsZero() {
		to = timeutil.EndOfDay(calendarDay(end, loc))
	}
	return func(t time.Time) bool {
		d := timeutil.StartOfDay(t.In(loc))
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func matchCode(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

func containsFold(lowerTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}
