package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/presenter"
	"pay-dashboard-api/internal/service"
	"pay-dashboard-api/internal/utils/timeutil"
)

// DashboardHandler serves the read-only dashboard views.
type DashboardHandler struct {
	svc      *service.DashboardService
	clock    presenter.Clock
	currency string
}

func NewDashboardHandler(svc *service.DashboardService, clock presenter.Clock, currency string) *DashboardHandler {
	return &DashboardHandler{svc: svc, clock: clock, currency: currency}
}

// Dashboard GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	view, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	r := dto.NewRenderer(view.Codes, h.clock, h.currency)
	render(c, r, dto.DashboardResp{
		SnapshotID:      view.SnapshotID,
		GeneratedAt:     r.Time(view.GeneratedAt),
		MerchantStats:   r.MerchantStats(view.MerchantStats),
		PaymentStats:    r.PaymentStats(view.PaymentStats),
		Estimates:       r.Estimates(view.Estimates),
		PayTypes:        r.PayTypes(view.PayTypes),
		RecentPayments:  r.Payments(view.Recent, view.Merchants),
		MerchantPreview: r.Merchants(view.MerchantPreview, view.Activities),
	})
}

// Payments GET /api/v1/payments
func (h *DashboardHandler) Payments(c *gin.Context) {
	var q dto.PaymentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	criteria, err := h.paymentCriteria(q)
	if err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.Payments(c.Request.Context(), criteria)
	if err != nil {
		fail(c, err)
		return
	}
	r := dto.NewRenderer(view.Codes, h.clock, h.currency)
	q.DateRange = string(criteria.DateRange)
	render(c, r, dto.PaymentListResp{
		SnapshotID:   view.SnapshotID,
		GeneratedAt:  r.Time(view.GeneratedAt),
		Filter:       q,
		TotalCount:   view.TotalCount,
		Count:        len(view.Payments),
		PaymentStats: r.PaymentStats(view.PaymentStats),
		PayTypes:     r.PayTypes(view.PayTypes),
		Payments:     r.Payments(view.Payments, view.Merchants),
	})
}

// Merchants GET /api/v1/merchants
func (h *DashboardHandler) Merchants(c *gin.Context) {
	var q dto.MerchantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.Merchants(c.Request.Context(), service.MerchantCriteria{
		Status:     q.Status,
		SearchTerm: q.Search,
	})
	if err != nil {
		fail(c, err)
		return
	}
	r := dto.NewRenderer(view.Codes, h.clock, h.currency)
	render(c, r, dto.MerchantListResp{
		SnapshotID:    view.SnapshotID,
		GeneratedAt:   r.Time(view.GeneratedAt),
		Filter:        q,
		MerchantStats: r.MerchantStats(view.MerchantStats),
		StatusTabs:    r.StatusTabs(view.StatusCounts, view.MerchantStats.TotalMerchants),
		Count:         len(view.Merchants),
		Merchants:     r.Merchants(view.Merchants, view.Activities),
	})
}

// MerchantDetail GET /api/v1/merchants/:code
func (h *DashboardHandler) MerchantDetail(c *gin.Context) {
	var p dto.MerchantPath
	if err := c.ShouldBindUri(&p); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.MerchantDetail(c.Request.Context(), p.Code)
	if err != nil {
		fail(c, err)
		return
	}
	r := dto.NewRenderer(view.Codes, h.clock, h.currency)
	names := model.NewMerchantIndex([]model.Merchant{view.Detail.Merchant})
	render(c, r, dto.MerchantDetailResp{
		GeneratedAt:    r.Time(view.GeneratedAt),
		Merchant:       r.MerchantDetail(view.Detail, view.Activity),
		RecentPayments: r.Payments(view.Recent, names),
	})
}

// Codes GET /api/v1/codes
func (h *DashboardHandler) Codes(c *gin.Context) {
	tables, err := h.svc.FetchCodeTables(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.NewCodesResp(tables))
}

// paymentCriteria turns the bound query into filter criteria. An omitted range is today.
func (h *DashboardHandler) paymentCriteria(q dto.PaymentQuery) (service.PaymentCriteria, error) {
	loc := h.clock.Location
	if loc == nil {
		loc = time.UTC
	}
	criteria := service.PaymentCriteria{
		DateRange:  service.DateRange(q.DateRange),
		Status:     q.Status,
		PayType:    q.PayType,
		SearchTerm: strings.TrimSpace(q.Search),
		Now:        h.clock.Now(),
	}
	if criteria.DateRange == "" {
		criteria.DateRange = service.RangeToday
	}
	if criteria.DateRange != service.RangeCustom {
		return criteria, nil
	}

	var err error
	if q.StartDate != "" {
		if criteria.StartDate, err = timeutil.ParseDate(q.StartDate, loc); err != nil {
			return criteria, err
		}
	}
	if q.EndDate != "" {
		if criteria.EndDate, err = timeutil.ParseDate(q.EndDate, loc); err != nil {
			return criteria, err
		}
	}
	return criteria, nil
}
