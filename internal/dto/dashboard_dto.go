package dto

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/presenter"
	"pay-dashboard-api/internal/settlement"
	"pay-dashboard-api/internal/utils/timeutil"
)

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(decimal.Decimal).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return timeutil.FormatISO8601(src.(time.Time)), nil
			},
		},
	},
}

type MerchantStatsVO struct {
	TotalMerchants    int `json:"totalMerchants"`
	ActiveMerchants   int `json:"activeMerchants"`
	InactiveMerchants int `json:"inactiveMerchants"`
}

type PaymentStatsVO struct {
	TotalAmount     string  `json:"totalAmount"`
	TotalAmountText string  `json:"totalAmountText"`
	TotalCount      int     `json:"totalCount"`
	SuccessRate     float64 `json:"successRate"`
	TodayAmount     string  `json:"todayAmount"`
	TodayAmountText string  `json:"todayAmountText"`
	TodayCount      int     `json:"todayCount"`
}

type EstimatesVO struct {
	AverageTicket               string `json:"averageTicket"`
	AverageTicketText           string `json:"averageTicketText"`
	PendingSettlementCount      int64  `json:"pendingSettlementCount"`
	PendingSettlementAmount     string `json:"pendingSettlementAmount"`
	PendingSettlementAmountText string `json:"pendingSettlementAmountText"`
	FeeRate                     string `json:"feeRate"`
	FeeRevenue                  string `json:"feeRevenue"`
	FeeRevenueText              string `json:"feeRevenueText"`
	FailedCount                 int64  `json:"failedCount"`
	FailedAmount                string `json:"failedAmount"`
	FailedAmountText            string `json:"failedAmountText"`
	Estimated                   bool   `json:"estimated"`
}

type PayTypeVO struct {
	PayType    string  `json:"payType"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Amount     string  `json:"amount"`
	AmountText string  `json:"amountText"`
	Share      float64 `json:"share"`
}

type PaymentVO struct {
	PaymentCode   string          `json:"paymentCode"`
	MchtCode      string          `json:"mchtCode"`
	MchtName      string          `json:"mchtName"`
	Amount        string          `json:"amount"`
	AmountText    string          `json:"amountText"`
	Currency      string          `json:"currency"`
	PayType       string          `json:"payType"`
	PayTypeLabel  string          `json:"payTypeLabel"`
	Status        string          `json:"status"`
	StatusBadge   presenter.Badge `json:"statusBadge"`
	PaymentAt     string          `json:"paymentAt"`
	PaymentAtText string          `json:"paymentAtText"`
}

type ActivityVO struct {
	TransactionCount      int     `json:"transactionCount"`
	SuccessCount          int     `json:"successCount"`
	TransactionAmount     string  `json:"transactionAmount"`
	TransactionAmountText string  `json:"transactionAmountText"`
	SuccessRate           float64 `json:"successRate"`
}

type MerchantVO struct {
	MchtCode    string          `json:"mchtCode"`
	MchtName    string          `json:"mchtName"`
	Status      string          `json:"status"`
	StatusBadge presenter.Badge `json:"statusBadge"`
	BizType     string          `json:"bizType"`
	Activity    ActivityVO      `json:"activity"`
}

type MerchantDetailVO struct {
	MerchantVO
	BizNo            string `json:"bizNo"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	RegisteredAt     string `json:"registeredAt"`
	RegisteredAtText string `json:"registeredAtText"`
	UpdatedAt        string `json:"updatedAt"`
	UpdatedAtText    string `json:"updatedAtText"`
}

type StatusTabVO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CodeVO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type CodesResp struct {
	MerchantStatus []CodeVO `json:"merchantStatus"`
	PaymentStatus  []CodeVO `json:"paymentStatus"`
	PayType        []CodeVO `json:"payType"`
}

type DashboardResp struct {
	SnapshotID      string          `json:"snapshotId"`
	GeneratedAt     string          `json:"generatedAt"`
	MerchantStats   MerchantStatsVO `json:"merchantStats"`
	PaymentStats    PaymentStatsVO  `json:"paymentStats"`
	Estimates       EstimatesVO     `json:"estimates"`
	PayTypes        []PayTypeVO     `json:"payTypes"`
	RecentPayments  []PaymentVO     `json:"recentPayments"`
	MerchantPreview []MerchantVO    `json:"merchantPreview"`
}

type PaymentListResp struct {
	SnapshotID   string         `json:"snapshotId"`
	GeneratedAt  string         `json:"generatedAt"`
	Filter       PaymentQuery   `json:"filter"`
	TotalCount   int            `json:"totalCount"`
	Count        int            `json:"count"`
	PaymentStats PaymentStatsVO `json:"paymentStats"`
	PayTypes     []PayTypeVO    `json:"payTypes"`
	Payments     []PaymentVO    `json:"payments"`
}

type MerchantListResp struct {
	SnapshotID    string          `json:"snapshotId"`
	GeneratedAt   string          `json:"generatedAt"`
	Filter        MerchantQuery   `json:"filter"`
	MerchantStats MerchantStatsVO `json:"merchantStats"`
	StatusTabs    []StatusTabVO   `json:"statusTabs"`
	Count         int             `json:"count"`
	Merchants     []MerchantVO    `json:"merchants"`
}

type MerchantDetailResp struct {
	GeneratedAt    string           `json:"generatedAt"`
	Merchant       MerchantDetailVO `json:"merchant"`
	RecentPayments []PaymentVO      `json:"recentPayments"`
}

// Renderer turns model values into view objects: labels from the code tables, money in
// Currency, timestamps in the Clock's zone. A failed field copy is kept and reported by
// Err; callers check it before sending what was rendered.
type Renderer struct {
	Labels   *presenter.Labeler
	Clock    presenter.Clock
	Currency string
	err      error
}

func NewRenderer(tables model.CodeTables, clock presenter.Clock, currency string) *Renderer {
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return &Renderer{Labels: presenter.NewLabeler(tables), Clock: clock, Currency: currency}
}

// Err returns the first copy error seen by r.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) copy(to, from interface{}) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil && r.err == nil {
		r.err = fmt.Errorf("render %T: %w", to, err)
	}
}

func (r *Renderer) money(d decimal.Decimal) string {
	return presenter.FormatCurrency(d, r.Currency)
}

func (r *Renderer) MerchantStats(s model.MerchantStats) MerchantStatsVO {
	var vo MerchantStatsVO
	r.copy(&vo, &s)
	return vo
}

func (r *Renderer) PaymentStats(s model.PaymentStats) PaymentStatsVO {
	var vo PaymentStatsVO
	r.copy(&vo, &s)
	vo.TotalAmountText = r.money(s.TotalAmount)
	vo.TodayAmountText = r.money(s.TodayAmount)
	return vo
}

func (r *Renderer) Estimates(e settlement.Estimates) EstimatesVO {
	var vo EstimatesVO
	r.copy(&vo, &e)
	vo.AverageTicketText = r.money(e.AverageTicket)
	vo.PendingSettlementAmountText = r.money(e.PendingSettlementAmount)
	vo.FeeRevenueText = r.money(e.FeeRevenue)
	vo.FailedAmountText = r.money(e.FailedAmount)
	return vo
}

func (r *Renderer) PayTypes(stats []model.PayTypeStat) []PayTypeVO {
	out := make([]PayTypeVO, 0, len(stats))
	for _, s := range stats {
		var vo PayTypeVO
		r.copy(&vo, &s)
		vo.Label = r.Labels.PayType(s.PayType)
		vo.AmountText = r.money(s.Amount)
		out = append(out, vo)
	}
	return out
}

// Payment renders p; the merchant name falls back to the code when names does not know it.
func (r *Renderer) Payment(p model.Payment, names model.MerchantIndex) PaymentVO {
	var vo PaymentVO
	r.copy(&vo, &p)
	vo.MchtName = names.Name(p.MchtCode)
	vo.AmountText = presenter.FormatCurrency(p.Amount, p.Currency)
	vo.PayTypeLabel = r.Labels.PayType(p.PayType)
	vo.StatusBadge = r.Labels.PaymentStatusBadge(p.Status)
	vo.PaymentAtText = r.Clock.FormatDateTime(p.PaymentAt)
	return vo
}

func (r *Renderer) Payments(payments []model.Payment, names model.MerchantIndex) []PaymentVO {
	out := make([]PaymentVO, 0, len(payments))
	for _, p := range payments {
		out = append(out, r.Payment(p, names))
	}
	return out
}

func (r *Renderer) Activity(a model.MerchantActivity) ActivityVO {
	var vo ActivityVO
	r.copy(&vo, &a)
	vo.TransactionAmountText = r.money(a.TransactionAmount)
	return vo
}

func (r *Renderer) Merchant(m model.Merchant, activity model.MerchantActivity) MerchantVO {
	var vo MerchantVO
	r.copy(&vo, &m)
	vo.StatusBadge = r.Labels.MerchantStatusBadge(m.Status)
	vo.Activity = r.Activity(activity)
	return vo
}

func (r *Renderer) Merchants(merchants []model.Merchant, activities map[string]model.MerchantActivity) []MerchantVO {
	out := make([]MerchantVO, 0, len(merchants))
	for _, m := range merchants {
		a, ok := activities[m.MchtCode]
		if !ok {
			a.TransactionAmount = decimal.Zero
		}
		out = append(out, r.Merchant(m, a))
	}
	return out
}

func (r *Renderer) MerchantDetail(d model.MerchantDetail, activity model.MerchantActivity) MerchantDetailVO {
	vo := MerchantDetailVO{
		MerchantVO:       r.Merchant(d.Merchant, activity),
		BizNo:            d.BizNo,
		Address:          d.Address,
		Phone:            d.Phone,
		Email:            d.Email,
		RegisteredAt:     timeutil.FormatISO8601(d.RegisteredAt),
		RegisteredAtText: r.Clock.FormatDateTime(d.RegisteredAt),
		UpdatedAt:        timeutil.FormatISO8601(d.UpdatedAt),
		UpdatedAtText:    r.Clock.FormatDateTime(d.UpdatedAt),
	}
	return vo
}

// StatusTabs labels the status counts and prepends the "all" tab.
func (r *Renderer) StatusTabs(counts []model.StatusCount, total int) []StatusTabVO {
	out := make([]StatusTabVO, 0, len(counts)+1)
	out = append(out, StatusTabVO{Code: "all", Label: "전체", Count: total})
	for _, c := range counts {
		out = append(out, StatusTabVO{
			Code:  c.Code,
			Label: r.Labels.MerchantStatus(model.MerchantStatus(c.Code)),
			Count: c.Count,
		})
	}
	return out
}

func (r *Renderer) Time(t time.Time) string {
	if r.Clock.Location != nil {
		t = t.In(r.Clock.Location)
	}
	return timeutil.FormatISO8601(t)
}

func NewCodesResp(tables model.CodeTables) CodesResp {
	conv := func(in []model.Code) []CodeVO {
		out := make([]CodeVO, 0, len(in))
		for _, c := range in {
			out = append(out, CodeVO{Code: c.Code, Description: c.Description})
		}
		return out
	}
	return CodesResp{
		MerchantStatus: conv(tables.MerchantStatus),
		PaymentStatus:  conv(tables.PaymentStatus),
		PayType:        conv(tables.PayType),
	}
}
