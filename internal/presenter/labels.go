package presenter

import "pay-dashboard-api/internal/model"

// built-in labels, used when no server code table names the code
var (
	paymentStatusText = map[string]string{
		string(model.PaymentSuccess):   "성공",
		string(model.PaymentFailed):    "실패",
		string(model.PaymentCancelled): "취소",
		string(model.PaymentPending):   "대기",
	}
	merchantStatusText = map[string]string{
		string(model.MerchantReady):    "대기",
		string(model.MerchantActive):   "활성",
		string(model.MerchantInactive): "비활성",
		string(model.MerchantClosed):   "폐기",
	}
	payTypeText = map[string]string{
		string(model.PayTypeOnline):  "온라인",
		string(model.PayTypeDevice):  "단말기",
		string(model.PayTypeMobile):  "모바일",
		string(model.PayTypeVAct):    "가상계좌",
		string(model.PayTypeBilling): "정기결제",
	}
	statusColor = map[string]string{
		string(model.PaymentSuccess):   "green",
		string(model.MerchantActive):   "green",
		string(model.PaymentFailed):    "red",
		string(model.PaymentCancelled): "red",
		string(model.MerchantClosed):   "red",
		string(model.PaymentPending):   "yellow",
		string(model.MerchantReady):    "yellow",
		string(model.MerchantInactive): "gray",
	}
)

const defaultColor = "blue"

// Badge is a labeled, colored code.
type Badge struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Labeler turns codes into display labels. Server code tables override the built-in
// labels; a code neither knows is shown raw.
type Labeler struct {
	merchantStatus model.CodeTable
	paymentStatus  model.CodeTable
	payType        model.CodeTable
}

func NewLabeler(tables model.CodeTables) *Labeler {
	return &Labeler{
		merchantStatus: model.NewCodeTable(tables.MerchantStatus),
		paymentStatus:  model.NewCodeTable(tables.PaymentStatus),
		payType:        model.NewCodeTable(tables.PayType),
	}
}

func (l *Labeler) PaymentStatus(code model.PaymentStatus) string {
	return l.resolve(l.paymentStatus, paymentStatusText, string(code))
}

func (l *Labeler) MerchantStatus(code model.MerchantStatus) string {
	return l.resolve(l.merchantStatus, merchantStatusText, string(code))
}

func (l *Labeler) PayType(code model.PayType) string {
	return l.resolve(l.payType, payTypeText, string(code))
}

func (l *Labeler) PaymentStatusBadge(code model.PaymentStatus) Badge {
	return Badge{Code: string(code), Label: l.PaymentStatus(code), Color: StatusColor(string(code))}
}

func (l *Labeler) MerchantStatusBadge(code model.MerchantStatus) Badge {
	return Badge{Code: string(code), Label: l.MerchantStatus(code), Color: StatusColor(string(code))}
}

func (l *Labeler) resolve(external model.CodeTable, builtin map[string]string, code string) string {
	if d, ok := external.Lookup(code); ok && d != "" {
		return d
	}
	if d, ok := builtin[code]; ok {
		return d
	}
	return code
}

// StatusColor is the badge color of a payment or merchant status.
func StatusColor(code string) string {
	if c, ok := statusColor[code]; ok {
		return c
	}
	return defaultColor
}

// DefaultCodeTables are the built-in tables, used when the server's tables cannot be fetched.
func DefaultCodeTables() model.CodeTables {
	var t model.CodeTables
	for _, s := range model.MerchantStatuses {
		t.MerchantStatus = append(t.MerchantStatus, model.Code{Code: string(s), Description: merchantStatusText[string(s)]})
	}
	for _, s := range model.PaymentStatuses {
		t.PaymentStatus = append(t.PaymentStatus, model.Code{Code: string(s), Description: paymentStatusText[string(s)]})
	}
	for _, p := range model.PayTypes {
		t.PayType = append(t.PayType, model.Code{Code: string(p), Description: payTypeText[string(p)]})
	}
	return t
}
