package model

// MerchantStatus is the lifecycle state of a merchant.
type MerchantStatus string

const (
	MerchantReady    MerchantStatus = "READY"
	MerchantActive   MerchantStatus = "ACTIVE"
	MerchantInactive MerchantStatus = "INACTIVE"
	MerchantClosed   MerchantStatus = "CLOSED"
)

// MerchantStatuses lists the known merchant states in display order.
var MerchantStatuses = []MerchantStatus{MerchantReady, MerchantActive, MerchantInactive, MerchantClosed}

func (s MerchantStatus) IsKnown() bool {
	switch s {
	case MerchantReady, MerchantActive, MerchantInactive, MerchantClosed:
		return true
	}
	return false
}

// PaymentStatus is the outcome of a payment as observed in the current snapshot.
type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentPending   PaymentStatus = "PENDING"
)

var PaymentStatuses = []PaymentStatus{PaymentSuccess, PaymentFailed, PaymentCancelled, PaymentPending}

func (s PaymentStatus) IsKnown() bool {
	switch s {
	case PaymentSuccess, PaymentFailed, PaymentCancelled, PaymentPending:
		return true
	}
	return false
}

// PayType is the channel a payment was made through.
type PayType string

const (
	PayTypeOnline  PayType = "ONLINE"
	PayTypeDevice  PayType = "DEVICE"
	PayTypeMobile  PayType = "MOBILE"
	PayTypeVAct    PayType = "VACT"
	PayTypeBilling PayType = "BILLING"
)

// PayTypes lists the known pay types in display order.
var PayTypes = []PayType{PayTypeOnline, PayTypeDevice, PayTypeMobile, PayTypeVAct, PayTypeBilling}

func (t PayType) IsKnown() bool {
	switch t {
	case PayTypeOnline, PayTypeDevice, PayTypeMobile, PayTypeVAct, PayTypeBilling:
		return true
	}
	return false
}

// Code is one entry of a server supplied code table.
type Code struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CodeTable maps a code to its description. A nil table is valid and empty.
type CodeTable map[string]string

// NewCodeTable builds a table from a code list; later duplicates win.
func NewCodeTable(codes []Code) CodeTable {
	t := make(CodeTable, len(codes))
	for _, c := range codes {
		t[c.Code] = c.Description
	}
	return t
}

func (t CodeTable) Lookup(code string) (string, bool) {
	d, ok := t[code]
	return d, ok
}

// CodeTables is the full set of tables the dashboard labels with.
type CodeTables struct {
	MerchantStatus []Code `json:"merchantStatus"`
	PaymentStatus  []Code `json:"paymentStatus"`
	PayType        []Code `json:"payType"`
}
