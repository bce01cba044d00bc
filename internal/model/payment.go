package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "KRW"

// Payment is a single transaction record. MchtCode may reference a merchant that is
// not in the loaded merchant collection.
type Payment struct {
	PaymentCode string          `json:"paymentCode"`
	MchtCode    string          `json:"mchtCode"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PayType     PayType         `json:"payType"`
	Status      PaymentStatus   `json:"status"`
	PaymentAt   time.Time       `json:"paymentAt"`
}

func (p Payment) IsSuccess() bool {
	return p.Status == PaymentSuccess
}

// PaymentStats summarizes a payment collection. TodayAmount and TodayCount alias the
// totals of whatever scope was passed in.
type PaymentStats struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalCount  int             `json:"totalCount"`
	SuccessRate float64         `json:"successRate"`
	TodayAmount decimal.Decimal `json:"todayAmount"`
	TodayCount  int             `json:"todayCount"`
}

// PayTypeStat is the SUCCESS volume of one pay type.
type PayTypeStat struct {
	PayType PayType         `json:"payType"`
	Count   int             `json:"count"`
	Amount  decimal.Decimal `json:"amount"`
	Share   float64         `json:"share"`
}

// MerchantActivity is the payment summary shown on a merchant card.
type MerchantActivity struct {
	TransactionCount  int             `json:"transactionCount"`
	SuccessCount      int             `json:"successCount"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	SuccessRate       float64         `json:"successRate"`
}
