package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/utils/timeutil"
)

// PaymentDTO is a payment as served by /payments/list. Amount arrives as a string or a number.
type PaymentDTO struct {
	PaymentCode string          `json:"paymentCode"`
	MchtCode    string          `json:"mchtCode"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PayType     string          `json:"payType"`
	Status      string          `json:"status"`
	PaymentAt   string          `json:"paymentAt"`
}

func (p PaymentDTO) ToModel(loc *time.Location) (model.Payment, error) {
	if p.Amount.IsNegative() {
		return model.Payment{}, fmt.Errorf("payment %s: negative amount %s", p.PaymentCode, p.Amount)
	}
	if strings.TrimSpace(p.PaymentAt) == "" {
		return model.Payment{}, fmt.Errorf("payment %s: %w", p.PaymentCode, errors.New("missing paymentAt"))
	}
	at, err := timeutil.ParseTimestamp(p.PaymentAt, loc)
	if err != nil {
		return model.Payment{}, fmt.Errorf("payment %s paymentAt: %w", p.PaymentCode, err)
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	return model.Payment{
		PaymentCode: p.PaymentCode,
		MchtCode:    p.MchtCode,
		Amount:      p.Amount,
		Currency:    currency,
		PayType:     model.PayType(p.PayType),
		Status:      model.PaymentStatus(p.Status),
		PaymentAt:   at,
	}, nil
}
