package presenter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pay-dashboard-api/internal/model"
)

func TestLabelerFallbackOrder(t *testing.T) {
	l := NewLabeler(model.CodeTables{
		PaymentStatus: []model.Code{{Code: "SUCCESS", Description: "결제완료"}, {Code: "REFUNDED", Description: "환불"}},
	})

	// the server table wins over the built-in label
	assert.Equal(t, "결제완료", l.PaymentStatus(model.PaymentSuccess))
	assert.Equal(t, "환불", l.PaymentStatus("REFUNDED"))
	// built-in when the server table is silent
	assert.Equal(t, "실패", l.PaymentStatus(model.PaymentFailed))
	// raw when nobody knows the code
	assert.Equal(t, "WHATEVER", l.PaymentStatus("WHATEVER"))
	assert.Equal(t, "NEW_TYPE", l.PayType("NEW_TYPE"))
	assert.Equal(t, "", l.MerchantStatus(""))
}

func TestBuiltInLabels(t *testing.T) {
	l := NewLabeler(model.CodeTables{})
	assert.Equal(t, "온라인", l.PayType(model.PayTypeOnline))
	assert.Equal(t, "가상계좌", l.PayType(model.PayTypeVAct))
	assert.Equal(t, "폐기", l.MerchantStatus(model.MerchantClosed))
	assert.Equal(t, "대기", l.PaymentStatus(model.PaymentPending))
}

func TestBadges(t *testing.T) {
	l := NewLabeler(model.CodeTables{})
	assert.Equal(t, Badge{Code: "SUCCESS", Label: "성공", Color: "green"}, l.PaymentStatusBadge(model.PaymentSuccess))
	assert.Equal(t, Badge{Code: "INACTIVE", Label: "비활성", Color: "gray"}, l.MerchantStatusBadge(model.MerchantInactive))
	assert.Equal(t, "blue", StatusColor("SOMETHING"))
	assert.Equal(t, "red", StatusColor("FAILED"))
}

func TestDefaultCodeTables(t *testing.T) {
	tables := DefaultCodeTables()
	assert.Len(t, tables.MerchantStatus, len(model.MerchantStatuses))
	assert.Len(t, tables.PaymentStatus, len(model.PaymentStatuses))
	assert.Len(t, tables.PayType, len(model.PayTypes))
	assert.Equal(t, model.Code{Code: "ONLINE", Description: "온라인"}, tables.PayType[0])
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234567", "KRW", "₩1,234,567"},
		{"1234567.4", "", "₩1,234,567"},
		{"0", "KRW", "₩0"},
		{"1234.5", "USD", "US$1,234.50"},
		{"0.01", "usd", "US$0.01"},
		{"-2500", "KRW", "-₩2,500"},
		{"1000", "JPY", "JP¥1,000"},
		{"12.3", "XYZ", "XYZ 12.30"},
		{"100000000000000000000", "KRW", "₩100,000,000,000,000,000,000"},
		{"-12345678901234567890.5", "USD", "-US$12,345,678,901,234,567,890.50"},
		{"999", "KRW", "₩999"},
		{"123456", "KRW", "₩123,456"},
	}
	for _, tc := range cases {
		t.Run(tc.amount+" "+tc.currency, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatCurrency(decimal.RequireFromString(tc.amount), tc.currency))
		})
	}
}

func TestClock(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	c := Clock{Location: kst}
	assert.Equal(t, "2024-01-01 09:30", c.FormatDateTime(time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", c.FormatDateTime(time.Time{}))
	assert.Equal(t, kst, c.Now().Location())

	assert.Equal(t, time.UTC, Clock{}.Now().Location())
}
