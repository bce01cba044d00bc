package dto

// PaymentQuery carries the payment filter selections. An empty DateRange means today.
type PaymentQuery struct {
	DateRange string `form:"dateRange" json:"dateRange,omitempty" binding:"omitempty,oneof=all today week month custom"`
	StartDate string `form:"startDate" json:"startDate,omitempty" binding:"omitempty,ymd"`
	EndDate   string `form:"endDate" json:"endDate,omitempty" binding:"omitempty,ymd"`
	Status    string `form:"status" json:"status,omitempty" binding:"omitempty,max=32"`
	PayType   string `form:"payType" json:"payType,omitempty" binding:"omitempty,max=32"`
	Search    string `form:"search" json:"search,omitempty" binding:"omitempty,max=100"`
}

// MerchantQuery carries the merchant filter selections.
type MerchantQuery struct {
	Status string `form:"status" json:"status,omitempty" binding:"omitempty,max=32"`
	Search string `form:"search" json:"search,omitempty" binding:"omitempty,max=100"`
}

// MerchantPath is the merchant detail route parameter.
type MerchantPath struct {
	Code string `uri:"code" binding:"required,max=64"`
}
