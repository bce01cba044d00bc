package model

import "time"

// Merchant is a registered business that accepts payments, keyed by MchtCode.
type Merchant struct {
	MchtCode string         `json:"mchtCode"`
	MchtName string         `json:"mchtName"`
	Status   MerchantStatus `json:"status"`
	BizType  string         `json:"bizType"`
}

// MerchantDetail is the extended record served by the details endpoint.
type MerchantDetail struct {
	Merchant
	BizNo        string    `json:"bizNo"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MerchantStats summarizes a merchant collection.
type MerchantStats struct {
	TotalMerchants    int `json:"totalMerchants"`
	ActiveMerchants   int `json:"activeMerchants"`
	InactiveMerchants int `json:"inactiveMerchants"`
}

// StatusCount is the number of merchants in one status tab.
type StatusCount struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// MerchantIndex resolves merchant codes against a loaded collection.
type MerchantIndex map[string]Merchant

func NewMerchantIndex(merchants []Merchant) MerchantIndex {
	idx := make(MerchantIndex, len(merchants))
	for _, m := range merchants {
		idx[m.MchtCode] = m
	}
	return idx
}

// Name is the merchant's name, or the raw code when the merchant is not loaded.
func (idx MerchantIndex) Name(mchtCode string) string {
	if m, ok := idx[mchtCode]; ok && m.MchtName != "" {
		return m.MchtName
	}
	return mchtCode
}
