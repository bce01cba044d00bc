package dto

import (
	"fmt"
	"time"

	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/utils/timeutil"
)

type MerchantDTO struct {
	MchtCode string `json:"mchtCode"`
	MchtName string `json:"mchtName"`
	Status   string `json:"status"`
	BizType  string `json:"bizType"`
}

func (m MerchantDTO) ToModel() model.Merchant {
	return model.Merchant{
		MchtCode: m.MchtCode,
		MchtName: m.MchtName,
		Status:   model.MerchantStatus(m.Status),
		BizType:  m.BizType,
	}
}

type MerchantDetailDTO struct {
	MerchantDTO
	BizNo        string `json:"bizNo"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToModel converts the wire record; blank timestamps stay zero.
func (m MerchantDetailDTO) ToModel(loc *time.Location) (model.MerchantDetail, error) {
	registeredAt, err := timeutil.ParseTimestamp(m.RegisteredAt, loc)
	if err != nil {
		return model.MerchantDetail{}, fmt.Errorf("merchant %s registeredAt: %w", m.MchtCode, err)
	}
	updatedAt, err := timeutil.ParseTimestamp(m.UpdatedAt, loc)
	if err != nil {
		return model.MerchantDetail{}, fmt.Errorf("merchant %s updatedAt: %w", m.MchtCode, err)
	}
	return model.MerchantDetail{
		Merchant:     m.MerchantDTO.ToModel(),
		BizNo:        m.BizNo,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		RegisteredAt: registeredAt,
		UpdatedAt:    updatedAt,
	}, nil
}
