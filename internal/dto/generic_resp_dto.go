package dto

import (
	"encoding/json"

	"pay-dashboard-api/internal/utils"
)

// GenericResp is the envelope every upstream endpoint answers with.
type GenericResp[T any] struct {
	Status  utils.StringOrNumber `json:"status"`
	Message string               `json:"message"`
	Data    T                    `json:"data"`
}

// UnmarshalGeneric decodes an envelope whose data is T.
func UnmarshalGeneric[T any](body []byte) (*GenericResp[T], error) {
	var resp GenericResp[T]
	err := json.Unmarshal(body, &resp)
	return &resp, err
}
