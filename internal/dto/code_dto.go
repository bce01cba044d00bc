package dto

import (
	"encoding/json"

	"pay-dashboard-api/internal/model"
)

// CodeDTO is one code table row. The pay-type endpoint names the key "type"
// instead of "code"; both are accepted.
type CodeDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *CodeDTO) UnmarshalJSON(b []byte) error {
	var raw struct {
		Code        string `json:"code"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.Code = raw.Code
	if c.Code == "" {
		c.Code = raw.Type
	}
	c.Description = raw.Description
	return nil
}

func ToCodes(in []CodeDTO) []model.Code {
	out := make([]model.Code, 0, len(in))
	for _, c := range in {
		out = append(out, model.Code{Code: c.Code, Description: c.Description})
	}
	return out
}
