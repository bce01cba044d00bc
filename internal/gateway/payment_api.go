package gateway

import (
	"context"

	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/model"
)

// ListPayments fetches every payment. With ReversePayments set the server order is
// reversed so the newest payment comes first.
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return fetchApi(ctx, c, PathPaymentList, func(in []dto.PaymentDTO) ([]model.Payment, error) {
		out := make([]model.Payment, len(in))
		for i, p := range in {
			m, err := p.ToModel(c.loc)
			if err != nil {
				return nil, err
			}
			if c.reversePayments {
				out[len(in)-1-i] = m
			} else {
				out[i] = m
			}
		}
		return out, nil
	})
}
