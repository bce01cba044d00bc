package gateway

import (
	"context"

	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/model"
)

func (c *Client) ListMerchantStatusCodes(ctx context.Context) ([]model.Code, error) {
	return c.listCodes(ctx, PathMerchantStatusAll)
}

func (c *Client) ListPaymentStatusCodes(ctx context.Context) ([]model.Code, error) {
	return c.listCodes(ctx, PathPaymentStatusAll)
}

func (c *Client) ListPaymentTypeCodes(ctx context.Context) ([]model.Code, error) {
	return c.listCodes(ctx, PathPaymentTypeAll)
}

func (c *Client) listCodes(ctx context.Context, endpoint string) ([]model.Code, error) {
	return fetchApi(ctx, c, endpoint, func(in []dto.CodeDTO) ([]model.Code, error) {
		return dto.ToCodes(in), nil
	})
}
