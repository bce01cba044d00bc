package gateway

import (
	"context"
	"fmt"
	"net/url"

	"pay-dashboard-api/internal/dto"
	"pay-dashboard-api/internal/model"
)

// ListMerchants fetches the whole merchant collection.
func (c *Client) ListMerchants(ctx context.Context) ([]model.Merchant, error) {
	return fetchApi(ctx, c, PathMerchantList, func(in []dto.MerchantDTO) ([]model.Merchant, error) {
		out := make([]model.Merchant, 0, len(in))
		for _, m := range in {
			out = append(out, m.ToModel())
		}
		return out, nil
	})
}

// ListMerchantDetails fetches the details collection; an empty code asks for all merchants.
// The server answers with a collection even when a code is given.
func (c *Client) ListMerchantDetails(ctx context.Context, mchtCode string) ([]model.MerchantDetail, error) {
	endpoint := PathMerchantDetails
	if mchtCode != "" {
		endpoint += "?mchtCode=" + url.QueryEscape(mchtCode)
	}
	return fetchApi(ctx, c, endpoint, func(in []dto.MerchantDetailDTO) ([]model.MerchantDetail, error) {
		out := make([]model.MerchantDetail, 0, len(in))
		for _, m := range in {
			d, err := m.ToModel(c.loc)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	})
}

// GetMerchantDetail locates mchtCode in the details collection.
func (c *Client) GetMerchantDetail(ctx context.Context, mchtCode string) (model.MerchantDetail, error) {
	details, err := c.ListMerchantDetails(ctx, mchtCode)
	if err != nil {
		return model.MerchantDetail{}, err
	}
	for _, d := range details {
		if d.MchtCode == mchtCode {
			return d, nil
		}
	}
	return model.MerchantDetail{}, &FetchError{
		Kind:     NotFoundError,
		Endpoint: PathMerchantDetails,
		Err:      fmt.Errorf("merchant code %s not found", mchtCode),
	}
}
