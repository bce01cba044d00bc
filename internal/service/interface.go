package service

import (
	"context"

	"pay-dashboard-api/internal/model"
)

// PaymentsGateway is the remote data the dashboard is computed from.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -source=interface.go PaymentsGateway
type PaymentsGateway interface {
	ListMerchants(ctx context.Context) ([]model.Merchant, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	GetMerchantDetail(ctx context.Context, mchtCode string) (model.MerchantDetail, error)
	ListMerchantStatusCodes(ctx context.Context) ([]model.Code, error)
	ListPaymentStatusCodes(ctx context.Context) ([]model.Code, error)
	ListPaymentTypeCodes(ctx context.Context) ([]model.Code, error)
}
