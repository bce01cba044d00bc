package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pay-dashboard-api/internal/gateway"
	"pay-dashboard-api/internal/logger"
	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/presenter"
	mock_service "pay-dashboard-api/internal/service/mocks"
)

var (
	fixtureMerchants = []model.Merchant{
		{MchtCode: "M001", MchtName: "Blue Cafe", Status: model.MerchantActive, BizType: "CAFE"},
		{MchtCode: "M002", MchtName: "Red Shop", Status: model.MerchantInactive, BizType: "SHOP"},
		{MchtCode: "M003", MchtName: "Green Mart", Status: model.MerchantReady, BizType: "MART"},
	}
	fixtureCodes = model.CodeTables{
		MerchantStatus: []model.Code{{Code: "READY", Description: "대기"}, {Code: "ACTIVE", Description: "활성"}, {Code: "INACTIVE", Description: "비활성"}, {Code: "CLOSED", Description: "폐기"}},
		PaymentStatus:  []model.Code{{Code: "SUCCESS", Description: "결제완료"}},
		PayType:        []model.Code{{Code: "ONLINE", Description: "온라인"}},
	}
)

func fixturePayments() []model.Payment {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, kst)
	return []model.Payment{
		pay("P4", "M001", "30000", model.PaymentSuccess, model.PayTypeOnline, today),
		pay("P3", "M002", "5000", model.PaymentFailed, model.PayTypeDevice, today),
		pay("P2", "M001", "20000", model.PaymentSuccess, model.PayTypeMobile, today.AddDate(0, 0, -3)),
		pay("P1", "M009", "50000", model.PaymentSuccess, model.PayTypeOnline, today.AddDate(0, -2, 0)),
	}
}

func newService(t *testing.T) (*DashboardService, *mock_service.MockPaymentsGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock_service.NewMockPaymentsGateway(ctrl)
	svc := NewDashboardService(gw, DashboardOptions{
		Clock:        presenter.Clock{Location: kst},
		FeeRate:      decimal.RequireFromString("0.025"),
		RecentLimit:  2,
		PreviewLimit: 2,
		Logger:       logger.Discard(),
	})
	return svc, gw
}

func expectCollections(gw *mock_service.MockPaymentsGateway) {
	gw.EXPECT().ListMerchants(gomock.Any()).Return(fixtureMerchants, nil)
	gw.EXPECT().ListPayments(gomock.Any()).Return(fixturePayments(), nil)
}

func expectCodes(gw *mock_service.MockPaymentsGateway) {
	gw.EXPECT().ListMerchantStatusCodes(gomock.Any()).Return(fixtureCodes.MerchantStatus, nil).AnyTimes()
	gw.EXPECT().ListPaymentStatusCodes(gomock.Any()).Return(fixtureCodes.PaymentStatus, nil).AnyTimes()
	gw.EXPECT().ListPaymentTypeCodes(gomock.Any()).Return(fixtureCodes.PayType, nil).AnyTimes()
}

func TestDashboard(t *testing.T) {
	svc, gw := newService(t)
	expectCollections(gw)
	expectCodes(gw)

	view, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, view.SnapshotID)
	assert.Equal(t, model.MerchantStats{TotalMerchants: 3, ActiveMerchants: 1, InactiveMerchants: 1}, view.MerchantStats)
	assert.Equal(t, "100000", view.PaymentStats.TotalAmount.String())
	assert.Equal(t, 4, view.PaymentStats.TotalCount)
	assert.Equal(t, 75.0, view.PaymentStats.SuccessRate)
	assert.True(t, view.Estimates.Estimated)
	assert.Equal(t, "2500", view.Estimates.FeeRevenue.String())
	assert.Len(t, view.PayTypes, len(model.PayTypes))
	assert.Equal(t, []string{"P4", "P3"}, codes(view.Recent))
	assert.Len(t, view.MerchantPreview, 2)
	assert.Equal(t, "M009", view.Merchants.Name("M009"))
	assert.Equal(t, "Blue Cafe", view.Merchants.Name("M001"))
	assert.Equal(t, 2, view.Activities["M001"].TransactionCount)
	assert.Equal(t, fixtureCodes, view.Codes)
}

func TestPaymentsFiltersAndScopesStats(t *testing.T) {
	svc, gw := newService(t)
	expectCollections(gw)
	expectCodes(gw)

	now := time.Date(2024, 3, 15, 18, 0, 0, 0, kst)
	view, err := svc.Payments(context.Background(), PaymentCriteria{DateRange: RangeToday, Now: now})
	require.NoError(t, err)

	assert.Equal(t, 4, view.TotalCount)
	assert.Equal(t, []string{"P4", "P3"}, codes(view.Payments))
	assert.Equal(t, "30000", view.PaymentStats.TotalAmount.String())
	assert.Equal(t, 2, view.PaymentStats.TotalCount)
	assert.Equal(t, 50.0, view.PaymentStats.SuccessRate)

	svc2, gw2 := newService(t)
	expectCollections(gw2)
	expectCodes(gw2)
	view, err = svc2.Payments(context.Background(), PaymentCriteria{DateRange: RangeAll, SearchTerm: "m001", Status: "SUCCESS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"P4", "P2"}, codes(view.Payments))
	assert.False(t, view.Criteria.Now.IsZero())
}

func TestMerchants(t *testing.T) {
	svc, gw := newService(t)
	expectCollections(gw)
	expectCodes(gw)

	view, err := svc.Merchants(context.Background(), MerchantCriteria{Status: "ACTIVE"})
	require.NoError(t, err)

	require.Len(t, view.Merchants, 1)
	assert.Equal(t, "M001", view.Merchants[0].MchtCode)
	assert.Equal(t, 3, view.MerchantStats.TotalMerchants)
	assert.Equal(t, []model.StatusCount{
		{Code: "READY", Description: "대기", Count: 1},
		{Code: "ACTIVE", Description: "활성", Count: 1},
		{Code: "INACTIVE", Description: "비활성", Count: 1},
		{Code: "CLOSED", Description: "폐기", Count: 0},
	}, view.StatusCounts)
	assert.Equal(t, "50000", view.Activities["M001"].TransactionAmount.String())
}

func TestSnapshotFailsWhenEitherFetchFails(t *testing.T) {
	svc, gw := newService(t)
	fetchErr := &gateway.FetchError{Kind: gateway.NetworkError, Endpoint: gateway.PathPaymentList, StatusCode: 500}
	gw.EXPECT().ListMerchants(gomock.Any()).Return(fixtureMerchants, nil)
	gw.EXPECT().ListPayments(gomock.Any()).Return(nil, fetchErr)
	expectCodes(gw)

	view, err := svc.Dashboard(context.Background())
	assert.Nil(t, view)
	assert.True(t, gateway.IsKind(err, gateway.NetworkError))
}

func TestSnapshotDiscardedWhenRequestEnds(t *testing.T) {
	svc, gw := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	gw.EXPECT().ListMerchants(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Merchant, error) {
		cancel()
		return fixtureMerchants, nil
	})
	gw.EXPECT().ListPayments(gomock.Any()).Return(fixturePayments(), nil)

	snap, err := svc.LoadSnapshot(ctx)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCodeTablesFallBackToBuiltIn(t *testing.T) {
	svc, gw := newService(t)
	gw.EXPECT().ListMerchantStatusCodes(gomock.Any()).Return(nil, &gateway.FetchError{Kind: gateway.DecodeError})
	gw.EXPECT().ListPaymentStatusCodes(gomock.Any()).Return(fixtureCodes.PaymentStatus, nil)
	gw.EXPECT().ListPaymentTypeCodes(gomock.Any()).Return(fixtureCodes.PayType, nil)

	_, err := svc.FetchCodeTables(context.Background())
	assert.True(t, gateway.IsKind(err, gateway.DecodeError))

	gw.EXPECT().ListMerchantStatusCodes(gomock.Any()).Return(nil, errors.New("boom"))
	gw.EXPECT().ListPaymentStatusCodes(gomock.Any()).Return(fixtureCodes.PaymentStatus, nil)
	gw.EXPECT().ListPaymentTypeCodes(gomock.Any()).Return(fixtureCodes.PayType, nil)
	assert.Equal(t, presenter.DefaultCodeTables(), svc.CodeTables(context.Background()))
}

func TestFetchCodeTablesCoalescesConcurrentCalls(t *testing.T) {
	svc, gw := newService(t)
	release := make(chan struct{})
	gw.EXPECT().ListMerchantStatusCodes(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Code, error) {
		<-release
		return fixtureCodes.MerchantStatus, nil
	}).Times(1)
	gw.EXPECT().ListPaymentStatusCodes(gomock.Any()).Return(fixtureCodes.PaymentStatus, nil).Times(1)
	gw.EXPECT().ListPaymentTypeCodes(gomock.Any()).Return(fixtureCodes.PayType, nil).Times(1)

	var wg sync.WaitGroup
	results := make([]model.CodeTables, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables, err := svc.FetchCodeTables(context.Background())
			assert.NoError(t, err)
			results[i] = tables
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, fixtureCodes, r)
	}
}

func TestMerchantDetail(t *testing.T) {
	svc, gw := newService(t)
	detail := model.MerchantDetail{Merchant: fixtureMerchants[0], BizNo: "123-45-67890"}
	gw.EXPECT().GetMerchantDetail(gomock.Any(), "M001").Return(detail, nil)
	gw.EXPECT().ListPayments(gomock.Any()).Return(fixturePayments(), nil)
	expectCodes(gw)

	view, err := svc.MerchantDetail(context.Background(), "M001")
	require.NoError(t, err)
	assert.Equal(t, "123-45-67890", view.Detail.BizNo)
	assert.Equal(t, 2, view.Activity.TransactionCount)
	assert.Equal(t, 100.0, view.Activity.SuccessRate)
	assert.Equal(t, []string{"P4", "P2"}, codes(view.Recent))
}

func TestMerchantDetailNotFound(t *testing.T) {
	svc, gw := newService(t)
	gw.EXPECT().GetMerchantDetail(gomock.Any(), "M404").
		Return(model.MerchantDetail{}, &gateway.FetchError{Kind: gateway.NotFoundError, Endpoint: gateway.PathMerchantDetails})
	gw.EXPECT().ListPayments(gomock.Any()).Return(fixturePayments(), nil)
	expectCodes(gw)

	_, err := svc.MerchantDetail(context.Background(), "M404")
	assert.True(t, gateway.IsKind(err, gateway.NotFoundError))
}
