package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"pay-dashboard-api/internal/idgen"
	"pay-dashboard-api/internal/model"
	"pay-dashboard-api/internal/presenter"
	"pay-dashboard-api/internal/settlement"
)

const codeTablesKey = "code-tables"

// Snapshot is one joined fetch of both collections. It is never mutated after LoadSnapshot
// returns it; every view derives new slices from it.
type Snapshot struct {
	ID        string
	FetchedAt time.Time
	Merchants []model.Merchant
	Payments  []model.Payment
}

type DashboardView struct {
	SnapshotID      string
	GeneratedAt     time.Time
	MerchantStats   model.MerchantStats
	PaymentStats    model.PaymentStats
	Estimates       settlement.Estimates
	PayTypes        []model.PayTypeStat
	Recent          []model.Payment
	MerchantPreview []model.Merchant
	Activities      map[string]model.MerchantActivity
	Merchants       model.MerchantIndex
	Codes           model.CodeTables
}

type PaymentsView struct {
	SnapshotID   string
	GeneratedAt  time.Time
	Criteria     PaymentCriteria
	TotalCount   int
	Payments     []model.Payment
	PaymentStats model.PaymentStats
	PayTypes     []model.PayTypeStat
	Merchants    model.MerchantIndex
	Codes        model.CodeTables
}

type MerchantsView struct {
	SnapshotID    string
	GeneratedAt   time.Time
	Criteria      MerchantCriteria
	MerchantStats model.MerchantStats
	StatusCounts  []model.StatusCount
	Merchants     []model.Merchant
	Activities    map[string]model.MerchantActivity
	Codes         model.CodeTables
}

type MerchantDetailView struct {
	GeneratedAt time.Time
	Detail      model.MerchantDetail
	Activity    model.MerchantActivity
	Recent      []model.Payment
	Codes       model.CodeTables
}

type DashboardOptions struct {
	Clock        presenter.Clock
	FeeRate      decimal.Decimal
	RecentLimit  int
	PreviewLimit int
	Logger       *logrus.Logger
}

// DashboardService joins the remote collections and derives every dashboard view.
// It holds no collection state between calls.
type DashboardService struct {
	gw           PaymentsGateway
	clock        presenter.Clock
	feeRate      decimal.Decimal
	recentLimit  int
	previewLimit int
	codes        singleflight.Group
	log          *logrus.Logger
}

func NewDashboardService(gw PaymentsGateway, opts DashboardOptions) *DashboardService {
	if !opts.FeeRate.IsPositive() {
		opts.FeeRate = settlement.DefaultFeeRate
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 5
	}
	if opts.PreviewLimit <= 0 {
		opts.PreviewLimit = 5
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &DashboardService{
		gw:           gw,
		clock:        opts.Clock,
		feeRate:      opts.FeeRate,
		recentLimit:  opts.RecentLimit,
		previewLimit: opts.PreviewLimit,
		log:          opts.Logger,
	}
}

// LoadSnapshot fetches merchants and payments concurrently and returns only after both
// finished. A failure of either fails the snapshot. A request that was abandoned while
// the fetches ran gets ctx.Err() instead of a result.
func (s *DashboardService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		g         errgroup.Group
		merchants []model.Merchant
		payments  []model.Payment
	)
	g.Go(func() error {
		var err error
		merchants, err = s.gw.ListMerchants(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.gw.ListPayments(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Snapshot{
		ID:        idgen.NewString(),
		FetchedAt: s.clock.Now(),
		Merchants: merchants,
		Payments:  payments,
	}, nil
}

// FetchCodeTables loads the three code tables. Concurrent callers share one set of
// upstream calls; nothing is kept once they return.
func (s *DashboardService) FetchCodeTables(ctx context.Context) (model.CodeTables, error) {
	ch := s.codes.DoChan(codeTablesKey, func() (interface{}, error) {
		return s.fetchCodeTables(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return model.CodeTables{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return model.CodeTables{}, res.Err
		}
		return res.Val.(model.CodeTables), nil
	}
}

// CodeTables is FetchCodeTables falling back to the built-in tables.
func (s *DashboardService) CodeTables(ctx context.Context) model.CodeTables {
	tables, err := s.FetchCodeTables(ctx)
	if err != nil {
		s.log.WithError(err).Warn("code tables unavailable, using built-in labels")
		return presenter.DefaultCodeTables()
	}
	return tables
}

func (s *DashboardService) fetchCodeTables(ctx context.Context) (model.CodeTables, error) {
	var (
		g      errgroup.Group
		tables model.CodeTables
	)
	g.Go(func() (err error) {
		tables.MerchantStatus, err = s.gw.ListMerchantStatusCodes(ctx)
		return
	})
	g.Go(func() (err error) {
		tables.PaymentStatus, err = s.gw.ListPaymentStatusCodes(ctx)
		return
	})
	g.Go(func() (err error) {
		tables.PayType, err = s.gw.ListPaymentTypeCodes(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return model.CodeTables{}, err
	}
	return tables, nil
}

// load runs LoadSnapshot and CodeTables side by side.
func (s *DashboardService) load(ctx context.Context) (*Snapshot, model.CodeTables, error) {
	var (
		g      errgroup.Group
		snap   *Snapshot
		tables model.CodeTables
	)
	g.Go(func() (err error) {
		snap, err = s.LoadSnapshot(ctx)
		return
	})
	g.Go(func() error {
		tables = s.CodeTables(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, model.CodeTables{}, err
	}
	return snap, tables, nil
}

// Dashboard builds the overview: full-collection stats, estimate cards, pay type split,
// the newest payments and the first merchants.
func (s *DashboardService) Dashboard(ctx context.Context) (*DashboardView, error) {
	snap, tables, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputePaymentStats(snap.Payments)
	preview := snap.Merchants
	if len(preview) > s.previewLimit {
		preview = preview[:s.previewLimit]
	}
	preview = append([]model.Merchant(nil), preview...)

	return &DashboardView{
		SnapshotID:      snap.ID,
		GeneratedAt:     snap.FetchedAt,
		MerchantStats:   ComputeMerchantStats(snap.Merchants),
		PaymentStats:    stats,
		Estimates:       settlement.Estimate(stats, s.feeRate),
		PayTypes:        ComputePayTypeBreakdown(snap.Payments),
		Recent:          RecentPayments(snap.Payments, s.recentLimit),
		MerchantPreview: preview,
		Activities:      ComputeMerchantActivities(snap.Payments),
		Merchants:       model.NewMerchantIndex(snap.Merchants),
		Codes:           tables,
	}, nil
}

// Payments filters the payment collection and computes stats over the filtered subset.
// A zero criteria.Now is taken from the service clock.
func (s *DashboardService) Payments(ctx context.Context, criteria PaymentCriteria) (*PaymentsView, error) {
	snap, tables, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if criteria.Now.IsZero() {
		criteria.Now = snap.FetchedAt
	}

	filtered := FilterPayments(snap.Payments, criteria)
	return &PaymentsView{
		SnapshotID:   snap.ID,
		GeneratedAt:  snap.FetchedAt,
		Criteria:     criteria,
		TotalCount:   len(snap.Payments),
		Payments:     filtered,
		PaymentStats: ComputePaymentStats(filtered),
		PayTypes:     ComputePayTypeBreakdown(filtered),
		Merchants:    model.NewMerchantIndex(snap.Merchants),
		Codes:        tables,
	}, nil
}

// Merchants filters the merchant collection. Status tab counts and MerchantStats cover
// the whole collection; activities come from all payments.
func (s *DashboardService) Merchants(ctx context.Context, criteria MerchantCriteria) (*MerchantsView, error) {
	snap, tables, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &MerchantsView{
		SnapshotID:    snap.ID,
		GeneratedAt:   snap.FetchedAt,
		Criteria:      criteria,
		MerchantStats: ComputeMerchantStats(snap.Merchants),
		StatusCounts:  CountMerchantsByStatus(snap.Merchants, tables.MerchantStatus),
		Merchants:     FilterMerchants(snap.Merchants, criteria),
		Activities:    ComputeMerchantActivities(snap.Payments),
		Codes:         tables,
	}, nil
}

// MerchantDetail fetches one merchant's detail record next to the payment collection
// and summarizes that merchant's payments.
func (s *DashboardService) MerchantDetail(ctx context.Context, mchtCode string) (*MerchantDetailView, error) {
	var (
		g        errgroup.Group
		detail   model.MerchantDetail
		payments []model.Payment
		tables   model.CodeTables
	)
	g.Go(func() (err error) {
		detail, err = s.gw.GetMerchantDetail(ctx, mchtCode)
		if err != nil {
			return fmt.Errorf("merchant %s: %w", mchtCode, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		payments, err = s.gw.ListPayments(ctx)
		return
	})
	g.Go(func() error {
		tables = s.CodeTables(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	own := make([]model.Payment, 0)
	for _, p := range payments {
		if p.MchtCode == detail.MchtCode {
			own = append(own, p)
		}
	}
	return &MerchantDetailView{
		GeneratedAt: s.clock.Now(),
		Detail:      detail,
		Activity:    ActivityFor(ComputeMerchantActivities(own), detail.MchtCode),
		Recent:      RecentPayments(own, s.recentLimit),
		Codes:       tables,
	}, nil
}
