package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/metrics"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC)

func newAsset(id int64, inventory string, lifeMonths int) domain.Asset {
	value := money.MustParse(inventory)
	return domain.Asset{
		ID:                      id,
		InventoryValue:          value,
		AccumulatedDepreciation: money.Zero(),
		RemainingValue:          value,
		UsefulLifeMonths:        lifeMonths,
		RemainingLifeMonths:     lifeMonths,
		State:                   domain.AssetActive,
		Depreciable:             true,
		Version:                 1,
	}
}

// MockDepreciationRepository is a mock type for the DepreciationRepositoryFacade interface
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) ListRecordsByAsset(ctx context.Context, assetID int64) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) CountAssetsByMonth(ctx context.Context, year int) (map[int]int, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockDepreciationRepository) SummarizeByPeriod(ctx context.Context, year *int) ([]domain.PeriodSummary, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodSummary), args.Error(1)
}

// MockTxRunner is a mock type for the TxRunner interface
type MockTxRunner struct {
	mock.Mock
}

func (m *MockTxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// --- Engine suite, backed by the in-memory store ---

type DepreciationEngineTestSuite struct {
	suite.Suite
	store   *memStore
	metrics *metrics.Metrics
	service portssvc.DepreciationSvcFacade
	ctx     context.Context
}

func (suite *DepreciationEngineTestSuite) seed(assets ...domain.Asset) {
	suite.store = newMemStore(assets...)
	suite.metrics = metrics.New(metrics.DefaultConfig())
	suite.service = services.NewDepreciationService(
		suite.store,
		suite.store,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithDepreciationMetrics(suite.metrics),
	)
}

func (suite *DepreciationEngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.seed()
}

func (suite *DepreciationEngineTestSuite) generate(year, month int) *domain.GenerationResult {
	result, err := suite.service.GenerateForPeriod(suite.ctx, year, month)
	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	return result
}

func (suite *DepreciationEngineTestSuite) TestEndToEnd_FirstMonthAndRetry() {
	suite.seed(newAsset(1, "120000.00", 60))

	result := suite.generate(2025, 1)
	suite.Equal(domain.GenerationResult{Processed: 1, Skipped: 0, TotalEligible: 1}, *result)

	history, err := suite.service.GetHistory(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	rec := history[0]
	suite.Equal("2000.00", rec.MonthlyCharge.StorageString())
	suite.Equal("2000.00", rec.AccumulatedAfter.StorageString())
	suite.Equal("118000.00", rec.RemainingAfter.StorageString())
	suite.Equal("120000.00", rec.InventoryValue.StorageString())
	suite.Equal(59, rec.RemainingLifeAfter)
	suite.True(rec.Calculated)
	suite.Require().NotNil(rec.CalculatedAt)
	suite.Equal(fixedNow, *rec.CalculatedAt)

	asset := suite.store.asset(1)
	suite.Equal("2000.00", asset.AccumulatedDepreciation.StorageString())
	suite.Equal("118000.00", asset.RemainingValue.StorageString())
	suite.Equal(59, asset.RemainingLifeMonths)
	suite.Equal(int64(2), asset.Version)

	retry := suite.generate(2025, 1)
	suite.Equal(domain.GenerationResult{Processed: 0, Skipped: 1, TotalEligible: 1}, *retry)
	suite.Equal(1, suite.store.recordCount())
	suite.Equal("118000.00", suite.store.asset(1).RemainingValue.StorageString())

	months, err := suite.service.GetVerification(suite.ctx, 2025)
	suite.Require().NoError(err)
	suite.Require().Len(months, 12)
	for _, m := range months {
		if m.Month == 1 {
			suite.True(m.Processed)
			suite.Equal(1, m.AssetCount)
			continue
		}
		suite.False(m.Processed, "month %d", m.Month)
		suite.Zero(m.AssetCount)
	}

	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.DepreciationRunsTotal.WithLabelValues(metrics.RunSucceeded)))
}

func (suite *DepreciationEngineTestSuite) TestFinalMonthClamp() {
	asset := newAsset(7, "1200.00", 12)
	asset.AccumulatedDepreciation = money.MustParse("1150.00")
	asset.RemainingValue = money.MustParse("50.00")
	asset.RemainingLifeMonths = 1
	suite.seed(asset)

	result := suite.generate(2025, 6)
	suite.Equal(1, result.Processed)

	history, err := suite.service.GetHistory(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal("50.00", history[0].MonthlyCharge.StorageString())
	suite.Equal("1200.00", history[0].AccumulatedAfter.StorageString())
	suite.Equal("0.00", history[0].RemainingAfter.StorageString())
	suite.Equal(0, history[0].RemainingLifeAfter)

	next := suite.generate(2025, 7)
	suite.Equal(domain.GenerationResult{}, *next)
}

func (suite *DepreciationEngineTestSuite) TestEligibilityFilter() {
	scrapped := newAsset(2, "500.00", 10)
	scrapped.State = domain.AssetScrapped
	notDepreciable := newAsset(3, "500.00", 10)
	notDepreciable.Depreciable = false
	exhausted := newAsset(4, "500.00", 10)
	exhausted.AccumulatedDepreciation = exhausted.InventoryValue
	exhausted.RemainingValue = money.Zero()
	transferred := newAsset(5, "500.00", 10)
	transferred.State = domain.AssetTransferred

	suite.seed(newAsset(1, "500.00", 10), scrapped, notDepreciable, exhausted, transferred)

	result := suite.generate(2025, 3)
	suite.Equal(domain.GenerationResult{Processed: 1, Skipped: 0, TotalEligible: 1}, *result)

	for _, id := range []int64{2, 3, 4, 5} {
		history, err := suite.service.GetHistory(suite.ctx, id)
		suite.Require().NoError(err)
		suite.Empty(history, "asset %d", id)
	}
	suite.Equal("450.00", suite.store.asset(1).RemainingValue.StorageString())
}

func (suite *DepreciationEngineTestSuite) TestInvariantsHoldAcrossPeriods() {
	suite.seed(newAsset(1, "1000.00", 3), newAsset(2, "100.00", 8))

	wantCharges := []string{"333.33", "333.33", "333.33", "0.01"}
	for month := 1; month <= 4; month++ {
		suite.generate(2025, month)

		for _, id := range []int64{1, 2} {
			a := suite.store.asset(id)
			suite.True(a.BalanceHolds(), "asset %d after month %d", id, month)
			suite.GreaterOrEqual(a.RemainingLifeMonths, 0)
		}
	}

	history, err := suite.service.GetHistory(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(history, 4)
	for i, rec := range history {
		// history is newest first
		suite.Equal(wantCharges[len(wantCharges)-1-i], rec.MonthlyCharge.StorageString())
	}
	suite.True(suite.store.asset(1).IsFullyDepreciated())
	suite.Equal(0, suite.store.asset(1).RemainingLifeMonths)

	suite.Equal("50.00", suite.store.asset(2).AccumulatedDepreciation.StorageString())
}

func (suite *DepreciationEngineTestSuite) TestSkippedCountsAssetsAlreadyCovered() {
	suite.seed(newAsset(1, "1200.00", 12))
	suite.generate(2025, 1)

	// A second asset enters the register after January was processed.
	suite.store.assets[2] = newAsset(2, "2400.00", 12)

	result := suite.generate(2025, 1)
	suite.Equal(domain.GenerationResult{Processed: 1, Skipped: 1, TotalEligible: 2}, *result)
	suite.Equal("200.00", suite.store.asset(2).AccumulatedDepreciation.StorageString())
}

func (suite *DepreciationEngineTestSuite) TestDuplicatePeriodRollsBackBatch() {
	suite.seed(newAsset(1, "1200.00", 12), newAsset(2, "2400.00", 12))
	suite.store.failOnSave = apperrors.NewDuplicatePeriodError(2025, 1, errors.New("unique violation"))

	result, err := suite.service.GenerateForPeriod(suite.ctx, 2025, 1)

	suite.Nil(result)
	suite.Equal(apperrors.KindDuplicatePeriod, apperrors.KindOf(err))
	suite.ErrorIs(err, apperrors.ErrDuplicatePeriod)
	suite.Zero(suite.store.recordCount())
	suite.Equal("1200.00", suite.store.asset(1).RemainingValue.StorageString())
	suite.Equal("2400.00", suite.store.asset(2).RemainingValue.StorageString())
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.DepreciationRunsTotal.WithLabelValues(metrics.RunDuplicate)))
}

func (suite *DepreciationEngineTestSuite) TestStorageFailureIsPersistenceAndRollsBack() {
	suite.seed(newAsset(1, "1200.00", 12))
	suite.store.failOnUpdate = errors.New("connection reset by peer")

	result, err := suite.service.GenerateForPeriod(suite.ctx, 2025, 1)

	suite.Nil(result)
	suite.Equal(apperrors.KindPersistence, apperrors.KindOf(err))
	suite.Zero(suite.store.recordCount())
	suite.Equal(int64(1), suite.store.asset(1).Version)
}

func (suite *DepreciationEngineTestSuite) TestConflictIsPassedThrough() {
	suite.seed(newAsset(1, "1200.00", 12))
	suite.store.failOnUpdate = apperrors.NewConflictError("asset was modified concurrently", nil)

	_, err := suite.service.GenerateForPeriod(suite.ctx, 2025, 1)

	suite.Equal(apperrors.KindConflict, apperrors.KindOf(err))
	suite.Zero(suite.store.recordCount())
}

func (suite *DepreciationEngineTestSuite) TestNonPositiveUsefulLifeAbortsRun() {
	broken := newAsset(1, "1200.00", 12)
	broken.UsefulLifeMonths = 0
	suite.seed(broken)

	_, err := suite.service.GenerateForPeriod(suite.ctx, 2025, 1)

	suite.Equal(apperrors.KindPersistence, apperrors.KindOf(err))
	suite.Zero(suite.store.recordCount())
}

func (suite *DepreciationEngineTestSuite) TestSummaryNewestFirst() {
	suite.seed(newAsset(1, "1200.00", 12), newAsset(2, "600.00", 12))
	suite.generate(2024, 12)
	suite.generate(2025, 1)
	suite.generate(2025, 2)

	all, err := suite.service.GetSummary(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(domain.Period{Year: 2025, Month: 2}, domain.Period{Year: all[0].Year, Month: all[0].Month})
	suite.Equal(domain.Period{Year: 2024, Month: 12}, domain.Period{Year: all[2].Year, Month: all[2].Month})
	suite.Equal("150.00", all[0].TotalCharge.StorageString())
	suite.Equal(2, all[0].AssetCount)

	year := 2024
	only2024, err := suite.service.GetSummary(suite.ctx, &year)
	suite.Require().NoError(err)
	suite.Len(only2024, 1)
}

func TestDepreciationEngineTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationEngineTestSuite))
}

// --- Validation and read paths, with mocks ---

func TestGenerateForPeriod_ValidationBeforeStorage(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"year too early", 2019, 1},
		{"year too late", 2101, 1},
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txRunner := new(MockTxRunner)
			repo := new(MockDepreciationRepository)
			svc := services.NewDepreciationService(repo, txRunner)

			result, err := svc.GenerateForPeriod(context.Background(), tt.year, tt.month)

			assert.Nil(t, result)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			txRunner.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateForPeriod_BeginFailureIsPersistence(t *testing.T) {
	txRunner := new(MockTxRunner)
	txRunner.On("WithinTx", mock.Anything, mock.Anything).Return(errors.New("pool closed"))
	svc := services.NewDepreciationService(new(MockDepreciationRepository), txRunner)

	_, err := svc.GenerateForPeriod(context.Background(), 2025, 1)

	assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
	txRunner.AssertExpectations(t)
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		repo := new(MockDepreciationRepository)
		svc := services.NewDepreciationService(repo, new(MockTxRunner))

		_, err := svc.GetHistory(ctx, 0)

		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		repo.AssertNotCalled(t, "ListRecordsByAsset", mock.Anything, mock.Anything)
	})

	t.Run("no records yields empty slice", func(t *testing.T) {
		repo := new(MockDepreciationRepository)
		repo.On("ListRecordsByAsset", ctx, int64(9)).Return(nil, nil)
		svc := services.NewDepreciationService(repo, new(MockTxRunner))

		records, err := svc.GetHistory(ctx, 9)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("driver error becomes persistence", func(t *testing.T) {
		repo := new(MockDepreciationRepository)
		repo.On("ListRecordsByAsset", ctx, int64(9)).Return(nil, errors.New("timeout"))
		svc := services.NewDepreciationService(repo, new(MockTxRunner))

		_, err := svc.GetHistory(ctx, 9)

		assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
		repo.AssertExpectations(t)
	})
}

func TestGetVerification_AlwaysTwelveMonths(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDepreciationRepository)
	repo.On("CountAssetsByMonth", ctx, 2024).Return(map[int]int{3: 4, 11: 1}, nil)
	svc := services.NewDepreciationService(repo, new(MockTxRunner))

	months, err := svc.GetVerification(ctx, 2024)

	require.NoError(t, err)
	require.Len(t, months, 12)
	for i, m := range months {
		assert.Equal(t, i+1, m.Month)
	}
	assert.Equal(t, domain.MonthVerification{Month: 3, Processed: true, AssetCount: 4}, months[2])
	assert.Equal(t, domain.MonthVerification{Month: 11, Processed: true, AssetCount: 1}, months[10])
	assert.False(t, months[0].Processed)

	repo.AssertExpectations(t)
}

func TestGetVerification_YearOutsideGenerationRangeIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDepreciationRepository)
	repo.On("CountAssetsByMonth", ctx, 1999).Return(map[int]int{}, nil)
	svc := services.NewDepreciationService(repo, new(MockTxRunner))

	months, err := svc.GetVerification(ctx, 1999)

	require.NoError(t, err)
	require.Len(t, months, 12)
	for i, m := range months {
		assert.Equal(t, domain.MonthVerification{Month: i + 1}, m)
	}
	repo.AssertExpectations(t)
}

func TestGetSummary_PassesYearFilter(t *testing.T) {
	ctx := context.Background()
	year := 2025
	repo := new(MockDepreciationRepository)
	repo.On("SummarizeByPeriod", ctx, (*int)(nil)).Return([]domain.PeriodSummary{}, nil).Once()
	repo.On("SummarizeByPeriod", ctx, &year).Return(nil, errors.New("boom")).Once()
	svc := services.NewDepreciationService(repo, new(MockTxRunner))

	all, err := svc.GetSummary(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.GetSummary(ctx, &year)
	assert.Equal(t, apperrors.KindPersistence, apperrors.KindOf(err))
	repo.AssertExpectations(t)
}

func TestGetSummary_ZeroYearMeansNoFilter(t *testing.T) {
	ctx := context.Background()
	zero, early := 0, 1999
	rows := []domain.PeriodSummary{{Year: 2025, Month: 1, TotalCharge: money.MustParse("10.00"), AssetCount: 1}}
	repo := new(MockDepreciationRepository)
	repo.On("SummarizeByPeriod", ctx, (*int)(nil)).Return(rows, nil).Once()
	repo.On("SummarizeByPeriod", ctx, &early).Return(nil, nil).Once()
	svc := services.NewDepreciationService(repo, new(MockTxRunner))

	all, err := svc.GetSummary(ctx, &zero)
	require.NoError(t, err)
	assert.Equal(t, rows, all)

	none, err := svc.GetSummary(ctx, &early)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	repo.AssertExpectations(t)
}
