package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/metrics"
)

// depreciationService implements the DepreciationSvcFacade interface
type depreciationService struct {
	BaseService
	depreciationRepo portsrepo.DepreciationRepositoryFacade
	txRunner         portsrepo.TxRunner
	metrics          *metrics.Metrics
	now              func() time.Time
}

// DepreciationServiceOption is a functional option for configuring the depreciation service
type DepreciationServiceOption func(*depreciationService)

// WithDepreciationMetrics records batch outcomes on m.
func WithDepreciationMetrics(m *metrics.Metrics) DepreciationServiceOption {
	return func(s *depreciationService) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for calculation timestamps.
func WithClock(now func() time.Time) DepreciationServiceOption {
	return func(s *depreciationService) {
		s.now = now
	}
}

// NewDepreciationService creates a new depreciation service with the provided options
func NewDepreciationService(repo portsrepo.DepreciationRepositoryFacade, txRunner portsrepo.TxRunner, options ...DepreciationServiceOption) portssvc.DepreciationSvcFacade {
	svc := &depreciationService{
		depreciationRepo: repo,
		txRunner:         txRunner,
		now:              time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.DepreciationSvcFacade = (*depreciationService)(nil)

func (s *depreciationService) GenerateForPeriod(ctx context.Context, year, month int) (*domain.GenerationResult, error) {
	period := domain.Period{Year: year, Month: month}
	if err := period.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected depreciation period", slog.Int("year", year), slog.Int("month", month))
		return nil, apperrors.NewValidationError(err.Error())
	}

	logger := s.GetLogger(ctx).With(slog.String("period", period.String()))
	start := time.Now()

	var result domain.GenerationResult
	err := s.txRunner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		result = domain.GenerationResult{}

		eligible, err := uow.Assets().ListEligibleAssetsForUpdate(ctx)
		if err != nil {
			return asAppError(err, "failed to list eligible assets")
		}
		result.TotalEligible = len(eligible)

		covered, err := uow.Depreciations().FindAssetIDsForPeriod(ctx, period)
		if err != nil {
			return asAppError(err, "failed to load existing records for period")
		}
		result.Skipped = len(covered)

		now := s.now().UTC()
		records := make([]domain.DepreciationRecord, 0, len(eligible))
		updated := make([]domain.Asset, 0, len(eligible))
		for _, asset := range eligible {
			if _, done := covered[asset.ID]; done {
				continue
			}
			if asset.UsefulLifeMonths <= 0 {
				return apperrors.NewPersistenceError(
					fmt.Sprintf("asset %d has a non-positive useful life", asset.ID), nil)
			}

			record, next := domain.ComputeDepreciation(asset, period, now)
			records = append(records, record)
			updated = append(updated, next)
		}

		if len(records) == 0 {
			return nil
		}

		if err := uow.Depreciations().SaveRecords(ctx, records); err != nil {
			return asAppError(err, "failed to save depreciation records")
		}
		if err := uow.Assets().UpdateDepreciationState(ctx, updated); err != nil {
			return asAppError(err, "failed to update asset depreciation state")
		}

		result.Processed = len(records)
		return nil
	})

	elapsed := time.Since(start)
	if err != nil {
		err = asAppError(err, "depreciation transaction failed")
		outcome := metrics.RunFailed
		if apperrors.KindOf(err) == apperrors.KindDuplicatePeriod {
			outcome = metrics.RunDuplicate
			logger.Warn("Depreciation already generated for period", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Depreciation run failed", slog.String("period", period.String()))
		}
		s.metrics.RecordDepreciationRun(outcome, year, month, 0, 0, elapsed)
		return nil, err
	}

	s.metrics.RecordDepreciationRun(metrics.RunSucceeded, year, month, result.Processed, result.Skipped, elapsed)
	logger.Info("Depreciation generated",
		slog.Int("processed", result.Processed),
		slog.Int("skipped", result.Skipped),
		slog.Int("total_eligible", result.TotalEligible),
		slog.Duration("elapsed", elapsed))

	return &result, nil
}

func (s *depreciationService) GetHistory(ctx context.Context, assetID int64) ([]domain.DepreciationRecord, error) {
	if assetID <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid asset id %d", assetID))
	}

	records, err := s.depreciationRepo.ListRecordsByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list depreciation history", slog.Int64("asset_id", assetID))
		return nil, asAppError(err, "failed to list depreciation history")
	}
	if records == nil {
		records = []domain.DepreciationRecord{}
	}
	return records, nil
}

// GetVerification reports all twelve months of year. A year with no records,
// including one outside the range accepted for generation, yields twelve
// unprocessed months.
func (s *depreciationService) GetVerification(ctx context.Context, year int) ([]domain.MonthVerification, error) {
	counts, err := s.depreciationRepo.CountAssetsByMonth(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to count depreciated assets by month", slog.Int("year", year))
		return nil, asAppError(err, "failed to load verification")
	}

	months := make([]domain.MonthVerification, 12)
	for i := range months {
		month := i + 1
		count := counts[month]
		months[i] = domain.MonthVerification{
			Month:      month,
			Processed:  count > 0,
			AssetCount: count,
		}
	}
	return months, nil
}

// GetSummary aggregates every period, or only those of *year when year is
// non-nil and non-zero.
func (s *depreciationService) GetSummary(ctx context.Context, year *int) ([]domain.PeriodSummary, error) {
	if year != nil && *year == 0 {
		year = nil
	}

	summary, err := s.depreciationRepo.SummarizeByPeriod(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize depreciation")
		return nil, asAppError(err, "failed to load summary")
	}
	if summary == nil {
		summary = []domain.PeriodSummary{}
	}
	return summary, nil
}
