package services_test

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/pkg/money"
)

// memStore is an in-memory ledger with transactional semantics: WithinTx
// works on a copy and only publishes it when fn succeeds.
type memStore struct {
	mu      sync.Mutex
	assets  map[int64]domain.Asset
	records []domain.DepreciationRecord
	nextID  int64

	failOnSave   error
	failOnUpdate error
}

func newMemStore(assets ...domain.Asset) *memStore {
	s := &memStore{assets: make(map[int64]domain.Asset), nextID: 1}
	for _, a := range assets {
		s.assets[a.ID] = a
	}
	return s
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:   s,
		assets:  maps.Clone(s.assets),
		records: slices.Clone(s.records),
		nextID:  s.nextID,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.assets, s.records, s.nextID = tx.assets, tx.records, tx.nextID
	return nil
}

func (s *memStore) asset(id int64) domain.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets[id]
}

func (s *memStore) recordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *memStore) FindAssetByID(_ context.Context, assetID int64) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[assetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("asset not found")
	}
	return &a, nil
}

func (s *memStore) ListRecordsByAsset(_ context.Context, assetID int64) ([]domain.DepreciationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.DepreciationRecord
	for _, r := range s.records {
		if r.AssetID == assetID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[j].Period().Before(out[i].Period()) })
	return out, nil
}

func (s *memStore) CountAssetsByMonth(_ context.Context, year int) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	distinct := make(map[int]map[int64]struct{})
	for _, r := range s.records {
		if r.Year != year {
			continue
		}
		if distinct[r.Month] == nil {
			distinct[r.Month] = make(map[int64]struct{})
		}
		distinct[r.Month][r.AssetID] = struct{}{}
	}
	counts := make(map[int]int, len(distinct))
	for month, ids := range distinct {
		counts[month] = len(ids)
	}
	return counts, nil
}

func (s *memStore) SummarizeByPeriod(_ context.Context, year *int) ([]domain.PeriodSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byPeriod := make(map[domain.Period]*domain.PeriodSummary)
	for _, r := range s.records {
		if year != nil && r.Year != *year {
			continue
		}
		p := r.Period()
		sum, ok := byPeriod[p]
		if !ok {
			sum = &domain.PeriodSummary{Year: p.Year, Month: p.Month, TotalCharge: money.Zero()}
			byPeriod[p] = sum
		}
		sum.TotalCharge = sum.TotalCharge.Add(r.MonthlyCharge)
		sum.AssetCount++
	}
	out := make([]domain.PeriodSummary, 0, len(byPeriod))
	for _, sum := range byPeriod {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		return domain.Period{Year: out[j].Year, Month: out[j].Month}.Before(domain.Period{Year: out[i].Year, Month: out[i].Month})
	})
	return out, nil
}

type memTx struct {
	store   *memStore
	assets  map[int64]domain.Asset
	records []domain.DepreciationRecord
	nextID  int64
}

func (t *memTx) Assets() portsrepo.AssetTxWriter               { return t }
func (t *memTx) Depreciations() portsrepo.DepreciationTxWriter { return t }

func (t *memTx) ListEligibleAssetsForUpdate(_ context.Context) ([]domain.Asset, error) {
	var out []domain.Asset
	for _, a := range t.assets {
		if a.IsEligible() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *memTx) UpdateDepreciationState(_ context.Context, assets []domain.Asset) error {
	if t.store.failOnUpdate != nil {
		return t.store.failOnUpdate
	}
	for _, a := range assets {
		current, ok := t.assets[a.ID]
		if !ok || current.Version != a.Version {
			return apperrors.NewConflictError("asset was modified concurrently", nil)
		}
		a.Version++
		t.assets[a.ID] = a
	}
	return nil
}

func (t *memTx) FindAssetIDsForPeriod(_ context.Context, period domain.Period) (map[int64]struct{}, error) {
	ids := make(map[int64]struct{})
	for _, r := range t.records {
		if r.Period() == period {
			ids[r.AssetID] = struct{}{}
		}
	}
	return ids, nil
}

func (t *memTx) SaveRecords(_ context.Context, records []domain.DepreciationRecord) error {
	if t.store.failOnSave != nil {
		return t.store.failOnSave
	}
	for _, r := range records {
		for _, existing := range t.records {
			if existing.AssetID == r.AssetID && existing.Period() == r.Period() {
				return apperrors.NewDuplicatePeriodError(r.Year, r.Month, nil)
			}
		}
		r.ID = t.nextID
		t.nextID++
		t.records = append(t.records, r)
	}
	return nil
}

var (
	_ portsrepo.TxRunner                     = (*memStore)(nil)
	_ portsrepo.AssetRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.DepreciationRepositoryFacade = (*memStore)(nil)
)
