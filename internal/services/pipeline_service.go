package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"calzone/internal/models"
)

// OrderSource is the order-management backend as seen by the aggregator.
type OrderSource interface {
	FetchAll(ctx context.Context) ([]models.OrderRecord, error)
	Assign(ctx context.Context, orderID int, assigneeEmail string) error
}

// DealSource is the deal-management backend.
type DealSource interface {
	FetchAll(ctx context.Context) ([]models.ManualDealRecord, error)
	Create(ctx context.Context, input models.DealInput) (models.ManualDealRecord, error)
	Update(ctx context.Context, dealID int, patch map[string]any) (models.ManualDealRecord, error)
}

// DealNotifier gets told about newly created deals (best-effort fan-out).
type DealNotifier interface {
	DealCreated(deal models.UnifiedDeal)
}

var ErrNotFound = errors.New("deal not found in current snapshot")

// Filter narrows the returned pipeline view. Empty fields mean "all".
type Filter struct {
	Stage string
	Owner string
}

// PipelineService owns the single in-memory pipeline snapshot. The snapshot
// is rebuilt wholesale on every refresh; an optimistic insert or owner patch
// edits it in place without touching the network fetch pair.
type PipelineService struct {
	Orders   OrderSource
	Deals    DealSource
	Notifier DealNotifier

	fetchTimeout time.Duration

	mu        sync.RWMutex
	snapshot  []models.UnifiedDeal
	fetchedAt time.Time
	loaded    bool
}

func NewPipelineService(orders OrderSource, deals DealSource, fetchTimeout time.Duration) *PipelineService {
	if fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	return &PipelineService{
		Orders:       orders,
		Deals:        deals,
		fetchTimeout: fetchTimeout,
	}
}

// Aggregate issues both source fetches concurrently and joins them. Either
// failure fails the whole pass (no partial merge) and cancels the sibling
// fetch via the group context.
func (s *PipelineService) Aggregate(ctx context.Context) ([]models.UnifiedDeal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	var (
		orders []models.OrderRecord
		deals  []models.ManualDealRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.Orders.FetchAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		deals, err = s.Deals.FetchAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate pipeline: %w", err)
	}
	return MergeSources(orders, deals), nil
}

// Refresh rebuilds the snapshot. On failure the previous snapshot stays
// untouched; the caller decides what to surface.
func (s *PipelineService) Refresh(ctx context.Context) error {
	merged, err := s.Aggregate(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshot = merged
	s.fetchedAt = time.Now()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether at least one refresh has completed.
func (s *PipelineService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// FetchedAt returns when the snapshot was last rebuilt.
func (s *PipelineService) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Snapshot returns a filtered copy of the current view.
func (s *PipelineService) Snapshot(filter Filter) []models.UnifiedDeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UnifiedDeal, 0, len(s.snapshot))
	for _, d := range s.snapshot {
		if filter.Stage != "" && d.Stage != filter.Stage {
			continue
		}
		if filter.Owner != "" && d.Owner != filter.Owner {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Metrics computes the KPI block over the unfiltered snapshot. The read
// lock is held for the whole computation: AssignOwner patches snapshot
// entries in place, so handing the backing array out unlocked would race.
func (s *PipelineService) Metrics() models.Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeMetrics(s.snapshot)
}

// CreateDeal validates the input, stores it upstream and prepends the
// server-confirmed record (not the raw input) to the snapshot, so the view
// never diverges from what the backend persisted.
func (s *PipelineService) CreateDeal(ctx context.Context, input models.DealInput) (models.UnifiedDeal, error) {
	if err := input.Validate(); err != nil {
		return models.UnifiedDeal{}, err
	}
	created, err := s.Deals.Create(ctx, input)
	if err != nil {
		return models.UnifiedDeal{}, err
	}

	s.mu.Lock()
	s.snapshot = AddLocalDeal(s.snapshot, created)
	unified := s.snapshot[0]
	s.mu.Unlock()

	if s.Notifier != nil {
		go s.Notifier.DealCreated(unified)
	}
	return unified, nil
}

// AssignOwner routes an assignment to the record's source backend, then
// patches the in-memory owner in place (no re-aggregation). The record must
// exist in the current snapshot: nothing is written upstream for ids the
// view has never seen.
func (s *PipelineService) AssignOwner(ctx context.Context, unifiedID, assigneeEmail string) (models.UnifiedDeal, error) {
	dealType, rawID, err := models.ParseUnifiedID(unifiedID)
	if err != nil {
		return models.UnifiedDeal{}, err
	}
	if !s.inSnapshot(unifiedID) {
		return models.UnifiedDeal{}, ErrNotFound
	}

	switch dealType {
	case models.TypeOrder:
		err = s.Orders.Assign(ctx, rawID, assigneeEmail)
	case models.TypeDeal:
		_, err = s.Deals.Update(ctx, rawID, map[string]any{"owner": assigneeEmail})
	}
	if err != nil {
		return models.UnifiedDeal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == unifiedID {
			s.snapshot[i].Owner = assigneeEmail
			return s.snapshot[i], nil
		}
	}
	return models.UnifiedDeal{}, ErrNotFound
}

func (s *PipelineService) inSnapshot(unifiedID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.snapshot {
		if d.ID == unifiedID {
			return true
		}
	}
	return false
}
