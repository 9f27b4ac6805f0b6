package service

import (
	"context"
	"sync"

	"pokedex/viewer/internal/domain"
	"pokedex/viewer/internal/filter"
	"pokedex/viewer/internal/repository"
	"pokedex/viewer/internal/state"

	log "github.com/sirupsen/logrus"
)

// Service runs fetches in the background and writes their outcome to the
// store. Triggers never block on I/O. Fetches of the same kind are not
// sequenced: whichever finishes last owns the slot.
type Service struct {
	repository repository.CatalogRepository
	store      *state.Store
	offset     int
	limit      int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService builds a Service whose fetches live until ctx is done or Close is
// called. offset and limit are the window LoadListing requests.
func NewService(
	ctx context.Context,
	repository repository.CatalogRepository,
	store *state.Store,
	offset int,
	limit int,
) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		repository: repository,
		store:      store,
		offset:     offset,
		limit:      limit,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// LoadListing fetches the default page window into the listing slot.
func (s *Service) LoadListing() {
	s.LoadListingAt(s.offset, s.limit)
}

// LoadListingAt fetches an explicit page window into the listing slot.
func (s *Service) LoadListingAt(offset, limit int) {
	log.Debugf("Loading listing offset=%d limit=%d", offset, limit)
	s.goListing(func(ctx context.Context) (*domain.ListingPage, error) {
		return s.repository.GetPage(ctx, offset, limit)
	})
}

// LoadNextPage follows the current listing's next link. It is a no-op when
// there is no listing or no next page.
func (s *Service) LoadNextPage() {
	current := s.store.Snapshot().Listing
	if !current.HasNext() {
		log.Debug("No next page to load")
		return
	}
	s.loadListingByRef(current.NextPageRef)
}

// LoadPreviousPage follows the current listing's previous link. It is a no-op
// when there is no listing or no previous page.
func (s *Service) LoadPreviousPage() {
	current := s.store.Snapshot().Listing
	if !current.HasPrevious() {
		log.Debug("No previous page to load")
		return
	}
	s.loadListingByRef(current.PreviousPageRef)
}

func (s *Service) loadListingByRef(ref string) {
	log.Debugf("Loading listing page %s", ref)
	s.goListing(func(ctx context.Context) (*domain.ListingPage, error) {
		return s.repository.GetPageByRef(ctx, ref)
	})
}

// LoadDetail fetches the entry behind ref into the detail slot.
func (s *Service) LoadDetail(ref string) {
	log.Debugf("Loading detail %s", ref)
	s.goDetail(func(ctx context.Context) (*domain.EntryDetail, error) {
		return s.repository.GetDetailByRef(ctx, ref)
	})
}

// LoadDetailByQuery looks up an entry by exact name or ID into the detail slot.
func (s *Service) LoadDetailByQuery(query string) {
	log.Debugf("Looking up %q", query)
	s.goDetail(func(ctx context.Context) (*domain.EntryDetail, error) {
		return s.repository.GetDetailByQuery(ctx, query)
	})
}

func (s *Service) CloseDetail() {
	s.store.ClearDetail()
}

// Filter narrows the current listing by query. It never touches the network.
func (s *Service) Filter(query string) []domain.EntrySummary {
	current := s.store.Snapshot().Listing
	if current == nil {
		return nil
	}
	return filter.Filter(current.Entries, query)
}

func (s *Service) Snapshot() state.Snapshot {
	return s.store.Snapshot()
}

func (s *Service) Subscribe() (<-chan state.Snapshot, func()) {
	return s.store.Subscribe()
}

// Wait blocks until every fetch started so far has written its result.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight fetches and waits for them to finish.
func (s *Service) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) goListing(fetch func(ctx context.Context) (*domain.ListingPage, error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		page, err := fetch(s.ctx)
		if err != nil {
			log.Errorf("❌ Failed to load listing: %v", err)
			s.store.SetError(err)
			return
		}

		log.Infof("✅ Loaded %d of %d entries", len(page.Entries), page.TotalCount)
		s.store.SetListing(page)
	}()
}

func (s *Service) goDetail(fetch func(ctx context.Context) (*domain.EntryDetail, error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		detail, err := fetch(s.ctx)
		if err != nil {
			log.Errorf("❌ Failed to load detail: %v", err)
			s.store.SetError(err)
			return
		}

		log.Infof("✅ Loaded #%d %s", detail.ID, detail.Name)
		s.store.SetDetail(detail)
	}()
}
