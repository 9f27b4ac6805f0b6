// Package state holds the viewer's three independent slots (current listing,
// selected detail, last error) and hands consumers read-only snapshots.
//
// Each setter touches exactly one slot. In particular a successful listing or
// detail write leaves a previously recorded error in place.
package state

import (
	"sync"

	"pokedex/viewer/internal/domain"
)

// Snapshot is a copy of the slots at one point in time. Nil means empty.
type Snapshot struct {
	Listing *domain.ListingPage
	Detail  *domain.EntryDetail
	Error   *domain.OperationError
}

// Loading reports whether a consumer should show a loading indicator.
func (s Snapshot) Loading() bool {
	return s.Listing == nil && s.Error == nil
}

// Store is safe for concurrent use. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	listing  *domain.ListingPage
	detail   *domain.EntryDetail
	lastErr  *domain.OperationError
	nextID   int
	watchers map[int]chan Snapshot
}

func (s *Store) SetListing(page *domain.ListingPage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listing = page.Clone()
	s.publishLocked()
}

func (s *Store) SetDetail(detail *domain.EntryDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detail = detail.Clone()
	s.publishLocked()
}

func (s *Store) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detail == nil {
		return
	}
	s.detail = nil
	s.publishLocked()
}

// SetError records err's message. A nil err is ignored.
func (s *Store) SetError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = domain.NewOperationError(err)
	s.publishLocked()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every change.
// A subscriber that falls behind only sees the latest snapshot. The returned
// cancel func closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchers == nil {
		s.watchers = make(map[int]chan Snapshot)
	}
	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	s.watchers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.watchers, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Listing: s.listing.Clone(),
		Detail:  s.detail.Clone(),
	}
	if s.lastErr != nil {
		errCopy := *s.lastErr
		snap.Error = &errCopy
	}
	return snap
}

func (s *Store) publishLocked() {
	if len(s.watchers) == 0 {
		return
	}

	for _, ch := range s.watchers {
		snap := s.snapshotLocked()
		select {
		case ch <- snap:
			continue
		default:
		}
		// Drop the unread snapshot so the newest one fits.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
