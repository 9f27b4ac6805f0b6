package state

import (
	"errors"
	"testing"
	"time"

	"pokedex/viewer/internal/domain"

	"gotest.tools/v3/assert"
)

func samplePage() *domain.ListingPage {
	return &domain.ListingPage{
		TotalCount:  2,
		NextPageRef: "https://x/pokemon?offset=2&limit=2",
		Entries: []domain.EntrySummary{
			{Name: "bulbasaur", DetailRef: "https://x/pokemon/1/"},
			{Name: "ivysaur", DetailRef: "https://x/pokemon/2/"},
		},
	}
}

func sampleDetail() *domain.EntryDetail {
	return &domain.EntryDetail{ID: 1, Name: "bulbasaur", Height: 7, Weight: 69, Categories: []string{"grass", "poison"}}
}

func TestStore_ZeroValueIsEmptyAndLoading(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	assert.Check(t, snap.Listing == nil)
	assert.Check(t, snap.Detail == nil)
	assert.Check(t, snap.Error == nil)
	assert.Check(t, snap.Loading())
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	var s Store

	s.SetListing(samplePage())
	s.SetDetail(sampleDetail())
	s.SetError(errors.New("GET https://x/pokemon/9999 returned status 404"))

	snap := s.Snapshot()
	assert.DeepEqual(t, snap.Listing, samplePage())
	assert.DeepEqual(t, snap.Detail, sampleDetail())
	assert.DeepEqual(t, snap.Error, &domain.OperationError{Message: "GET https://x/pokemon/9999 returned status 404"})
	assert.Check(t, !snap.Loading())

	// An error does not clear the data slots.
	s.SetError(errors.New("second failure"))
	snap = s.Snapshot()
	assert.Check(t, snap.Listing != nil)
	assert.Check(t, snap.Detail != nil)
	assert.Equal(t, snap.Error.Message, "second failure")

	// Successes do not clear the error slot.
	s.SetListing(&domain.ListingPage{TotalCount: 0})
	s.SetDetail(&domain.EntryDetail{ID: 2, Name: "ivysaur"})
	snap = s.Snapshot()
	assert.Equal(t, snap.Error.Message, "second failure")
	assert.Equal(t, snap.Listing.TotalCount, 0)
	assert.Equal(t, snap.Detail.Name, "ivysaur")

	s.ClearDetail()
	snap = s.Snapshot()
	assert.Check(t, snap.Detail == nil)
	assert.Check(t, snap.Listing != nil)
	assert.Equal(t, snap.Error.Message, "second failure")
}

func TestStore_ErrorOnlyIsNotLoading(t *testing.T) {
	var s Store
	s.SetError(errors.New("offline"))
	assert.Check(t, !s.Snapshot().Loading())
}

func TestStore_SetErrorNilIsIgnored(t *testing.T) {
	var s Store
	s.SetError(nil)
	assert.Check(t, s.Snapshot().Error == nil)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	var s Store
	page := samplePage()
	s.SetListing(page)

	// Mutating the caller's page after the write does not leak in.
	page.Entries[0].Name = "mutated"
	snap := s.Snapshot()
	assert.Equal(t, snap.Listing.Entries[0].Name, "bulbasaur")

	// Mutating a snapshot does not leak back.
	snap.Listing.Entries[1].Name = "mutated"
	s.SetDetail(sampleDetail())
	snap2 := s.Snapshot()
	snap2.Detail.Categories[0] = "fire"
	snap3 := s.Snapshot()
	assert.Equal(t, snap3.Listing.Entries[1].Name, "ivysaur")
	assert.Equal(t, snap3.Detail.Categories[0], "grass")
}

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func TestStore_SubscribeReceivesChanges(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	defer cancel()

	s.SetListing(samplePage())
	snap := receive(t, ch)
	assert.Equal(t, snap.Listing.TotalCount, 2)

	s.SetDetail(sampleDetail())
	snap = receive(t, ch)
	assert.Equal(t, snap.Detail.Name, "bulbasaur")

	s.ClearDetail()
	snap = receive(t, ch)
	assert.Check(t, snap.Detail == nil)
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	defer cancel()

	s.SetError(errors.New("first"))
	s.SetError(errors.New("second"))
	s.SetError(errors.New("third"))

	snap := receive(t, ch)
	assert.Equal(t, snap.Error.Message, "third")

	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra snapshot: %#v", extra)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	_, ok := <-ch
	assert.Check(t, !ok)

	// Writes after cancel must not panic on the closed channel.
	s.SetListing(samplePage())
}

func TestStore_ClearDetailWhenEmptyDoesNotPublish(t *testing.T) {
	var s Store
	ch, cancel := s.Subscribe()
	defer cancel()

	s.ClearDetail()
	select {
	case snap := <-ch:
		t.Fatalf("unexpected snapshot: %#v", snap)
	default:
	}
}
