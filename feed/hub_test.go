package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

// fakeDatastore feeds the hub canned data and a scripted event channel.
type fakeDatastore struct {
	requests      []schema.Request
	offers        []schema.Offer
	notifications []schema.Notification
	unread        int

	events chan store.ChangeEvent
}

func (f *fakeDatastore) ListRequestsByOwner(ownerID string) ([]schema.Request, error) {
	return f.requests, nil
}

func (f *fakeDatastore) ListOffersByRequestOwner(ownerID string) ([]schema.Offer, error) {
	return f.offers, nil
}

func (f *fakeDatastore) ListOpenRequests(excludeOwnerID string) ([]schema.Request, error) {
	return f.requests, nil
}

func (f *fakeDatastore) ListRecentNotifications(recipientID string) ([]schema.Notification, int, error) {
	return f.notifications, f.unread, nil
}

func (f *fakeDatastore) WatchCollections(ctx context.Context, collections ...string) (<-chan store.ChangeEvent, error) {
	return f.events, nil
}

func TestServeOwnRequestsPushesOnSubscribe(t *testing.T) {
	fake := &fakeDatastore{
		requests: []schema.Request{
			{ID: "r1", UserID: "owner", Status: schema.RequestOpen, CreatedAt: feedNow},
		},
		events: make(chan store.ChangeEvent),
	}
	hub := NewHub(fake)

	got := make(chan interface{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- hub.ServeOwnRequests(ctx, "owner", func(snapshot interface{}) error {
			got <- snapshot
			return nil
		})
	}()

	select {
	case snapshot := <-got:
		own, ok := snapshot.(OwnRequestsSnapshot)
		assert.True(t, ok)
		assert.Equal(t, "own_requests", own.View)
		assert.Len(t, own.Requests, 1)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestServeOwnRequestsRefreshesOnRelevantEvent(t *testing.T) {
	fake := &fakeDatastore{
		events: make(chan store.ChangeEvent, 2),
	}
	hub := NewHub(fake)

	got := make(chan interface{}, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- hub.ServeOwnRequests(ctx, "owner", func(snapshot interface{}) error {
			got <- snapshot
			return nil
		})
	}()

	<-got // initial push

	// an event for someone else must not trigger a push
	fake.events <- store.ChangeEvent{
		Collection:   schema.RequestCollection,
		FullDocument: map[string]interface{}{"userId": "someone-else"},
	}
	// an event for the owner must
	fake.events <- store.ChangeEvent{
		Collection:   schema.RequestCollection,
		FullDocument: map[string]interface{}{"userId": "owner"},
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("no refresh after relevant event")
	}

	select {
	case extra := <-got:
		t.Fatalf("unexpected extra push: %#v", extra)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestServeStopsWhenStreamCloses(t *testing.T) {
	fake := &fakeDatastore{
		events: make(chan store.ChangeEvent),
	}
	hub := NewHub(fake)

	got := make(chan interface{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- hub.ServeNotifications(context.Background(), "user", func(snapshot interface{}) error {
			got <- snapshot
			return nil
		})
	}()

	<-got
	close(fake.events)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("serve loop did not stop on closed stream")
	}
}
