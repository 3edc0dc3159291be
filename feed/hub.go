package feed

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

// Datastore is the slice of the store the hub needs.
type Datastore interface {
	ListRequestsByOwner(ownerID string) ([]schema.Request, error)
	ListOffersByRequestOwner(ownerID string) ([]schema.Offer, error)
	ListOpenRequests(excludeOwnerID string) ([]schema.Request, error)
	ListRecentNotifications(recipientID string) ([]schema.Notification, int, error)
	WatchCollections(ctx context.Context, collections ...string) (<-chan store.ChangeEvent, error)
}

// Hub turns the store's change streams into per-subscriber snapshot
// pushes, mirroring how the original frontend consumed live listener
// snapshots. Each relevant change triggers a full re-query and push;
// there is no incremental diffing.
type Hub struct {
	store Datastore
}

func NewHub(datastore Datastore) *Hub {
	return &Hub{
		store: datastore,
	}
}

// OwnRequestsSnapshot is pushed to an owner watching their requests.
type OwnRequestsSnapshot struct {
	View     string              `json:"view"`
	Requests []RequestWithOffers `json:"requests"`
}

// OpenRequestsSnapshot is pushed to a helper browsing the board.
type OpenRequestsSnapshot struct {
	View     string           `json:"view"`
	Requests []schema.Request `json:"requests"`
}

// NotificationsSnapshot carries the bounded recent list plus the
// unread count.
type NotificationsSnapshot struct {
	View          string                `json:"view"`
	Notifications []schema.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// ServeOwnRequests pushes the own-requests projection on subscribe and
// again after every change touching the owner's requests or offers.
func (h *Hub) ServeOwnRequests(ctx context.Context, ownerID string, send func(interface{}) error) error {
	push := func() error {
		requests, err := h.store.ListRequestsByOwner(ownerID)
		if err != nil {
			return err
		}
		offers, err := h.store.ListOffersByRequestOwner(ownerID)
		if err != nil {
			return err
		}
		return send(OwnRequestsSnapshot{
			View:     "own_requests",
			Requests: OwnRequestsView(requests, offers, time.Now().UTC()),
		})
	}

	relevant := func(event store.ChangeEvent) bool {
		if event.FullDocument == nil {
			// deletes carry no document; refresh to be safe
			return true
		}
		switch event.Collection {
		case schema.RequestCollection:
			return event.FullDocument["userId"] == ownerID
		case schema.OfferCollection:
			return event.FullDocument["requestOwnerId"] == ownerID
		}
		return false
	}

	return h.serve(ctx, []string{schema.RequestCollection, schema.OfferCollection}, relevant, push)
}

// ServeOpenRequests pushes the open board, excluding the viewer's own
// requests.
func (h *Hub) ServeOpenRequests(ctx context.Context, viewerID string, send func(interface{}) error) error {
	push := func() error {
		requests, err := h.store.ListOpenRequests(viewerID)
		if err != nil {
			return err
		}
		return send(OpenRequestsSnapshot{
			View:     "open_requests",
			Requests: OpenRequestsView(requests, viewerID, time.Now().UTC()),
		})
	}

	relevant := func(event store.ChangeEvent) bool {
		return true
	}

	return h.serve(ctx, []string{schema.RequestCollection}, relevant, push)
}

// ServeNotifications pushes the recipient's bounded notification list
// and unread count.
func (h *Hub) ServeNotifications(ctx context.Context, recipientID string, send func(interface{}) error) error {
	push := func() error {
		notifications, unread, err := h.store.ListRecentNotifications(recipientID)
		if err != nil {
			return err
		}
		return send(NotificationsSnapshot{
			View:          "notifications",
			Notifications: notifications,
			UnreadCount:   unread,
		})
	}

	relevant := func(event store.ChangeEvent) bool {
		if event.FullDocument == nil {
			return true
		}
		return event.FullDocument["recipientId"] == recipientID
	}

	return h.serve(ctx, []string{schema.NotificationCollection}, relevant, push)
}

func (h *Hub) serve(ctx context.Context, collections []string, relevant func(store.ChangeEvent) bool, push func() error) error {
	events, err := h.store.WatchCollections(ctx, collections...)
	if err != nil {
		return err
	}

	if err := push(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if err := push(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.WithField("prefix", "feed").WithError(err).Error("fail to push snapshot")
				return err
			}
		}
	}
}
