// Package feed derives the read-side views of the marketplace: the
// owner's requests joined with their live offers, the open-request
// board and the per-recipient notification list. The merge logic is
// pure; hub.go drives it from the store's change streams.
package feed

import (
	"sort"
	"time"

	"github.com/um6p-sci/solidarity-api/schema"
)

// RequestWithOffers is a request merged with its non-declined offers.
type RequestWithOffers struct {
	schema.Request
	Offers []schema.Offer `json:"offers"`
}

// normalizeTime substitutes a local now for a timestamp the server has
// not assigned yet, so a half-written document never breaks a view.
func normalizeTime(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// OwnRequestsView merges the owner's requests with the offers grouped
// by request id. Declined offers are hidden, requests come back newest
// first and pending timestamps are substituted with now.
func OwnRequestsView(requests []schema.Request, offers []schema.Offer, now time.Time) []RequestWithOffers {
	grouped := make(map[string][]schema.Offer)
	for _, offer := range offers {
		if offer.Status == schema.OfferDeclined {
			continue
		}
		offer.CreatedAt = normalizeTime(offer.CreatedAt, now)
		grouped[offer.RequestID] = append(grouped[offer.RequestID], offer)
	}

	merged := make([]RequestWithOffers, 0, len(requests))
	for _, request := range requests {
		request.CreatedAt = normalizeTime(request.CreatedAt, now)
		request.UpdatedAt = normalizeTime(request.UpdatedAt, now)

		requestOffers := grouped[request.ID]
		if requestOffers == nil {
			requestOffers = []schema.Offer{}
		}

		merged = append(merged, RequestWithOffers{
			Request: request,
			Offers:  requestOffers,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

// OpenRequestsView filters to open requests not owned by the viewer,
// newest first.
func OpenRequestsView(requests []schema.Request, viewerID string, now time.Time) []schema.Request {
	open := make([]schema.Request, 0, len(requests))
	for _, request := range requests {
		if request.Status != schema.RequestOpen || request.UserID == viewerID {
			continue
		}
		request.CreatedAt = normalizeTime(request.CreatedAt, now)
		open = append(open, request)
	}

	sort.SliceStable(open, func(i, j int) bool {
		return open[i].CreatedAt.After(open[j].CreatedAt)
	})

	return open
}
