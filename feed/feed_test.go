package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/um6p-sci/solidarity-api/schema"
)

var feedNow = time.Date(2021, 3, 14, 10, 0, 0, 0, time.UTC)

func request(id, owner, status string, age time.Duration) schema.Request {
	return schema.Request{
		ID:        id,
		UserID:    owner,
		Category:  schema.CategoryAcademic,
		Status:    status,
		CreatedAt: feedNow.Add(-age),
		UpdatedAt: feedNow.Add(-age),
	}
}

func offer(id, requestID, status string) schema.Offer {
	return schema.Offer{
		ID:        id,
		RequestID: requestID,
		Status:    status,
		CreatedAt: feedNow.Add(-time.Minute),
	}
}

func TestOwnRequestsView(t *testing.T) {
	requests := []schema.Request{
		request("r1", "owner", schema.RequestOpen, 2*time.Hour),
		request("r2", "owner", schema.RequestAssigned, time.Hour),
	}
	offers := []schema.Offer{
		offer("o1", "r1", schema.OfferPending),
		offer("o2", "r1", schema.OfferDeclined),
		offer("o3", "r2", schema.OfferAccepted),
	}

	merged := OwnRequestsView(requests, offers, feedNow)

	assert.Len(t, merged, 2)

	// newest first
	assert.Equal(t, "r2", merged[0].ID)
	assert.Equal(t, "r1", merged[1].ID)

	// declined offers are hidden, the rest survive
	assert.Len(t, merged[0].Offers, 1)
	assert.Equal(t, "o3", merged[0].Offers[0].ID)
	assert.Len(t, merged[1].Offers, 1)
	assert.Equal(t, "o1", merged[1].Offers[0].ID)
}

func TestOwnRequestsViewWithoutOffers(t *testing.T) {
	merged := OwnRequestsView([]schema.Request{
		request("r1", "owner", schema.RequestOpen, time.Hour),
	}, nil, feedNow)

	assert.Len(t, merged, 1)
	// an offerless request carries an empty list, not null
	assert.NotNil(t, merged[0].Offers)
	assert.Len(t, merged[0].Offers, 0)
}

func TestOwnRequestsViewSubstitutesPendingTimestamps(t *testing.T) {
	pending := schema.Request{ID: "r1", UserID: "owner", Status: schema.RequestOpen}

	merged := OwnRequestsView([]schema.Request{pending}, []schema.Offer{
		{ID: "o1", RequestID: "r1", Status: schema.OfferPending},
	}, feedNow)

	assert.Equal(t, feedNow, merged[0].CreatedAt)
	assert.Equal(t, feedNow, merged[0].Offers[0].CreatedAt)
}

func TestOpenRequestsView(t *testing.T) {
	requests := []schema.Request{
		request("r1", "owner", schema.RequestOpen, 3*time.Hour),
		request("r2", "viewer", schema.RequestOpen, 2*time.Hour),
		request("r3", "owner", schema.RequestAssigned, time.Hour),
		request("r4", "owner", schema.RequestOpen, time.Minute),
	}

	open := OpenRequestsView(requests, "viewer", feedNow)

	// the viewer's own request and the assigned one are filtered out
	assert.Len(t, open, 2)
	assert.Equal(t, "r4", open[0].ID)
	assert.Equal(t, "r1", open[1].ID)
}
