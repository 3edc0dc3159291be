package store

import (
	"sort"
	"time"

	"github.com/um6p-sci/solidarity-api/schema"
)

// AdminStore builds the one-shot aggregate dashboard view. It is an
// explicit snapshot, not a live projection; staleness until the next
// fetch is acceptable.
type AdminStore interface {
	DashboardSnapshot() (*DashboardSnapshot, error)
}

// ActivityRow is a request enriched with its accepted helper and the
// requester's rating, the way the dashboard lists engagements.
type ActivityRow struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	RequesterName  string    `json:"requesterName"`
	RequesterEmail string    `json:"requesterEmail"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	HelperName     string    `json:"helperName,omitempty"`
	HelperEmail    string    `json:"helperEmail,omitempty"`
	Rating         int       `json:"rating,omitempty"`
}

// DashboardStats are the global counters shown on the dashboard.
type DashboardStats struct {
	UsersCount     int `json:"usersCount"`
	RequestsCount  int `json:"requestsCount"`
	OffersCount    int `json:"offersCount"`
	CompletedCount int `json:"completedCount"`
}

type DashboardSnapshot struct {
	Stats      DashboardStats `json:"stats"`
	Users      []schema.User  `json:"users"`
	Offers     []schema.Offer `json:"offers"`
	Activities []ActivityRow  `json:"activities"`
}

// DashboardSnapshot joins users, requests, offers and ratings in memory
// and derives the per-request helper and score.
func (m *mongoDB) DashboardSnapshot() (*DashboardSnapshot, error) {
	users, err := m.ListUsers()
	if err != nil {
		return nil, err
	}

	requests, err := m.listAllRequests()
	if err != nil {
		return nil, err
	}

	offers, err := m.listAllOffers()
	if err != nil {
		return nil, err
	}

	ratings, err := m.listAllRatings()
	if err != nil {
		return nil, err
	}

	acceptedByRequest := make(map[string]schema.Offer)
	for _, offer := range offers {
		if offer.Status == schema.OfferAccepted {
			acceptedByRequest[offer.RequestID] = offer
		}
	}

	ratingByRequest := make(map[string]schema.Rating)
	for _, rating := range ratings {
		// the dashboard shows the requester's score of the helper
		if rating.RaterRole == schema.RaterRoleRequester {
			ratingByRequest[rating.RequestID] = rating
		}
	}

	activities := make([]ActivityRow, 0, len(requests))
	completed := 0
	for _, request := range requests {
		row := ActivityRow{
			ID:             request.ID,
			Category:       request.Category,
			Title:          request.SpecificDetail,
			RequesterName:  request.UserName,
			RequesterEmail: request.UserEmail,
			Status:         request.Status,
			CreatedAt:      request.CreatedAt,
		}
		if row.Title == "" {
			row.Title = "Request"
		}
		if offer, ok := acceptedByRequest[request.ID]; ok {
			row.HelperName = offer.HelperName
			row.HelperEmail = offer.HelperEmail
		}
		if rating, ok := ratingByRequest[request.ID]; ok {
			row.Rating = rating.Rating
		}
		if request.Status == schema.RequestCompleted {
			completed++
		}
		activities = append(activities, row)
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	return &DashboardSnapshot{
		Stats: DashboardStats{
			UsersCount:     len(users),
			RequestsCount:  len(requests),
			OffersCount:    len(offers),
			CompletedCount: completed,
		},
		Users:      users,
		Offers:     offers,
		Activities: activities,
	}, nil
}
