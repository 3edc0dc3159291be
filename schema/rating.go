package schema

import (
	"time"
)

const (
	RatingCollection = "ratings"
)

const (
	RatingMin = 1
	RatingMax = 5
)

const (
	RaterRoleRequester = "requester"
	RaterRoleHelper    = "helper"
)

// Rating - a directional 1-5 score one party leaves for the other. A
// completed engagement carries up to two of these, one per direction.
// `helperId` and `requesterId` are kept alongside the rater/rated pair
// for compatibility with documents written under the earlier shape.
type Rating struct {
	ID          string    `bson:"_id" json:"id"`
	RequestID   string    `bson:"requestId" json:"requestId"`
	HelperID    string    `bson:"helperId" json:"helperId"`
	RequesterID string    `bson:"requesterId" json:"requesterId"`
	RaterID     string    `bson:"raterId" json:"raterId"`
	RatedID     string    `bson:"ratedId" json:"ratedId"`
	RaterRole   string    `bson:"raterRole" json:"raterRole"`
	RatedRole   string    `bson:"ratedRole" json:"ratedRole"`
	Rating      int       `bson:"rating" json:"rating"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidScore reports whether score sits in the closed [1,5] range.
func IsValidScore(score int) bool {
	return score >= RatingMin && score <= RatingMax
}
