package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/um6p-sci/solidarity-api/schema"
)

var (
	ErrEmailTaken         = fmt.Errorf("this email has already been registered")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrWrongVerification  = fmt.Errorf("wrong or expired verification code")
	ErrCannotSuspendAdmin = fmt.Errorf("an admin account cannot be suspended")
	ErrUnknownUserStatus  = fmt.Errorf("unknown user status")
)

// UserStore persists registered identities and their profile fields.
type UserStore interface {
	CreateUser(user schema.User) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	UpdateUserProfile(id string, profile map[string]interface{}) error
	VerifyUserEmail(email, code string) error
	SetUserStatus(id, status string) error
	ListUsers() ([]schema.User, error)
}

// CreateUser inserts a new user document. The unique index on email
// turns a duplicate signup into ErrEmailTaken.
func (m *mongoDB) CreateUser(user schema.User) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Status == "" {
		user.Status = schema.UserActive
	}
	user.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	if _, err := c.InsertOne(ctx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUser(id string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUserProfile mutates self-service profile fields only. Role,
// status and identity fields are never touched through this path.
func (m *mongoDB) UpdateUserProfile(id string, profile map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	allowed := map[string]bool{
		"fullName":         true,
		"gender":           true,
		"campus":           true,
		"napsCardNumber":   true,
		"department":       true,
		"educationalLevel": true,
	}

	update := bson.M{}
	for k, v := range profile {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

// VerifyUserEmail flips emailVerified when the submitted code matches.
func (m *mongoDB) VerifyUserEmail(email, code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"email": email, "verificationCode": code},
		bson.M{
			"$set":   bson.M{"emailVerified": true},
			"$unset": bson.M{"verificationCode": ""},
		})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrWrongVerification
	}

	return nil
}

// SetUserStatus toggles active/suspended. Admin accounts are refused
// here as a hard rule, independent of the caller-side capability check.
func (m *mongoDB) SetUserStatus(id, status string) error {
	if status != schema.UserActive && status != schema.UserSuspended {
		return ErrUnknownUserStatus
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "role": bson.M{"$ne": schema.RoleAdmin}},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		user, err := m.GetUser(id)
		if err != nil {
			return err
		}
		if user.Role == schema.RoleAdmin {
			return ErrCannotSuspendAdmin
		}
		return ErrUserNotFound
	}

	return nil
}

func (m *mongoDB) ListUsers() ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]schema.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}
