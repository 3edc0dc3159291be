package api

import (
	"github.com/spf13/viper"

	"github.com/um6p-sci/solidarity-api/schema"
)

// Capabilities is the per-account permission set computed once per
// request. Handlers branch on capabilities rather than on raw emails
// or role strings.
type Capabilities struct {
	CanPostRequests bool
	CanOffer        bool
	CanManageUsers  bool
}

func capabilitiesFor(user schema.User) Capabilities {
	return Capabilities{
		CanPostRequests: user.Status == schema.UserActive,
		CanOffer:        user.Status == schema.UserActive,
		CanManageUsers:  isAdminUser(user),
	}
}

// isAdminUser recognizes administrators either by the stored role or
// by the configured allow-list. The allow-list covers bootstrap
// accounts created before the role existed.
func isAdminUser(user schema.User) bool {
	if user.Role == schema.RoleAdmin {
		return true
	}
	for _, email := range viper.GetStringSlice("admin.emails") {
		if email == user.Email {
			return true
		}
	}
	return false
}
