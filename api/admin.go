package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

func (s *Server) adminDashboard(c *gin.Context) {
	snapshot, err := s.store.DashboardSnapshot()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// adminSetUserStatus suspends or reinstates an account. Administrator
// accounts cannot be suspended, not even by another administrator.
func (s *Server) adminSetUserStatus(c *gin.Context) {
	var params struct {
		Status string `json:"status" validate:"required,oneof=active suspended"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if err := validate.Struct(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	targetID := c.Param("userID")

	// the allow-list bootstrap admins have the plain role in the
	// document, so the store's role filter alone cannot protect them
	target, err := s.store.GetUser(targetID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	if isAdminUser(*target) && params.Status == schema.UserSuspended {
		abortWithStoreError(c, store.ErrCannotSuspendAdmin)
		return
	}

	if err := s.store.SetUserStatus(targetID, params.Status); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
