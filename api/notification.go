package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listNotifications(c *gin.Context) {
	account := currentAccount(c)

	notifications, unread, err := s.store.ListRecentNotifications(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	account := currentAccount(c)

	if err := s.store.MarkNotificationRead(account.ID, c.Param("notificationID")); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// ratingPrompt pops the next unseen rating nudge. Each nudge is handed
// out once; a second call moves on to the next one or returns nothing.
func (s *Server) ratingPrompt(c *gin.Context) {
	account := currentAccount(c)

	notification, err := s.store.NextRatingPrompt(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": notification})
}
