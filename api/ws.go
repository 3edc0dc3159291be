package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	viewOwnRequests   = "own_requests"
	viewOpenRequests  = "open_requests"
	viewNotifications = "notifications"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// cross-origin browsers are let through; the JWT middleware has
		// already authenticated the subscriber
		return true
	},
}

// feedSocket upgrades the connection and streams snapshots of the
// requested view until the client goes away.
func (s *Server) serveFeed(c *gin.Context) {
	logger := log.WithField("api", "serveFeed")
	account := currentAccount(c)

	view := c.Query("view")
	switch view {
	case viewOwnRequests, viewOpenRequests, viewNotifications:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Error("websocket upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// the read pump only notices the peer closing; inbound frames are
	// not part of the feed protocol
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(snapshot interface{}) error {
		return conn.WriteJSON(snapshot)
	}

	switch view {
	case viewOwnRequests:
		err = s.hub.ServeOwnRequests(ctx, account.ID, send)
	case viewOpenRequests:
		err = s.hub.ServeOpenRequests(ctx, account.ID, send)
	case viewNotifications:
		err = s.hub.ServeNotifications(ctx, account.ID, send)
	}
	if err != nil && err != context.Canceled {
		logger.WithError(err).WithField("view", view).Error("feed terminated")
	}
}
