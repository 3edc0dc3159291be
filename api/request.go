package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/um6p-sci/solidarity-api/feed"
	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

type requestParams struct {
	Category       string `json:"category" validate:"required"`
	SpecificDetail string `json:"specificDetail" validate:"required"`
	Details        string `json:"details"`
	IsUrgent       bool   `json:"isUrgent"`
	IsAnonymous    bool   `json:"isAnonymous"`
}

func (s *Server) createRequest(c *gin.Context) {
	account := currentAccount(c)

	if !currentCapabilities(c).CanPostRequests {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var params requestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if err := validate.Struct(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	urgency := schema.UrgencyNormal
	if params.IsUrgent {
		urgency = schema.UrgencyUrgent
	}

	request, err := s.store.CreateRequest(schema.Request{
		UserID:         account.ID,
		UserEmail:      account.Email,
		UserName:       account.FullName,
		Category:       params.Category,
		SpecificDetail: params.SpecificDetail,
		Details:        params.Details,
		Urgency:        urgency,
		IsAnonymous:    params.IsAnonymous,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listOpenRequests is the browse feed: every open request except the
// viewer's own, newest first.
func (s *Server) listOpenRequests(c *gin.Context) {
	account := currentAccount(c)

	requests, err := s.store.ListOpenRequests(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": feed.OpenRequestsView(requests, account.ID, time.Now()),
	})
}

// listOwnRequests returns the owner's requests joined with their
// non-declined offers, the same projection the live feed pushes.
func (s *Server) listOwnRequests(c *gin.Context) {
	account := currentAccount(c)

	requests, err := s.store.ListRequestsByOwner(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	offers, err := s.store.ListOffersByRequestOwner(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": feed.OwnRequestsView(requests, offers, time.Now()),
	})
}

func (s *Server) getRequest(c *gin.Context) {
	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

func (s *Server) updateRequest(c *gin.Context) {
	account := currentAccount(c)

	var params requestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if err := validate.Struct(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	urgency := schema.UrgencyNormal
	if params.IsUrgent {
		urgency = schema.UrgencyUrgent
	}

	err := s.store.UpdateRequest(account.ID, c.Param("requestID"), store.RequestEdit{
		Category:       params.Category,
		SpecificDetail: params.SpecificDetail,
		Details:        params.Details,
		Urgency:        urgency,
		IsAnonymous:    params.IsAnonymous,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deleteRequest(c *gin.Context) {
	account := currentAccount(c)

	if err := s.store.DeleteRequest(account.ID, c.Param("requestID")); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listRequestOffers shows the offers on one request to its owner.
func (s *Server) listRequestOffers(c *gin.Context) {
	account := currentAccount(c)

	request, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	if request.UserID != account.ID {
		abortWithStoreError(c, store.ErrNotRequestOwner)
		return
	}

	offers, err := s.store.ListOffersByRequest(request.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// completeRequest closes an assigned request and records the owner's
// rating of the helper in the same call.
func (s *Server) completeRequest(c *gin.Context) {
	logger := log.WithField("api", "completeRequest")
	account := currentAccount(c)

	var params struct {
		Rating int `json:"rating"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	requestID := c.Param("requestID")
	rating, err := s.store.CompleteRequest(account.ID, requestID, params.Rating)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	// Delivery of the rating nudge is advisory. The completion has
	// already committed.
	if err := s.notifier.NotifyRatingReceived(rating.RatedID, requestID); err != nil {
		logger.WithError(err).Error("enqueue rating notification")
	}

	c.JSON(http.StatusOK, gin.H{"result": rating})
}
