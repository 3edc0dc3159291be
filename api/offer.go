package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createOffer(c *gin.Context) {
	logger := log.WithField("api", "createOffer")
	account := currentAccount(c)

	if !currentCapabilities(c).CanOffer {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var params struct {
		RequestID string `json:"requestId" validate:"required"`
		Message   string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if err := validate.Struct(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	offer, err := s.store.CreateOffer(*account, params.RequestID, params.Message)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	request, err := s.store.GetRequest(offer.RequestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if err := s.notifier.NotifyOfferReceived(*offer, *request); err != nil {
		logger.WithError(err).Error("enqueue offer notification")
	}

	c.JSON(http.StatusOK, gin.H{"result": offer})
}

// acceptOffer assigns the request to the offering helper and opens the
// chat between the two parties.
func (s *Server) acceptOffer(c *gin.Context) {
	logger := log.WithField("api", "acceptOffer")
	account := currentAccount(c)

	offer, chat, err := s.store.AcceptOffer(account.ID, c.Param("offerID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	request, err := s.store.GetRequest(offer.RequestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if err := s.notifier.NotifyOfferAccepted(*offer, *request, account.Email); err != nil {
		logger.WithError(err).Error("enqueue acceptance notification")
	}

	c.JSON(http.StatusOK, gin.H{
		"offer": offer,
		"chat":  chat,
	})
}

func (s *Server) declineOffer(c *gin.Context) {
	logger := log.WithField("api", "declineOffer")
	account := currentAccount(c)

	offer, err := s.store.DeclineOffer(account.ID, c.Param("offerID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if err := s.notifier.NotifyOfferDeclined(*offer); err != nil {
		logger.WithError(err).Error("enqueue decline notification")
	}

	c.JSON(http.StatusOK, gin.H{"result": offer})
}
