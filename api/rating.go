package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rateRequester is the helper-side rating: after completion, the
// assigned helper scores the requester.
func (s *Server) rateRequester(c *gin.Context) {
	logger := log.WithField("api", "rateRequester")
	account := currentAccount(c)

	var params struct {
		RequestID string `json:"requestId" validate:"required"`
		Rating    int    `json:"rating"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if err := validate.Struct(params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rating, err := s.store.RateRequester(account.ID, params.RequestID, params.Rating)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if err := s.notifier.NotifyRatingReceived(rating.RatedID, rating.RequestID); err != nil {
		logger.WithError(err).Error("enqueue rating notification")
	}

	c.JSON(http.StatusOK, gin.H{"result": rating})
}
