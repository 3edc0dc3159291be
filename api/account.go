package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) accountDetail(c *gin.Context) {
	account := currentAccount(c)

	c.JSON(http.StatusOK, gin.H{
		"result":       account,
		"capabilities": currentCapabilities(c),
	})
}

func (s *Server) accountUpdateProfile(c *gin.Context) {
	account := currentAccount(c)

	var params struct {
		FullName         string `json:"fullName"`
		Gender           string `json:"gender"`
		Campus           string `json:"campus"`
		NapsCardNumber   string `json:"napsCardNumber"`
		Department       string `json:"department"`
		EducationalLevel string `json:"educationalLevel"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	profile := map[string]interface{}{}
	if params.FullName != "" {
		profile["fullName"] = params.FullName
	}
	if params.Gender != "" {
		profile["gender"] = params.Gender
	}
	if params.Campus != "" {
		profile["campus"] = params.Campus
	}
	if params.NapsCardNumber != "" {
		profile["napsCardNumber"] = params.NapsCardNumber
	}
	if params.Department != "" {
		profile["department"] = params.Department
	}
	if params.EducationalLevel != "" {
		profile["educationalLevel"] = params.EducationalLevel
	}

	if err := s.store.UpdateUserProfile(account.ID, profile); err != nil {
		abortWithStoreError(c, err)
		return
	}

	user, err := s.store.GetUser(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": user})
}
