package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listChats(c *gin.Context) {
	account := currentAccount(c)

	chats, err := s.store.ListChatsByParticipant(account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func (s *Server) listChatMessages(c *gin.Context) {
	account := currentAccount(c)

	messages, err := s.store.ListMessages(c.Param("chatID"), account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (s *Server) sendChatMessage(c *gin.Context) {
	account := currentAccount(c)

	var params struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.store.SendMessage(c.Param("chatID"), account.ID, params.Text)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": message})
}

func (s *Server) markChatRead(c *gin.Context) {
	account := currentAccount(c)

	if err := s.store.MarkChatRead(c.Param("chatID"), account.ID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) leaveChat(c *gin.Context) {
	account := currentAccount(c)

	if err := s.store.LeaveChat(c.Param("chatID"), account.ID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) reviveChat(c *gin.Context) {
	account := currentAccount(c)

	chat, err := s.store.ReviveChat(c.Param("chatID"), account.ID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": chat})
}
