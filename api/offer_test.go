package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/um6p-sci/solidarity-api/api/mocks"
	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

func testRouter(s *Server, requester string, method, path string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", requester)
	})
	router.Use(s.recognizeAccountMiddleware())
	router.Handle(method, path, handler)
	return router
}

func activeUser(id string) *schema.User {
	return &schema.User{
		ID:            id,
		FullName:      "Sara Amrani",
		Email:         id + "@um6p.ma",
		Role:          schema.RoleStudent,
		Status:        schema.UserActive,
		EmailVerified: true,
	}
}

func TestAcceptOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	n := mocks.NewMockNotifier(ctl)

	s := &Server{store: m, notifier: n}

	owner := activeUser("owner-1")
	offer := &schema.Offer{
		ID:             "offer-1",
		RequestID:      "request-1",
		RequestOwnerID: owner.ID,
		HelperID:       "helper-1",
		HelperEmail:    "helper-1@um6p.ma",
		Status:         schema.OfferAccepted,
		CreatedAt:      time.Now(),
	}
	chat := &schema.Chat{
		ID:           "chat-1",
		RequestID:    "request-1",
		Participants: []string{owner.ID, "helper-1"},
	}
	request := &schema.Request{
		ID:       "request-1",
		UserID:   owner.ID,
		Category: schema.CategoryAcademic,
		Status:   schema.RequestAssigned,
	}

	m.EXPECT().GetUser(owner.ID).Return(owner, nil).Times(1)
	m.EXPECT().AcceptOffer(owner.ID, "offer-1").Return(offer, chat, nil).Times(1)
	m.EXPECT().GetRequest("request-1").Return(request, nil).Times(1)
	n.EXPECT().NotifyOfferAccepted(*offer, *request, owner.Email).Return(nil).Times(1)

	router := testRouter(s, owner.ID, "POST", "/offers/:offerID/accept", s.acceptOffer)

	req := httptest.NewRequest("POST", "/offers/offer-1/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Offer schema.Offer `json:"offer"`
		Chat  schema.Chat  `json:"chat"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.OfferAccepted, resp.Offer.Status)
	assert.Equal(t, "chat-1", resp.Chat.ID)
}

func TestAcceptOfferAlreadyAssigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	n := mocks.NewMockNotifier(ctl)

	s := &Server{store: m, notifier: n}

	owner := activeUser("owner-1")

	m.EXPECT().GetUser(owner.ID).Return(owner, nil).Times(1)
	m.EXPECT().AcceptOffer(owner.ID, "offer-2").Return(nil, nil, store.ErrRequestNotOpen).Times(1)

	router := testRouter(s, owner.ID, "POST", "/offers/:offerID/accept", s.acceptOffer)

	req := httptest.NewRequest("POST", "/offers/offer-2/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRequestNotOpen.Code, resp.Code)
}

func TestCreateOfferOnOwnRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	n := mocks.NewMockNotifier(ctl)

	s := &Server{store: m, notifier: n}

	helper := activeUser("helper-1")

	m.EXPECT().GetUser(helper.ID).Return(helper, nil).Times(1)
	m.EXPECT().CreateOffer(*helper, "request-1", "I can help").Return(nil, store.ErrOwnRequest).Times(1)

	router := testRouter(s, helper.ID, "POST", "/offers", s.createOffer)

	body := strings.NewReader(`{"requestId":"request-1","message":"I can help"}`)
	req := httptest.NewRequest("POST", "/offers", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestSuspendedAccountRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := &Server{store: m}

	suspended := activeUser("banned-1")
	suspended.Status = schema.UserSuspended

	m.EXPECT().GetUser(suspended.ID).Return(suspended, nil).Times(1)

	router := testRouter(s, suspended.ID, "POST", "/offers", s.createOffer)

	body := strings.NewReader(`{"requestId":"request-1"}`)
	req := httptest.NewRequest("POST", "/offers", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorAccountSuspended.Code, resp.Code)
}
