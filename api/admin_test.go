package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/um6p-sci/solidarity-api/api/mocks"
	"github.com/um6p-sci/solidarity-api/schema"
	"github.com/um6p-sci/solidarity-api/store"
)

func adminRouter(s *Server, requester string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", requester)
	})
	router.Use(s.recognizeAccountMiddleware())
	router.Use(s.adminOnly())
	router.GET("/admin/dashboard", s.adminDashboard)
	return router
}

func TestAdminDashboardForbiddenForStudents(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{store: m}

	student := activeUser("lina")
	m.EXPECT().GetUser(student.ID).Return(student, nil).Times(1)

	router := adminRouter(s, student.ID)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestAdminDashboardByRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{store: m}

	admin := activeUser("mano")
	admin.Role = schema.RoleAdmin

	m.EXPECT().GetUser(admin.ID).Return(admin, nil).Times(1)
	m.EXPECT().DashboardSnapshot().Return(&store.DashboardSnapshot{}, nil).Times(1)

	router := adminRouter(s, admin.ID)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAdminDashboardByAllowList(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{store: m}

	bootstrap := activeUser("noura")
	viper.Set("admin.emails", []string{bootstrap.Email})
	defer viper.Set("admin.emails", nil)

	m.EXPECT().GetUser(bootstrap.ID).Return(bootstrap, nil).Times(1)
	m.EXPECT().DashboardSnapshot().Return(&store.DashboardSnapshot{}, nil).Times(1)

	router := adminRouter(s, bootstrap.ID)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
