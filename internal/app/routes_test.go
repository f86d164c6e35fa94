package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-mpesa-service/internal/handlers"
	"github.com/jeffleon2/draftea-mpesa-service/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockPaymentService(t)
	a := &App{Router: gin.New()}
	a.RegisterRoutes(handlers.NewPaymentHandler(svc))

	svc.EXPECT().Latest(mock.Anything, "BK-1").Return(nil, models.ErrAttemptNotFound).Once()

	tests := []struct {
		method   string
		path     string
		expected int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/payments/BK-1", http.StatusNotFound},
		{http.MethodPut, "/payments/BK-1", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.expected, w.Code, "%s %s", tt.method, tt.path)
	}
}
