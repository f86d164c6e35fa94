package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-mpesa-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	payments := a.Router.Group("/payments")
	payments.POST("", h.CreatePayment)
	payments.GET("/:booking_id", h.GetPayment)
	payments.GET("/:booking_id/attempts", h.ListAttempts)
	payments.DELETE("/:booking_id", h.CancelPayment)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
