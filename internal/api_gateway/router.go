package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cubos-banking-ledger/internal/api_gateway/handler"
	"github.com/cubos-banking-ledger/internal/api_gateway/middleware"
	"github.com/cubos-banking-ledger/internal/platform/metrics"
)

// setupRouter configures API routes and middleware for the application.
// m may be nil when metrics are disabled.
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	m *metrics.Metrics,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
) {
	handler.RegisterJSONFieldNames()

	r.Use(middleware.CorrelationID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Account operations
	accounts := r.Group("/accounts")
	{
		accounts.GET("", accountHandler.List)
		accounts.POST("", accountHandler.Create)
		accounts.GET("/balance", accountHandler.Balance)
		accounts.GET("/statement", accountHandler.Statement)
		accounts.PUT("/:number/owner", accountHandler.UpdateOwner)
		accounts.DELETE("/:number", accountHandler.Delete)
	}

	// Transaction operations
	transactions := r.Group("/transactions")
	{
		transactions.POST("/deposit", transactionHandler.Deposit)
		transactions.POST("/withdraw", transactionHandler.Withdraw)
		transactions.POST("/transfer", transactionHandler.Transfer)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
}
