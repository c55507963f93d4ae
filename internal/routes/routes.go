package routes

import (
	"database/sql"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payment-initiation-backend/internal/clients/currency"
	"payment-initiation-backend/internal/clients/network"
	"payment-initiation-backend/internal/config"
	handler "payment-initiation-backend/internal/handlers"
	"payment-initiation-backend/internal/repository"
	"payment-initiation-backend/internal/services/ledger"
	"payment-initiation-backend/internal/services/payments"
	"payment-initiation-backend/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sqlDB *sql.DB, cfg *config.Config, log *slog.Logger) {
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	txLedger := ledger.New(transactionRepo, log)
	paymentService := payments.NewService(
		reconciliation.NewReconciler(accountRepo, log),
		currency.NewClient(cfg.CurrencyServiceURL, cfg.ExternalTimeout),
		network.NewClient(cfg.PaymentNetworkURL, cfg.ExternalTimeout),
		txLedger,
		log,
	)

	paymentHandler := handler.NewPaymentHandler(paymentService, txLedger, sqlDB)

	r.HandleMethodNotAllowed = true
	r.NoMethod(handler.MethodNotAllowed)

	api := r.Group("/api")

	api.GET("/health", paymentHandler.Health)

	api.POST("/initiatePayment", paymentHandler.InitiatePayment)
	api.POST("/initiateRefund", paymentHandler.InitiateRefund)
	api.POST("/initiateCancellation", paymentHandler.InitiateCancellation)

	api.GET("/transactions/:uuid", paymentHandler.GetTransaction)
}
