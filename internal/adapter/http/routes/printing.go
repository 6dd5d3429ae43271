package routes

import (
	"github.com/gin-gonic/gin"

	"eprinter/internal/adapter/http/handlers"
)

const (
	PathDocuments = "/documents"
	PathEstimates = "/estimates"
	PathJobs      = "/jobs"
	PathPayments  = "/payments"
	PathSettings  = "/settings"
)

func addPrintingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	documentHandler *handlers.DocumentHandler,
	jobHandler *handlers.PrintJobHandler,
	paymentHandler *handlers.PaymentHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.Upload)
		documents.GET("/:id", documentHandler.GetByID)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.Submit)
		jobs.GET("", jobHandler.ListByStatus)
		jobs.GET("/:id", jobHandler.GetByID)
		jobs.PATCH("/:id/cancel", jobHandler.Cancel)
		jobs.PATCH("/:id/advance", jobHandler.Advance)
		jobs.POST("/:id/collect", jobHandler.Collect)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:job_id", paymentHandler.CreateOrder)
		payments.POST("/:job_id/confirm", paymentHandler.Confirm)
		payments.GET("/:job_id", paymentHandler.ListByJobID)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Put)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
