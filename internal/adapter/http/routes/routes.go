package routes

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "eprinter/docs" // swagger docs, generated
	"eprinter/internal/adapter/http/handlers"
	"eprinter/internal/adapter/persistence/repository"
	"eprinter/internal/config"
	"eprinter/internal/infrastructure/database"
	"eprinter/internal/infrastructure/documents"
	"eprinter/internal/infrastructure/payments"
	"eprinter/internal/infrastructure/storage"
	"eprinter/internal/metrics"
	"eprinter/internal/queue"
	"eprinter/internal/station"
	"eprinter/internal/usecase"
	"eprinter/internal/usecase/interfaces"
)

var router = gin.New()

// Run wires the full application and starts the HTTP server.
func Run(cfg config.Config) {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(cfg)

	addr := ":" + strconv.Itoa(cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting http server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes(cfg config.Config) {
	ctx := context.Background()

	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create aws config")
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS)
	s3c := database.NewS3Client(awsCfg, cfg.AWS)

	jobRepo := repository.NewPrintJobDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	documentRepo := repository.NewDocumentDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)

	documentStore := storage.NewS3DocumentStore(s3c, cfg.AWS.DocumentsBucket)
	inspector := documents.NewInspector()
	pricing := usecase.NewSettingsPricingSource(settingsRepo, cfg.Pricing.FetchTimeout)

	var gateway interfaces.IPaymentGateway
	rzp, err := payments.NewRazorpayGateway(cfg.Razorpay)
	if err != nil {
		log.Warn().Err(err).Msg("payment gateway not configured")
	} else {
		gateway = rzp
	}

	var printQueue interfaces.IPrintQueue
	redisQueue, err := queue.NewRedisPrintQueue(cfg.Queue)
	if err != nil {
		log.Warn().Err(err).Msg("print queue not available, paid jobs require manual queueing")
	} else {
		printQueue = redisQueue
		worker := station.NewWorker(redisQueue, jobRepo, cfg.Queue.Consumer, cfg.Queue.PollInterval)
		go worker.Run(ctx)
	}

	estimateUC := usecase.NewEstimateUseCase(pricing)
	documentUC := usecase.NewDocumentUseCase(documentRepo, documentStore, inspector, pricing)
	jobUC := usecase.NewPrintJobUseCase(jobRepo, documentRepo, pricing)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, jobRepo, gateway, printQueue)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUC)
	documentHandler := handlers.NewDocumentHandler(documentUC)
	jobHandler := handlers.NewPrintJobHandler(jobUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)
	settingsHandler := handlers.NewSettingsHandler(settingsUC)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPrintingRoutes(v1, estimateHandler, documentHandler, jobHandler, paymentHandler, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Recovery())
	router.Use(requestLogger())
}

// requestLogger emits one structured log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
