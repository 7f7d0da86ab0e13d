package app

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"calzone/internal/clients"
	"calzone/internal/config"
	"calzone/internal/handlers"
	"calzone/internal/middleware"
	"calzone/internal/pdf"
	"calzone/internal/routes"
	"calzone/internal/services"
	"calzone/internal/utils"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "calzone/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === Upstream clients ===
	token := clients.StaticToken(cfg.Upstream.ServiceToken)
	ordersClient := clients.NewOrdersClient(cfg.Upstream.OrdersBaseURL, token, cfg.Upstream.Timeout())
	dealsClient := clients.NewDealsClient(cfg.Upstream.DealsBaseURL, token, cfg.Upstream.Timeout())

	// === Services ===
	pipelineService := services.NewPipelineService(ordersClient, dealsClient, cfg.Upstream.Timeout())
	pipelineService.Notifier = services.NewNotifier(
		cfg.Notify.Email.SMTPHost,
		cfg.Notify.Email.SMTPPort,
		cfg.Notify.Email.SMTPUser,
		cfg.Notify.Email.SMTPPassword,
		cfg.Notify.Email.FromEmail,
		cfg.Notify.Email.Recipients,
	).WithTelegram(cfg.Notify.Telegram.BotToken, cfg.Notify.Telegram.ChatID)

	reportGen := pdf.NewReportGenerator()

	// === Handlers ===
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	reportHandler := handlers.NewReportHandler(pipelineService, reportGen)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewareCORS())
	router.Use(middleware.RequestLogger())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		pipelineHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Logger.Info().Str("addr", listenAddr).Msg("pipeline hub listening")
	if err := router.Run(listenAddr); err != nil {
		utils.Logger.Fatal().Err(err).Msg("server failed")
	}
}

func middlewareCORS() gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowAllOrigins = true
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cors.New(conf)
}
