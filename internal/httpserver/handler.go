package httpserver

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "pulse-srv/docs"

	alertHTTP "pulse-srv/internal/alert/delivery/http"
	alertRepo "pulse-srv/internal/alert/repository/postgre"
	alertUC "pulse-srv/internal/alert/usecase"
	forecastHTTP "pulse-srv/internal/forecast/delivery/http"
	forecastUC "pulse-srv/internal/forecast/usecase"
	"pulse-srv/internal/middleware"
	signalRepo "pulse-srv/internal/signal/repository/postgre"
	wsHTTP "pulse-srv/internal/websocket/delivery/http"
	wsRedis "pulse-srv/internal/websocket/delivery/redis"
	wsUC "pulse-srv/internal/websocket/usecase"
	"pulse-srv/pkg/metrics"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(
		middleware.Recovery(srv.l, srv.discord),
		middleware.Metrics(),
		middleware.CORS(srv.corsConfig()),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtMgr)

	// Repositories
	signalRepository := signalRepo.New(srv.l, srv.postgresDB)
	alertRepository := alertRepo.New(srv.l, srv.postgresDB)

	// Usecases
	alertUsecase := alertUC.New(srv.l, alertRepository, srv.redis, srv.discord)
	forecastUsecase := forecastUC.New(srv.l, srv.engine, signalRepository, alertUsecase, srv.redis, srv.storage, srv.forecastCfg)
	srv.wsUC = wsUC.New(srv.l, srv.wsConfig)
	srv.wsSubscriber = wsRedis.New(srv.redis, srv.wsUC, srv.l)

	// Handlers
	api := srv.gin.Group(Api)
	forecastHTTP.New(srv.l, forecastUsecase, srv.discord).RegisterRoutes(api, mw)
	alertHTTP.New(srv.l, alertUsecase, srv.discord).RegisterRoutes(api, mw)
	wsHTTP.New(srv.wsUC, srv.jwtMgr, srv.l, srv.wsConfig).RegisterRoutes(api, mw)
}

func (srv *HTTPServer) corsConfig() middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig()
	if len(srv.allowedOrigins) > 0 {
		cfg.AllowedOrigins = srv.allowedOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}
