package routes

import (
	"net/http"
	"time"

	"marketplace_trust/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const DefaultPort = 8080

// Handlers groups everything the router mounts under /v1.
type Handlers struct {
	Escrow  *handlers.EscrowHandler
	Dispute *handlers.DisputeHandler
	Risk    *handlers.RiskHandler
}

// NewRouter builds the gin engine. gatherer backs /metrics; pass nil to
// skip the endpoint.
func NewRouter(h Handlers, log *zap.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(handlers.RequireActor())
	addEscrowRoutes(authed, h.Escrow)
	addDisputeRoutes(authed, h.Dispute)
	addRiskRoutes(authed, h.Risk)

	return router
}

// NewServer wraps the router with the timeouts used in every environment.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestID())
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
