package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/recoffee/backend/docs"
	"github.com/recoffee/backend/internal/interfaces/http/middleware"
	"github.com/recoffee/backend/internal/interfaces/http/router"
)

// Routes holds the handlers mounted by Register
type Routes struct {
	Health *HealthHandler
	User   *UserHandler
	Auth   *AuthHandler
	Coffee *CoffeeHandler
}

// Register mounts /health and /ready on the engine root and everything
// else under /api. The Swagger UI is served at /api/swagger/index.html
// with /api/docs redirecting to it.
func (rt *Routes) Register(engine *gin.Engine, swagger middleware.SwaggerConfig, logger *zap.Logger) {
	engine.GET("/health", rt.Health.Health)
	engine.GET("/ready", rt.Health.Ready)

	identityRoutes := router.NewDomainGroup("identity", "")
	identityRoutes.GET("/login/kakao/oauth", rt.Auth.KakaoCallback)
	identityRoutes.GET("/users", rt.User.List)
	identityRoutes.GET("/users/:user_id", rt.User.Get)

	collectionRoutes := router.NewDomainGroup("collection", "/coffee/:cafe_id")
	collectionRoutes.GET("/rule", rt.Coffee.ListRules)
	collectionRoutes.POST("/rule", rt.Coffee.CreateRules)
	collectionRoutes.GET("/transaction", rt.Coffee.ListTransactions)
	collectionRoutes.POST("/transaction", rt.Coffee.CreateTransaction)
	collectionRoutes.DELETE("/transaction", rt.Coffee.CancelTransaction)
	collectionRoutes.GET("/carbon", rt.Coffee.Carbon)

	docsRoutes := router.NewDomainGroup("docs", "").Use(middleware.SwaggerProtection(swagger))
	docsRoutes.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	docsRoutes.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, router.DefaultBasePath+"/swagger/index.html")
	})

	router.NewRouter(engine, router.WithLogger(logger)).
		Register(identityRoutes).
		Register(collectionRoutes).
		Register(docsRoutes).
		Setup()
}
