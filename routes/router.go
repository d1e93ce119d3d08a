package routes

import (
	"grocery-recipe/config"
	"grocery-recipe/controllers"
	"grocery-recipe/middlewares"
	"grocery-recipe/repositories"
	"grocery-recipe/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies 全リクエストで共有するオブジェクト
type Dependencies struct {
	Store           *repositories.Store
	TokenRepository repositories.ITokenRepository
	Hasher          *services.Hasher
	Generator       services.RecipeGenerator
	Config          *config.Config
}

func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	itemService := services.NewItemService(deps.Store.Items)
	itemController := controllers.NewItemController(itemService)

	authService := services.NewAuthService(deps.Store.Users, deps.TokenRepository, deps.Hasher, cfg.SecretKey, cfg.TokenTTL)
	authController := controllers.NewAuthController(authService)

	recipeService := services.NewRecipeService(
		deps.Store.Items,
		deps.Generator,
		services.RetryPolicy{Attempts: cfg.AIMaxRetries, Delay: cfg.AIRetryDelay},
		cfg.RecipeCacheTTL,
	)
	recipeController := controllers.NewRecipeController(recipeService)

	generalController := controllers.NewGeneralController(deps.Store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.Metrics())
	r.Use(cors.Default())

	r.GET("/", generalController.Home)
	r.GET("/health", generalController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiRouter := r.Group("/api")
	apiRouterWithAuth := r.Group("/api", middlewares.AuthMiddleware(authService))

	apiRouter.GET("/sample", generalController.Sample)

	apiRouter.POST("/UserReg", authController.Register)
	apiRouter.POST("/UserLogin", authController.Login)
	apiRouterWithAuth.GET("/UserProfile", authController.Profile)
	apiRouterWithAuth.POST("/UserLogout", authController.Logout)

	apiRouter.POST("/addItems", itemController.Create)
	apiRouter.POST("/getMyItems", itemController.FindByEmail)
	apiRouter.PUT("/updateItem/:id", itemController.Update)
	apiRouter.DELETE("/deleteItem/:id", itemController.Delete)

	apiRouter.POST("/getRecipe", recipeController.GetRecipe)

	return r
}
