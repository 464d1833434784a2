// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	ShopHandler    *handler.ShopHandler
	ChatHandler    *handler.ChatHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	shopHandler    *handler.ShopHandler
	chatHandler    *handler.ChatHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		shopHandler:    params.ShopHandler,
		chatHandler:    params.ChatHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.authMiddleware.Authenticate

	// Account routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile, authenticate)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile, authenticate)
		userGroup.POST("/verify", r.userHandler.Verify, authenticate)
	}

	// Catalog routes. Static paths are registered alongside /:id; echo
	// matches them first.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/categories", r.catalogHandler.ListCategories)
		productGroup.GET("/brands", r.catalogHandler.ListBrands)
		productGroup.GET("/brands/featured", r.catalogHandler.ListFeaturedBrands)
		productGroup.GET("/featured", r.catalogHandler.ListFeaturedProducts)
		productGroup.GET("/daily-essentials", r.catalogHandler.ListDailyEssentials)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.POST("", r.catalogHandler.CreateProduct, authenticate)
		productGroup.PUT("/:id", r.catalogHandler.UpdateProduct, authenticate)
		productGroup.PATCH("/:id", r.catalogHandler.UpdateProduct, authenticate)
		productGroup.DELETE("/:id", r.catalogHandler.DeleteProduct, authenticate)
		productGroup.GET("/:id/reviews", r.catalogHandler.ListReviews)
		productGroup.POST("/:id/reviews", r.catalogHandler.CreateReview, authenticate)
	}

	// Shop routes
	shopGroup := api.Group("/shops")
	{
		shopGroup.GET("", r.shopHandler.ListShops)
		shopGroup.GET("/:id", r.shopHandler.GetShop)
		shopGroup.POST("", r.shopHandler.CreateShop, authenticate)
		shopGroup.PUT("/:id", r.shopHandler.UpdateShop, authenticate)
		shopGroup.PATCH("/:id", r.shopHandler.UpdateShop, authenticate)
		shopGroup.DELETE("/:id", r.shopHandler.DeleteShop, authenticate)
		shopGroup.GET("/:id/reviews", r.shopHandler.ListShopReviews)
		shopGroup.POST("/:id/reviews", r.shopHandler.CreateShopReview, authenticate)
	}

	// Media routes
	api.POST("/media/images", r.mediaHandler.UploadImage, authenticate)

	// Chat routes; everything here requires authentication.
	chatGroup := api.Group("/chat", authenticate)
	{
		chatGroup.GET("/rooms", r.chatHandler.ListRooms)
		chatGroup.POST("/rooms", r.chatHandler.CreateRoom)
		chatGroup.GET("/rooms/:id", r.chatHandler.GetRoom)
		chatGroup.GET("/rooms/:id/messages", r.chatHandler.ListMessages)
		chatGroup.POST("/rooms/:id/messages", r.chatHandler.SendMessage)
	}
}
