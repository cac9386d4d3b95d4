package routes

import (
	"coffeeshop/configs"
	"coffeeshop/controllers"
	"coffeeshop/middlewares"
	"coffeeshop/pkg/catalog"
	"coffeeshop/repository"
	"coffeeshop/services"
	"coffeeshop/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, menu *catalog.Catalog) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/about", func(c *gin.Context) {
		c.String(200, "Here you can read about the company and its coffee.")
	})

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(userRepo, menu)
	orderSvc := services.NewOrderService(orderRepo, menu)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menu)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Menu (public)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Cart — userId ส่งมาตรง ๆ ตาม API เดิม ไม่บังคับ token
	r.POST("/cart/add", cartCtrl.Add)
	r.POST("/cart/remove", cartCtrl.Remove)
	r.GET("/cart/:userId", cartCtrl.Get)

	// Orders — guest สั่งได้โดยไม่ login
	r.POST("/order", orderCtrl.Create)
	r.GET("/orders/:userId", orderCtrl.ListForUser)
	r.GET("/guest-orders/:orderId", orderCtrl.GuestDetail)

	// Live delivery tracking (ต้อง login)
	tracking := ws.NewTrackingHandler(orderSvc)
	r.GET("/ws/orders/track", middlewares.WSAuthMiddleware(cfg.JWTSecret), tracking.HandleWebSocket)
}
