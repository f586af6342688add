package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/handlers/auth"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/handlers/order"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/handlers/payment"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/handlers/product"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/handlers/team"
	"github.com/don-Savage01/universe-ofhair-sub001/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Storefront
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProduct)
	api.GET("/team", team.GetTeamMembers)

	// Payments
	payments := api.Group("/payments", middleware.PaymentRateLimit())
	payments.POST("/initialize", payment.InitializePayment)
	payments.GET("/verify/:reference", payment.VerifyPayment)

	// Checkout session bridge
	api.PUT("/checkout/pending/:reference", payment.StorePendingCheckout)
	api.GET("/checkout/pending/:reference", payment.LoadPendingCheckout)
	api.DELETE("/checkout/pending/:reference", payment.ClearPendingCheckout)

	// Orders
	api.POST("/orders", order.CreateOrder)

	// Auth
	api.POST("/auth/login", auth.Login)

	// Admin
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	admin.POST("/products", product.CreateProduct)
	admin.PUT("/products/:id", product.UpdateProduct)
	admin.DELETE("/products/:id", product.DeleteProduct)
	admin.POST("/team", team.CreateTeamMember)
	admin.PUT("/team/:id", team.UpdateTeamMember)
	admin.DELETE("/team/:id", team.DeleteTeamMember)
	admin.POST("/team/:id/image", team.UploadTeamMemberImage)
}
