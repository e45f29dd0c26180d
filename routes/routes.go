package routes

import (
	"net/http"

	"play-cards-store/controllers"
	"play-cards-store/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Register wires every route group onto the engine. CouponController may be
// nil when no coupon database is configured; coupon admin routes are then
// omitted and the static coupon table serves pricing.
func Register(
	r *gin.Engine,
	products *controllers.ProductController,
	carts *controllers.CartController,
	orders *controllers.OrderController,
	coupons *controllers.CouponController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "play-cards-store"})
	})

	r.GET("/products", products.GetProducts)
	r.GET("/products/categories", products.GetFilters)
	r.GET("/products/:id", products.GetProduct)

	cartRoutes := r.Group("/cart")
	cartRoutes.Use(middleware.Session())
	cartRoutes.GET("", carts.GetCart)
	cartRoutes.POST("/add", carts.AddItem)
	cartRoutes.POST("/update", carts.UpdateItem)
	cartRoutes.POST("/remove", carts.RemoveItem)
	cartRoutes.POST("/clear", carts.ClearCart)

	orderRoutes := r.Group("/order")
	orderRoutes.Use(middleware.Session())
	orderRoutes.POST("/preview", orders.PreviewOrder)
	orderRoutes.POST("/confirm", orders.ConfirmOrder)
	orderRoutes.GET("/:id", orders.GetOrder)

	r.POST("/my-orders", orders.GetMyOrders)

	adminRoutes := r.Group("/admin")
	adminRoutes.Use(middleware.Identity(), middleware.AdminOnly(), middleware.RateLimit(rate.Limit(5), 20))
	adminRoutes.POST("/products", products.CreateProduct)
	adminRoutes.PUT("/products/:id", products.UpdateProduct)
	adminRoutes.DELETE("/products/:id", products.DeleteProduct)
	adminRoutes.GET("/orders", orders.ListOrders)
	adminRoutes.POST("/orders/:id/status", orders.UpdateOrderStatus)

	if coupons != nil {
		adminRoutes.POST("/coupons", coupons.CreateCoupon)
		adminRoutes.GET("/coupons", coupons.ListCoupons)
		adminRoutes.DELETE("/coupons/:code", coupons.DeactivateCoupon)
	}
}
