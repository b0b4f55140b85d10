package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"munch-pos/internal/core/auth"
	"munch-pos/internal/transport/http/handler"
	mdw "munch-pos/internal/transport/http/middleware"
)

// NewAPIEngine 按固定路由表挂载（契约见各 handler）
func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	users *handler.UserHandler,
	products *handler.ProductHandler,
	txs *handler.TransactionHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.RateLimitPerIP(50, 100),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, "Hello there! 👋") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册/登录公开，其余全部走 Bearer 校验
	u := r.Group("/users")
	{
		u.POST("/register", users.Register)
		u.POST("/login", users.Login)
	}

	authed := r.Group("", mdw.AuthJWT(jwter))

	p := authed.Group("/products")
	{
		p.GET("/all-products", products.ListAll)
		p.GET("/all-active-products", products.ListActive)
		p.POST("/add-product", products.Add)
		p.POST("/delete-product", products.Delete)
		p.POST("/update-product", products.Update)
		p.POST("/link-upsell-product", products.LinkUpsell)
		p.POST("/unlink-upsell-product", products.UnlinkUpsell)
		p.POST("/product-upsell-products", products.UpsellTargets)
	}

	t := authed.Group("/transactions")
	{
		t.POST("/add-transaction", txs.Add)
		t.POST("/get-transaction", txs.Get)
	}

	return r
}
