package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/woocommerce"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New はechoのセットアップだけを行う。起動はStart。
func New(
	cfg config.Config,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	productH *handler.ProductHandler,
	contactH *handler.ContactHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// フロントはクレデンシャル（cookie）付きで呼んでくるのでオリジンは限定する。
	// トークンヘッダーはExposeしないとブラウザ側のJSから読めない。
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Cookie", woocommerce.HeaderWCNonce, woocommerce.HeaderStoreNonce, woocommerce.HeaderNonce, woocommerce.HeaderCartToken, woocommerce.HeaderCartHash},
		ExposeHeaders:    []string{woocommerce.HeaderNonce, woocommerce.HeaderCartToken, woocommerce.HeaderCartHash},
		AllowCredentials: true,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	RegisterRoutes(e, cartH, checkoutH, productH, contactH)

	return e
}

func Start(addr string, e *echo.Echo) error {
	return e.Start(addr)
}
