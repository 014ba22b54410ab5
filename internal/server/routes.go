package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	productH *handler.ProductHandler,
	contactH *handler.ContactHandler,
) {
	api := e.Group("/api")
	cartH.RegisterRoutes(api)
	checkoutH.RegisterRoutes(api)
	productH.RegisterRoutes(api)
	contactH.RegisterRoutes(api)
}
