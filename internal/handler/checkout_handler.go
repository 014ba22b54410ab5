package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	BillingAddress  model.Address `json:"billing_address"`
	ShippingAddress model.Address `json:"shipping_address"`
	CustomerNote    string        `json:"customer_note"`
	PaymentMethod   string        `json:"payment_method"`
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/checkout", h.getCheckout)
	g.POST("/checkout", h.createOrder)
}

func (h *CheckoutHandler) getCheckout(c echo.Context) error {
	sess := storeSessionFromRequest(c)

	res, err := h.uc.GetCheckout(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}

func (h *CheckoutHandler) createOrder(c echo.Context) error {
	sess := storeSessionFromRequest(c)

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res, err := h.uc.CreateOrder(c.Request().Context(), sess, model.OrderDraft{
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		CustomerNote:    req.CustomerNote,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}
