package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/infra/woocommerce"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartRequest struct {
	Key      string `json:"key"`
	Quantity int64  `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart", h.addItem)
	g.PUT("/cart", h.updateItem)
	g.DELETE("/cart", h.removeItem)
}

// storeSessionFromRequest はブラウザのリクエストから認証材料を取り出す。
// nonceの表記揺れはwoocommerce側のヘルパーに寄せてある。
func storeSessionFromRequest(c echo.Context) repository.StoreSession {
	h := c.Request().Header
	return repository.StoreSession{
		Cookie: h.Get("Cookie"),
		Tokens: model.TokenSet{
			Nonce:     woocommerce.NonceFromHeader(h),
			CartToken: h.Get(woocommerce.HeaderCartToken),
			CartHash:  h.Get(woocommerce.HeaderCartHash),
		},
	}
}

// writeStoreResponse はバックエンドのステータスとボディを素通しし、
// 返ってきたトークンヘッダーがあればレスポンスに写す（無ければ付けない）。
func writeStoreResponse(c echo.Context, res repository.StoreResponse) error {
	rh := c.Response().Header()
	for _, sc := range res.SetCookies {
		rh.Add("Set-Cookie", sc)
	}
	if res.Tokens.CartToken != "" {
		rh.Set(woocommerce.HeaderCartToken, res.Tokens.CartToken)
	}
	if res.Tokens.CartHash != "" {
		rh.Set(woocommerce.HeaderCartHash, res.Tokens.CartHash)
	}
	if res.Tokens.Nonce != "" {
		rh.Set(woocommerce.HeaderNonce, res.Tokens.Nonce)
	}
	return c.JSONBlob(res.StatusCode, res.Body)
}

func (h *CartHandler) getCart(c echo.Context) error {
	sess := storeSessionFromRequest(c)

	res, err := h.uc.GetCart(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}

func (h *CartHandler) addItem(c echo.Context) error {
	sess := storeSessionFromRequest(c)

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res, err := h.uc.AddItem(c.Request().Context(), sess, usecase.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	sess := storeSessionFromRequest(c)

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res, err := h.uc.UpdateItem(c.Request().Context(), sess, usecase.UpdateItemInput{
		Key:      req.Key,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}

// removeItemだけはボディではなくクエリでkeyを受ける
func (h *CartHandler) removeItem(c echo.Context) error {
	sess := storeSessionFromRequest(c)
	key := c.QueryParam("key")

	res, err := h.uc.RemoveItem(c.Request().Context(), sess, key)
	if err != nil {
		return writeError(c, err)
	}

	return writeStoreResponse(c, res)
}
