package handler

import (
	"net/http"
	"strconv"

	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// writeCatalogResponse はカタログAPIの返答（非2xx含む）を素通しする。
func writeCatalogResponse(c echo.Context, res repository.CatalogResponse) error {
	return c.JSONBlob(res.StatusCode, res.Body)
}

// /api/product の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/product", h.list)
	g.GET("/product/:id", h.detail)
	g.GET("/similar-products", h.similar)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（未指定は0=バックエンド既定）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	perPage := 0
	if v := c.QueryParam("per_page"); v != "" {
		pp, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid per_page"})
		}
		perPage = pp
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeCatalogResponse(c, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeCatalogResponse(c, out)
}

func (h *ProductHandler) similar(c echo.Context) error {
	// categoryの必須チェックはusecase側（0のまま渡す）
	var categoryID int64
	if v := c.QueryParam("category"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
		}
		categoryID = x
	}

	var excludeID int64
	if v := c.QueryParam("exclude"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid exclude"})
		}
		excludeID = x
	}

	out, err := h.uc.SimilarProducts(c.Request().Context(), usecase.SimilarProductsInput{
		CategoryID: categoryID,
		ExcludeID:  excludeID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeCatalogResponse(c, out)
}
