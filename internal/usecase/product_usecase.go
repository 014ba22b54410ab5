package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecase は公開カタログの読み取り。認証はconsumer key/secret側で、
// カートのトークンとは無関係。
type ProductUsecase struct {
	catalog repo.Catalog
}

func NewProductUsecase(catalog repo.Catalog) *ProductUsecase {
	return &ProductUsecase{catalog: catalog}
}

type ListProductsInput struct {
	Page    int
	PerPage int
}

// ListProducts は商品一覧をバックエンドの形のまま返す。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (repo.CatalogResponse, error) {
	res, err := u.catalog.ListProducts(ctx, repo.ProductListQuery{
		Page:    in.Page,
		PerPage: in.PerPage,
	})
	if err != nil {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch products")
	}
	return res, nil
}

// GetProductDetail は商品詳細をそのまま返す。
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (repo.CatalogResponse, error) {
	res, err := u.catalog.GetProduct(ctx, productID)
	if err != nil {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch product")
	}
	return res, nil
}

type SimilarProductsInput struct {
	CategoryID int64
	ExcludeID  int64
}

// SimilarProducts は同一カテゴリの商品を最大6件返す。
// 自分自身（ExcludeID）を除いて空になったら人気順で取り直す。
func (u *ProductUsecase) SimilarProducts(ctx context.Context, in SimilarProductsInput) (repo.CatalogResponse, error) {
	if in.CategoryID <= 0 {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusBadRequest, "Category ID is required")
	}

	res, err := u.catalog.ListProducts(ctx, repo.ProductListQuery{
		Category: in.CategoryID,
		PerPage:  6,
		Status:   "publish",
	})
	if err != nil {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch similar products")
	}
	if !res.OK() {
		// バックエンドの拒否はそのまま返す
		return res, nil
	}

	products, err := filterProducts(res.Body, in.ExcludeID)
	if err != nil {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch similar products")
	}

	// カテゴリ内に何も無ければ人気商品で埋める
	if len(products) < 1 {
		res, err = u.catalog.ListProducts(ctx, repo.ProductListQuery{
			PerPage: 6,
			Status:  "publish",
			OrderBy: "popularity",
		})
		if err != nil {
			return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch similar products")
		}
		if !res.OK() {
			return res, nil
		}
		products, err = filterProducts(res.Body, in.ExcludeID)
		if err != nil {
			return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch similar products")
		}
	}

	body, err := json.Marshal(products)
	if err != nil {
		return repo.CatalogResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch similar products")
	}
	return repo.CatalogResponse{StatusCode: http.StatusOK, Body: body}, nil
}

// filterProducts は商品配列JSONからexcludeIDの商品を除く。
// 各要素はバックエンドの形を保つためjson.RawMessageのまま扱い、idだけ覗く。
func filterProducts(body []byte, excludeID int64) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}

	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		var ref model.ProductRef
		if err := json.Unmarshal(item, &ref); err != nil {
			return nil, err
		}
		if excludeID > 0 && ref.ID == excludeID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
