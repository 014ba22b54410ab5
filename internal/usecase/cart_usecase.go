package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

// CartUsecase はカートの素通しプロキシ。
// ローカルには何も保存せず、バリデーションとトークン転送だけを行う。
type CartUsecase struct {
	store repo.StoreAPI
}

func NewCartUsecase(store repo.StoreAPI) *CartUsecase {
	return &CartUsecase{store: store}
}

type AddItemInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateItemInput struct {
	Key      string
	Quantity int64
}

// GetCart はカートを読み、バックエンドの返答をそのまま返す。
// 非2xxも加工しない（ステータスとボディを素通し）。
func (u *CartUsecase) GetCart(ctx context.Context, sess repo.StoreSession) (repo.StoreResponse, error) {
	res, err := u.store.GetCart(ctx, sess)
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart")
	}
	return res, nil
}

// AddItem はproductId必須。数量未指定（0）は1に寄せる。
// バリデーションで落ちた場合はバックエンドを一切呼ばない。
func (u *CartUsecase) AddItem(ctx context.Context, sess repo.StoreSession, in AddItemInput) (repo.StoreResponse, error) {
	if in.ProductID <= 0 {
		return repo.StoreResponse{}, NewHTTPError(http.StatusBadRequest, "Missing productId")
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return repo.StoreResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	res, err := u.store.AddItem(ctx, sess, in.ProductID, quantity)
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to add item")
	}
	return res, nil
}

// UpdateItem はkeyと1以上のquantityが必須。
func (u *CartUsecase) UpdateItem(ctx context.Context, sess repo.StoreSession, in UpdateItemInput) (repo.StoreResponse, error) {
	if in.Key == "" {
		return repo.StoreResponse{}, NewHTTPError(http.StatusBadRequest, "Missing item key")
	}
	if in.Quantity < 1 {
		return repo.StoreResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	res, err := u.store.UpdateItem(ctx, sess, in.Key, in.Quantity)
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to update item")
	}
	return res, nil
}

// RemoveItem はkey必須。トークンが空でもそのまま転送し、拒否はバックエンドに任せる。
func (u *CartUsecase) RemoveItem(ctx context.Context, sess repo.StoreSession, key string) (repo.StoreResponse, error) {
	if key == "" {
		return repo.StoreResponse{}, NewHTTPError(http.StatusBadRequest, "Missing item key")
	}

	res, err := u.store.RemoveItem(ctx, sess, key)
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to remove item")
	}
	return res, nil
}
