package repository

import (
	"context"

	"app/internal/domain/model"
)

// StoreSession はブラウザのリクエストから引き継ぐ認証材料。
// Cookieはバックエンド発行のセッションをそのまま転送するだけで、中身は見ない。
type StoreSession struct {
	Cookie string
	Tokens model.TokenSet
}

// StoreResponse はStore APIの生レスポンス。
// Bodyはバックエンドが返したJSONそのままで、2xx以外でも加工しない。
type StoreResponse struct {
	StatusCode int
	Body       []byte
	Tokens     model.TokenSet
	SetCookies []string
}

// OK は2xxかどうか。
func (r StoreResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StoreAPI はWooCommerce Store API（cookie + nonce + cart token認証）への出口。
// 呼び出しが失敗（ネットワーク・タイムアウト・JSON破損）したときだけerrorを返し、
// バックエンドの拒否（非2xx）はStoreResponseとしてそのまま返す。
type StoreAPI interface {
	GetCart(ctx context.Context, sess StoreSession) (StoreResponse, error)
	AddItem(ctx context.Context, sess StoreSession, productID int64, quantity int64) (StoreResponse, error)
	UpdateItem(ctx context.Context, sess StoreSession, key string, quantity int64) (StoreResponse, error)
	RemoveItem(ctx context.Context, sess StoreSession, key string) (StoreResponse, error)
	GetCheckout(ctx context.Context, sess StoreSession) (StoreResponse, error)
	CreateOrder(ctx context.Context, sess StoreSession, payload model.OrderPayload) (StoreResponse, error)
}
