package repository

import "context"

// ProductListQuery はカタログ検索の条件。ゼロ値のフィールドはクエリに含めない。
type ProductListQuery struct {
	Page     int
	PerPage  int
	Category int64
	Status   string
	OrderBy  string
}

// CatalogResponse はカタログAPI（basic auth）の生レスポンス。
type CatalogResponse struct {
	StatusCode int
	Body       []byte
}

// OK は2xxかどうか。
func (r CatalogResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Catalog は読み取り専用の商品カタログへの出口。
// Store APIとは別のconsumer key/secretペアで認証する。
type Catalog interface {
	ListProducts(ctx context.Context, q ProductListQuery) (CatalogResponse, error)
	GetProduct(ctx context.Context, productID int64) (CatalogResponse, error)
}
