package model

// ProductRef はカタログAPIの商品JSONからidだけを読むための部分型。
// 商品本体はバックエンドの形のまま素通しするので、ここでは展開しない。
type ProductRef struct {
	ID int64 `json:"id"`
}
