package storeclient

// Store APIのカートJSONのうち、この側で使うフィールドだけを展開する。
// 金額はバックエンド計算の文字列のままで、こちらでは再計算しない。

type CartItemPrices struct {
	Price string `json:"price"`
}

type CartItemTotals struct {
	LineTotal string `json:"line_total"`
}

type CartItemImage struct {
	Src string `json:"src"`
}

// CartItem は行アイテム。Keyは商品IDとは別の行識別子。
type CartItem struct {
	Key      string          `json:"key"`
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Prices   CartItemPrices  `json:"prices"`
	Totals   CartItemTotals  `json:"totals"`
	Images   []CartItemImage `json:"images"`
}

type CartTotals struct {
	TotalItems string `json:"total_items"`
	TotalPrice string `json:"total_price"`
}

// Cart はバックエンドが最後に報告したスナップショットのコピー。
type Cart struct {
	Items      []CartItem `json:"items"`
	ItemsCount int64      `json:"items_count"`
	Totals     CartTotals `json:"totals"`
}

// TokenSet はキャッシュ中の認証トークン3点。
type TokenSet struct {
	Nonce     string
	CartToken string
	CartHash  string
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// OrderDraft はチェックアウトで1回だけ送る注文内容。
type OrderDraft struct {
	BillingAddress  Address `json:"billing_address"`
	ShippingAddress Address `json:"shipping_address"`
	CustomerNote    string  `json:"customer_note"`
	PaymentMethod   string  `json:"payment_method"`
}

type PaymentResult struct {
	PaymentStatus string `json:"payment_status"`
	RedirectURL   string `json:"redirect_url"`
}

// OrderResult は注文作成の返答。RedirectURLが入っていたら
// 呼び出し側が決済ページへ誘導する（このクライアントは遷移しない）。
type OrderResult struct {
	OrderID       int64         `json:"order_id"`
	OrderKey      string        `json:"order_key"`
	Status        string        `json:"status"`
	PaymentResult PaymentResult `json:"payment_result"`
}
