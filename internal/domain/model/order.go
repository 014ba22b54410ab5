package model

// Address はStore APIのチェックアウト住所。billing/shipping共通。
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

// OrderDraft はチェックアウト画面で組み立てた注文内容。
// 送信し終えたら破棄する（ローカルには保存しない）。
type OrderDraft struct {
	BillingAddress  Address
	ShippingAddress Address
	CustomerNote    string
	PaymentMethod   string
}

// OrderPayload はStore APIの POST /checkout が受け取る形。
type OrderPayload struct {
	BillingAddress  Address          `json:"billing_address"`
	ShippingAddress Address          `json:"shipping_address"`
	CustomerNote    string           `json:"customer_note"`
	CreateAccount   bool             `json:"create_account"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentData     []map[string]any `json:"payment_data"`
	Extensions      map[string]any   `json:"extensions"`
}

// NewOrderPayload はOrderDraftからバックエンド形式のペイロードを作る。
// payment_dataとextensionsはnullではなく空の[]/{}で送る必要がある。
func NewOrderPayload(d OrderDraft) OrderPayload {
	return OrderPayload{
		BillingAddress:  d.BillingAddress,
		ShippingAddress: d.ShippingAddress,
		CustomerNote:    d.CustomerNote,
		CreateAccount:   false,
		PaymentMethod:   d.PaymentMethod,
		PaymentData:     []map[string]any{},
		Extensions:      map[string]any{},
	}
}
