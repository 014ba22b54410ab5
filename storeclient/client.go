package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	headerStoreNonce = "X-WC-Store-API-Nonce"
	headerNonce      = "Nonce"
	headerCartToken  = "Cart-Token"
	headerCartHash   = "Cart-Hash"
)

// Client はストアフロントAPIのカートクライアント。
// 1インスタンスが1ブラウザセッション相当で、cookiejarがセッションcookieを持つ。
// カートのスナップショットとトークンをキャッシュし、
// ミューテーション成功後は必ずRefreshで取り直す（手元では合計を計算しない）。
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	cart      *Cart
	loading   bool
	nonce     string
	cartToken string
	cartHash  string
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("storeclient: cookiejar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Refresh はカートを無条件に読み直してスナップショットを差し替える。
// レスポンスヘッダーにトークンがあれば更新し、無ければ既存値を残す
// （省略=無効化ではない）。何度呼んでも安全。
func (c *Client) Refresh(ctx context.Context) error {
	header, body, err := c.doJSON(ctx, http.MethodGet, "/api/cart", nil, false)
	if err != nil {
		return err
	}

	var cart Cart
	if err := json.Unmarshal(body, &cart); err != nil {
		return fmt.Errorf("storeclient: decode cart: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = &cart
	if v := nonceFromHeader(header); v != "" {
		c.nonce = v
	}
	if v := header.Get(headerCartToken); v != "" {
		c.cartToken = v
	}
	if v := header.Get(headerCartHash); v != "" {
		c.cartHash = v
	}
	return nil
}

// AddItem は追加成功後にRefreshする。失敗時はキャッシュを触らずエラーを返す。
// 並行呼び出しは調停しない：最後に終わったRefreshの結果が見える
// （低トラフィックのストアフロント前提の弱い整合）。
func (c *Client) AddItem(ctx context.Context, productID int64, quantity int64) error {
	if quantity == 0 {
		quantity = 1
	}

	c.setLoading(true)
	defer c.setLoading(false)

	payload := map[string]any{"productId": productID, "quantity": quantity}
	if _, _, err := c.doJSON(ctx, http.MethodPost, "/api/cart", payload, true); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// UpdateQuantity は行キー指定で数量を変える。契約はAddItemと同じ。
func (c *Client) UpdateQuantity(ctx context.Context, key string, quantity int64) error {
	c.setLoading(true)
	defer c.setLoading(false)

	payload := map[string]any{"key": key, "quantity": quantity}
	if _, _, err := c.doJSON(ctx, http.MethodPut, "/api/cart", payload, true); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// RemoveItem は行キーをクエリで渡す（DELETEはボディを持たない）。
func (c *Client) RemoveItem(ctx context.Context, key string) error {
	c.setLoading(true)
	defer c.setLoading(false)

	path := "/api/cart?key=" + url.QueryEscape(key)
	if _, _, err := c.doJSON(ctx, http.MethodDelete, path, nil, true); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// CreateOrder はトークンが欠けていたらRefresh1回だけで回復を試み、
// それでも揃わなければErrAuthTokensMissingで打ち切る（サーバーは呼ばない）。
// 成功してもカートのキャッシュは触らない。決済ページへの誘導は呼び出し側の仕事。
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*OrderResult, error) {
	if !c.hasTokens() {
		// 回復は1回だけ。Refresh自体の失敗はここでは握りつぶし、
		// トークンが揃ったかどうかだけで判断する
		_ = c.Refresh(ctx)
	}
	if !c.hasTokens() {
		return nil, ErrAuthTokensMissing
	}

	_, body, err := c.doJSON(ctx, http.MethodPost, "/api/checkout", draft, true)
	if err != nil {
		return nil, err
	}

	var result OrderResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("storeclient: decode order result: %w", err)
	}
	return &result, nil
}

// Cart は最後に読んだスナップショットのコピー。未ロードならnil。
func (c *Client) Cart() *Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return nil
	}
	cp := *c.cart
	return &cp
}

// TotalItems はスナップショット内の数量合計。
func (c *Client) TotalItems() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cart == nil {
		return 0
	}
	var total int64
	for _, item := range c.cart.Items {
		total += item.Quantity
	}
	return total
}

// Tokens はキャッシュ中のトークン3点を返す。
func (c *Client) Tokens() TokenSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TokenSet{Nonce: c.nonce, CartToken: c.cartToken, CartHash: c.cartHash}
}

func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Client) hasTokens() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonce != "" && c.cartToken != ""
}

func (c *Client) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// doJSON は1リクエスト送って全ボディを読む。非2xxは*APIErrorにして返す
// （ボディはバックエンドのメッセージそのままなので捨てない）。
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, withTokens bool) (http.Header, []byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("storeclient: marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("storeclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withTokens {
		c.mu.Lock()
		req.Header.Set(headerStoreNonce, c.nonce)
		req.Header.Set(headerCartToken, c.cartToken)
		c.mu.Unlock()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("storeclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("storeclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.Header, body, &APIError{Status: resp.StatusCode, Body: body}
	}
	return resp.Header, body, nil
}

// nonceFromHeader はプロキシが付けるNonceと、素通しで来る
// Store API表記の両方を受け付ける。
func nonceFromHeader(h http.Header) string {
	if v := h.Get(headerNonce); v != "" {
		return v
	}
	return h.Get(headerStoreNonce)
}
