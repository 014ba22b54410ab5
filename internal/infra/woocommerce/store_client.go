package woocommerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

const (
	storeCartPath       = "/wp-json/wc/store/v1/cart"
	storeAddItemPath    = "/wp-json/wc/store/v1/cart/add-item"
	storeUpdateItemPath = "/wp-json/wc/store/v1/cart/update-item"
	storeRemoveItemPath = "/wp-json/wc/store/v1/cart/remove-item"
	storeCheckoutPath   = "/wp-json/wc/store/v1/checkout"
)

// StoreClient はWooCommerce Store API（v1）のクライアント。
// repository.StoreAPI の実装。状態は持たず、リクエストごとに認証材料を受け取る。
type StoreClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStoreClient(baseURL string, timeout time.Duration) *StoreClient {
	return &StoreClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type addItemBody struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type updateItemBody struct {
	Key      string `json:"key"`
	Quantity int64  `json:"quantity"`
}

type removeItemBody struct {
	Key string `json:"key"`
}

func (c *StoreClient) GetCart(ctx context.Context, sess repository.StoreSession) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodGet, storeCartPath, sess, nil, false)
}

func (c *StoreClient) AddItem(ctx context.Context, sess repository.StoreSession, productID int64, quantity int64) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodPost, storeAddItemPath, sess, addItemBody{ID: productID, Quantity: quantity}, true)
}

func (c *StoreClient) UpdateItem(ctx context.Context, sess repository.StoreSession, key string, quantity int64) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodPost, storeUpdateItemPath, sess, updateItemBody{Key: key, Quantity: quantity}, true)
}

// RemoveItem の裏側はDELETEではなくPOST remove-item。
func (c *StoreClient) RemoveItem(ctx context.Context, sess repository.StoreSession, key string) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodPost, storeRemoveItemPath, sess, removeItemBody{Key: key}, true)
}

func (c *StoreClient) GetCheckout(ctx context.Context, sess repository.StoreSession) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodGet, storeCheckoutPath, sess, nil, false)
}

func (c *StoreClient) CreateOrder(ctx context.Context, sess repository.StoreSession, payload model.OrderPayload) (repository.StoreResponse, error) {
	return c.do(ctx, http.MethodPost, storeCheckoutPath, sess, payload, true)
}

// do は1回の転送を行う。非2xxもレスポンスとしてそのまま返し、
// errorはネットワーク/タイムアウト/JSON破損のときだけ。
func (c *StoreClient) do(ctx context.Context, method, path string, sess repository.StoreSession, body any, withTokens bool) (repository.StoreResponse, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return repository.StoreResponse{}, fmt.Errorf("store api: marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return repository.StoreResponse{}, fmt.Errorf("store api: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	// 中間での圧縮トラブルを避ける
	req.Header.Set("Accept-Encoding", "identity")
	// Cookieは空でもそのまま転送する（新規ゲストはバックエンドが発行する）
	req.Header.Set("Cookie", sess.Cookie)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withTokens {
		// ミューテーションはトークンが空でも付けて送り、判断はバックエンドに任せる
		req.Header.Set(HeaderStoreNonce, sess.Tokens.Nonce)
		req.Header.Set(HeaderCartToken, sess.Tokens.CartToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return repository.StoreResponse{}, fmt.Errorf("store api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	backendRequestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return repository.StoreResponse{}, fmt.Errorf("store api: read response: %w", err)
	}
	if len(raw) == 0 {
		// チェックアウト系は空ボディを返すことがある
		raw = []byte("{}")
	} else if !json.Valid(raw) {
		return repository.StoreResponse{}, fmt.Errorf("store api: invalid json response (status %d)", resp.StatusCode)
	}

	return repository.StoreResponse{
		StatusCode: resp.StatusCode,
		Body:       raw,
		Tokens:     TokensFromHeader(resp.Header),
		SetCookies: resp.Header.Values("Set-Cookie"),
	}, nil
}
