package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"app/internal/repository"
)

const catalogProductsPath = "/wp-json/wc/v3/products"

// CatalogClient は読み取り専用カタログAPI（wc/v3）のクライアント。
// Store APIのトークンとは別系統のconsumer key/secretでbasic auth認証する。
type CatalogClient struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

func NewCatalogClient(baseURL, consumerKey, consumerSecret string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) ListProducts(ctx context.Context, q repository.ProductListQuery) (repository.CatalogResponse, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Category > 0 {
		params.Set("category", strconv.FormatInt(q.Category, 10))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.OrderBy != "" {
		params.Set("orderby", q.OrderBy)
	}

	reqURL := c.baseURL + catalogProductsPath
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return c.get(ctx, reqURL)
}

func (c *CatalogClient) GetProduct(ctx context.Context, productID int64) (repository.CatalogResponse, error) {
	return c.get(ctx, c.baseURL+catalogProductsPath+"/"+strconv.FormatInt(productID, 10))
}

func (c *CatalogClient) get(ctx context.Context, reqURL string) (repository.CatalogResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return repository.CatalogResponse{}, fmt.Errorf("catalog api: build request: %w", err)
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return repository.CatalogResponse{}, fmt.Errorf("catalog api: GET %s: %w", catalogProductsPath, err)
	}
	defer resp.Body.Close()

	backendRequestsTotal.WithLabelValues(catalogProductsPath, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return repository.CatalogResponse{}, fmt.Errorf("catalog api: read response: %w", err)
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	} else if !json.Valid(raw) {
		return repository.CatalogResponse{}, fmt.Errorf("catalog api: invalid json response (status %d)", resp.StatusCode)
	}

	return repository.CatalogResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}
