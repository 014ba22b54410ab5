package woocommerce_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/woocommerce"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// fakeBackend は1ハンドラのStore APIスタブ。受けたリクエストを記録する。
func fakeBackend(t *testing.T, status int, body string, header map[string]string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Header = r.Header.Clone()
		rec.Body = b
		for k, v := range header {
			w.Header().Add(k, v)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestStoreClient_GetCart_ExtractsTokensAndCookies(t *testing.T) {
	srv, recorded := fakeBackend(t, http.StatusOK, `{"items":[],"items_count":0}`, map[string]string{
		"Nonce":      "n1",
		"Cart-Token": "t1",
		"Cart-Hash":  "h1",
		"Set-Cookie": "wp_session=abc; Path=/; HttpOnly",
	})

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	res, err := client.GetCart(context.Background(), repo.StoreSession{Cookie: "wp_session=old"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"items":[],"items_count":0}`, string(res.Body))
	assert.Equal(t, model.TokenSet{Nonce: "n1", CartToken: "t1", CartHash: "h1"}, res.Tokens)
	assert.Equal(t, []string{"wp_session=abc; Path=/; HttpOnly"}, res.SetCookies)

	assert.Equal(t, http.MethodGet, recorded.Method)
	assert.Equal(t, "/wp-json/wc/store/v1/cart", recorded.Path)
	assert.Equal(t, "wp_session=old", recorded.Header.Get("Cookie"))
}

func TestStoreClient_AddItem_ForwardsTokensAndBody(t *testing.T) {
	srv, recorded := fakeBackend(t, http.StatusCreated, `{"items_count":3}`, nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	sess := repo.StoreSession{
		Cookie: "wp_session=abc",
		Tokens: model.TokenSet{Nonce: "n1", CartToken: "t1"},
	}
	res, err := client.AddItem(context.Background(), sess, 42, 3)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/add-item", recorded.Path)
	assert.Equal(t, "n1", recorded.Header.Get("X-WC-Store-API-Nonce"))
	assert.Equal(t, "t1", recorded.Header.Get("Cart-Token"))
	assert.Equal(t, "application/json", recorded.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"id":42,"quantity":3}`, string(recorded.Body))
}

func TestStoreClient_RemoveItem_UsesPostRemoveItem(t *testing.T) {
	srv, recorded := fakeBackend(t, http.StatusOK, `{"items":[]}`, nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	_, err := client.RemoveItem(context.Background(), repo.StoreSession{}, "abc123")

	assert.NoError(t, err)
	// 裏側の削除はDELETEではなくPOST remove-item
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/remove-item", recorded.Path)
	assert.JSONEq(t, `{"key":"abc123"}`, string(recorded.Body))
}

func TestStoreClient_CreateOrder_PayloadShape(t *testing.T) {
	srv, recorded := fakeBackend(t, http.StatusOK, `{"order_id":7}`, nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	payload := model.NewOrderPayload(model.OrderDraft{
		BillingAddress: model.Address{FirstName: "Taro", City: "Tokyo"},
		PaymentMethod:  "cod",
	})
	_, err := client.CreateOrder(context.Background(), repo.StoreSession{
		Tokens: model.TokenSet{Nonce: "n1", CartToken: "t1"},
	}, payload)
	assert.NoError(t, err)

	assert.Equal(t, "/wp-json/wc/store/v1/checkout", recorded.Path)

	var sent map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(recorded.Body, &sent))
	// バックエンド形式：create_accountはfalse、payment_data/extensionsはnullでない
	assert.Equal(t, "false", string(sent["create_account"]))
	assert.Equal(t, "[]", string(sent["payment_data"]))
	assert.Equal(t, "{}", string(sent["extensions"]))
	assert.Contains(t, string(sent["billing_address"]), `"Taro"`)
}

func TestStoreClient_NonOKIsNotAnError(t *testing.T) {
	rejection := `{"code":"woocommerce_rest_missing_nonce","message":"Missing the Nonce header."}`
	srv, _ := fakeBackend(t, http.StatusUnauthorized, rejection, nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	res, err := client.AddItem(context.Background(), repo.StoreSession{}, 42, 1)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.JSONEq(t, rejection, string(res.Body))
}

func TestStoreClient_EmptyBodyBecomesEmptyObject(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, "", nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	res, err := client.GetCheckout(context.Background(), repo.StoreSession{})

	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), res.Body)
}

func TestStoreClient_InvalidJSONIsAnError(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, "<html>maintenance</html>", nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	_, err := client.GetCart(context.Background(), repo.StoreSession{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestStoreClient_TokensOmittedWhenBackendReturnsNone(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, `{"items":[]}`, nil)

	client := woocommerce.NewStoreClient(srv.URL, 5*time.Second)
	res, err := client.GetCart(context.Background(), repo.StoreSession{})

	assert.NoError(t, err)
	// 省略はゼロ値のまま。呼び出し側は「変更なし」として扱う
	assert.Equal(t, model.TokenSet{}, res.Tokens)
}
