package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type StoreAPIMock struct{ mock.Mock }

func (m *StoreAPIMock) GetCart(ctx context.Context, sess repo.StoreSession) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func (m *StoreAPIMock) AddItem(ctx context.Context, sess repo.StoreSession, productID int64, quantity int64) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess, productID, quantity)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func (m *StoreAPIMock) UpdateItem(ctx context.Context, sess repo.StoreSession, key string, quantity int64) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess, key, quantity)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func (m *StoreAPIMock) RemoveItem(ctx context.Context, sess repo.StoreSession, key string) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess, key)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func (m *StoreAPIMock) GetCheckout(ctx context.Context, sess repo.StoreSession) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func (m *StoreAPIMock) CreateOrder(ctx context.Context, sess repo.StoreSession, payload model.OrderPayload) (repo.StoreResponse, error) {
	args := m.Called(ctx, sess, payload)
	res, _ := args.Get(0).(repo.StoreResponse)
	return res, args.Error(1)
}

func assertHTTPError(t *testing.T, err error, status int, msgPart string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	assert.Equal(t, status, he.Status)
	if !strings.Contains(he.Message, msgPart) {
		t.Fatalf("message %q does not contain %q", he.Message, msgPart)
	}
}

// =====================
// GetCart
// =====================

func TestCartUsecase_GetCart_PassesThroughBody(t *testing.T) {
	ctx := context.Background()

	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	sess := repo.StoreSession{Cookie: "wp_session=abc"}
	res := repo.StoreResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"items":[],"items_count":0}`),
		Tokens:     model.TokenSet{Nonce: "n1", CartToken: "t1"},
	}
	store.On("GetCart", mock.Anything, sess).Return(res, nil)

	out, err := uc.GetCart(ctx, sess)
	assert.NoError(t, err)
	assert.Equal(t, res, out)

	store.AssertExpectations(t)
}

func TestCartUsecase_GetCart_TransportError(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	store.On("GetCart", mock.Anything, mock.Anything).Return(repo.StoreResponse{}, errors.New("dial tcp: timeout"))

	_, err := uc.GetCart(context.Background(), repo.StoreSession{})
	assertHTTPError(t, err, http.StatusInternalServerError, "Failed to fetch cart")
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_MissingProductID(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	_, err := uc.AddItem(context.Background(), repo.StoreSession{}, usecase.AddItemInput{})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing productId")

	// バリデーションで落ちたらバックエンドは呼ばない
	store.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_DefaultQuantityIsOne(t *testing.T) {
	ctx := context.Background()

	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	sess := repo.StoreSession{
		Cookie: "wp_session=abc",
		Tokens: model.TokenSet{Nonce: "n1", CartToken: "t1"},
	}
	res := repo.StoreResponse{StatusCode: http.StatusCreated, Body: []byte(`{"items_count":1}`)}

	// 数量未指定（0）は1で送られる。トークンはセッションごと渡る
	store.On("AddItem", mock.Anything, sess, int64(42), int64(1)).Return(res, nil)

	out, err := uc.AddItem(ctx, sess, usecase.AddItemInput{ProductID: 42})
	assert.NoError(t, err)
	assert.Equal(t, res, out)

	store.AssertExpectations(t)
}

func TestCartUsecase_AddItem_NegativeQuantity(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	_, err := uc.AddItem(context.Background(), repo.StoreSession{}, usecase.AddItemInput{ProductID: 42, Quantity: -1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid quantity")

	store.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_BackendRejectionPassthrough(t *testing.T) {
	ctx := context.Background()

	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	// バックエンドの非2xxはエラーではなくそのまま返す
	res := repo.StoreResponse{StatusCode: http.StatusForbidden, Body: []byte(`{"code":"woocommerce_rest_missing_nonce"}`)}
	store.On("AddItem", mock.Anything, mock.Anything, int64(42), int64(3)).Return(res, nil)

	out, err := uc.AddItem(ctx, repo.StoreSession{}, usecase.AddItemInput{ProductID: 42, Quantity: 3})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, out.StatusCode)
	assert.Equal(t, res.Body, out.Body)
}

// =====================
// UpdateItem / RemoveItem
// =====================

func TestCartUsecase_UpdateItem_MissingKey(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	_, err := uc.UpdateItem(context.Background(), repo.StoreSession{}, usecase.UpdateItemInput{Quantity: 2})
	assertHTTPError(t, err, http.StatusBadRequest, "Missing item key")

	store.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateItem_MissingQuantity(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	_, err := uc.UpdateItem(context.Background(), repo.StoreSession{}, usecase.UpdateItemInput{Key: "abc123"})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid quantity")
}

func TestCartUsecase_UpdateItem_Success(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	res := repo.StoreResponse{StatusCode: http.StatusOK, Body: []byte(`{"items_count":5}`)}
	store.On("UpdateItem", mock.Anything, mock.Anything, "abc123", int64(5)).Return(res, nil)

	out, err := uc.UpdateItem(context.Background(), repo.StoreSession{}, usecase.UpdateItemInput{Key: "abc123", Quantity: 5})
	assert.NoError(t, err)
	assert.Equal(t, res, out)
}

func TestCartUsecase_RemoveItem_MissingKey(t *testing.T) {
	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	_, err := uc.RemoveItem(context.Background(), repo.StoreSession{}, "")
	assertHTTPError(t, err, http.StatusBadRequest, "Missing item key")

	store.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_RemoveItem_EmptyTokensForwarded(t *testing.T) {
	ctx := context.Background()

	store := new(StoreAPIMock)
	uc := usecase.NewCartUsecase(store)

	// 事前のカート読込が無い（トークン空の）ままでも転送し、拒否は素通しする
	sess := repo.StoreSession{}
	res := repo.StoreResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"code":"woocommerce_rest_cart_item_invalid_key"}`)}
	store.On("RemoveItem", mock.Anything, sess, "abc123").Return(res, nil)

	out, err := uc.RemoveItem(ctx, sess, "abc123")
	assert.NoError(t, err)
	assert.Equal(t, res, out)

	store.AssertExpectations(t)
}
