package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CheckoutUsecase はチェックアウトの転送と、注文作成時の1回だけの
// トークン回復（カート再読込）を担当する。リトライはそれ以上しない。
type CheckoutUsecase struct {
	store repo.StoreAPI
}

func NewCheckoutUsecase(store repo.StoreAPI) *CheckoutUsecase {
	return &CheckoutUsecase{store: store}
}

// GetCheckout はチェックアウト設定をそのまま返す。
func (u *CheckoutUsecase) GetCheckout(ctx context.Context, sess repo.StoreSession) (repo.StoreResponse, error) {
	res, err := u.store.GetCheckout(ctx, sess)
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch checkout")
	}
	return res, nil
}

// CreateOrder はトークン解決→送信の2段階。
// ヘッダー由来のトークンが欠けていたらカートを1回だけ読んで補い、
// それでも揃わなければ401で打ち切る（バックエンドは呼ばない）。
func (u *CheckoutUsecase) CreateOrder(ctx context.Context, sess repo.StoreSession, draft model.OrderDraft) (repo.StoreResponse, error) {
	tokens, err := u.resolveTokens(ctx, sess)
	if err != nil {
		return repo.StoreResponse{}, err
	}
	sess.Tokens = tokens

	res, err := u.store.CreateOrder(ctx, sess, model.NewOrderPayload(draft))
	if err != nil {
		return repo.StoreResponse{}, NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}
	return res, nil
}

// resolveTokens は揃っていればそのまま、欠けていればカート読込1回で補完する。
func (u *CheckoutUsecase) resolveTokens(ctx context.Context, sess repo.StoreSession) (model.TokenSet, error) {
	if sess.Tokens.Complete() {
		return sess.Tokens, nil
	}

	res, err := u.store.GetCart(ctx, sess)
	if err != nil {
		return model.TokenSet{}, NewHTTPError(http.StatusInternalServerError, "Failed to fetch cart")
	}

	tokens := sess.Tokens.Merge(res.Tokens)
	if !tokens.Complete() {
		return model.TokenSet{}, NewHTTPError(http.StatusUnauthorized, "Missing authentication tokens")
	}
	return tokens, nil
}
