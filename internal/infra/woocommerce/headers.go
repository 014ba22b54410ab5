package woocommerce

import (
	"net/http"

	"app/internal/domain/model"
)

const (
	HeaderWCNonce    = "X-WC-Nonce"
	HeaderStoreNonce = "X-WC-Store-API-Nonce"
	HeaderNonce      = "Nonce"
	HeaderCartToken  = "Cart-Token"
	HeaderCartHash   = "Cart-Hash"
)

// nonceHeaderNames は受け付けるnonceヘッダー名（優先順）。
// エンドポイントによって表記が揺れるので、読み取りはここに集約する。
// 送信時はHeaderStoreNonceの1本に統一する。
var nonceHeaderNames = []string{HeaderWCNonce, HeaderStoreNonce, HeaderNonce}

// NonceFromHeader は揺れた表記のnonceを順に探す。無ければ空文字。
func NonceFromHeader(h http.Header) string {
	for _, name := range nonceHeaderNames {
		if v := h.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// TokensFromHeader はレスポンス/リクエストヘッダーからトークン3点を読む。
// 無いものは空のまま返す（空=更新なし、の扱いは呼び出し側のMergeで行う）。
func TokensFromHeader(h http.Header) model.TokenSet {
	return model.TokenSet{
		Nonce:     NonceFromHeader(h),
		CartToken: h.Get(HeaderCartToken),
		CartHash:  h.Get(HeaderCartHash),
	}
}
