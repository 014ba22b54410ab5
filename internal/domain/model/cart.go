package model

// TokenSet はStore APIのゲストカート認証材料3点セット。
// すべてバックエンドが発行する不透明な文字列で、この側では中身を解釈しない。
type TokenSet struct {
	Nonce     string
	CartToken string
	CartHash  string
}

// Merge はotherの空でない値だけを上書きした新しいTokenSetを返す。
// レスポンスがヘッダーを省略した場合は「変更なし」の意味なので既存値を保持する。
func (t TokenSet) Merge(other TokenSet) TokenSet {
	out := t
	if other.Nonce != "" {
		out.Nonce = other.Nonce
	}
	if other.CartToken != "" {
		out.CartToken = other.CartToken
	}
	if other.CartHash != "" {
		out.CartHash = other.CartHash
	}
	return out
}

// Complete はミューテーションに必要な2つ（nonceとcart token）が揃っているか。
// cart hashは必須ではない。
func (t TokenSet) Complete() bool {
	return t.Nonce != "" && t.CartToken != ""
}
