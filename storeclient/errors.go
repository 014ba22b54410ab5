package storeclient

import (
	"errors"
	"fmt"
)

// ErrAuthTokensMissing はカート再読込1回でもnonce/cart tokenが
// 揃わなかったときに返す。errors.Isで判定できる。
var ErrAuthTokensMissing = errors.New("authentication tokens missing")

// APIError はプロキシ（またはバックエンド素通し）の非2xx応答。
// Bodyはバックエンドのエラーメッセージそのまま。
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.Status, e.Body)
}
