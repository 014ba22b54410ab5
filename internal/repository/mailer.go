package repository

import "context"

// Mailer は問い合わせメールの送信口。カート/チェックアウトとは独立。
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}
