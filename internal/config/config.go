package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	WCBaseURL        string // WooCommerceのベースURL
	WCConsumerKey    string // カタログAPI（wc/v3）のconsumer key
	WCConsumerSecret string // カタログAPIのconsumer secret
	WCTimeoutSeconds int    // バックエンド呼び出しのタイムアウト秒（default 15）

	SendGridAPIKey string // 問い合わせメールのSendGridキー
	ContactFrom    string // 問い合わせメールのFrom
	ContactTo      string // 問い合わせメールの宛先（ショップ側）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
func Load() (Config, error) {
	timeout, err := atoiOrDefault("WC_TIMEOUT_SECONDS", 15)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		WCBaseURL:        os.Getenv("WC_BASE_URL"),
		WCConsumerKey:    os.Getenv("WC_CONSUMER_KEY"),
		WCConsumerSecret: os.Getenv("WC_CONSUMER_SECRET"),
		WCTimeoutSeconds: timeout,

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		ContactFrom:    os.Getenv("CONTACT_FROM"),
		ContactTo:      os.Getenv("CONTACT_TO"),

		GoEnv: os.Getenv("GO_ENV"),
		FEURL: os.Getenv("FE_URL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.WCBaseURL == "" {
		return Config{}, fmt.Errorf("WC_BASE_URL is required")
	}
	if cfg.WCConsumerKey == "" {
		return Config{}, fmt.Errorf("WC_CONSUMER_KEY is required")
	}
	if cfg.WCConsumerSecret == "" {
		return Config{}, fmt.Errorf("WC_CONSUMER_SECRET is required")
	}
	if cfg.SendGridAPIKey == "" {
		return Config{}, fmt.Errorf("SENDGRID_API_KEY is required")
	}
	if cfg.ContactFrom == "" {
		return Config{}, fmt.Errorf("CONTACT_FROM is required")
	}
	if cfg.ContactTo == "" {
		return Config{}, fmt.Errorf("CONTACT_TO is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	return cfg, nil
}

func atoiOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
