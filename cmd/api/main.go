package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/mail"
	"app/internal/infra/woocommerce"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	timeout := time.Duration(cfg.WCTimeoutSeconds) * time.Second

	//バックエンドへの出口
	storeClient := woocommerce.NewStoreClient(cfg.WCBaseURL, timeout)
	catalogClient := woocommerce.NewCatalogClient(cfg.WCBaseURL, cfg.WCConsumerKey, cfg.WCConsumerSecret, timeout)
	mailer := mail.NewSendGridMailer(cfg.SendGridAPIKey)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(storeClient)
	checkoutUC := usecase.NewCheckoutUsecase(storeClient)
	productUC := usecase.NewProductUsecase(catalogClient)
	contactUC := usecase.NewContactUsecase(mailer, cfg.ContactFrom, cfg.ContactTo)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	productH := handler.NewProductHandler(productUC)
	contactH := handler.NewContactHandler(contactUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, cartH, checkoutH, productH, contactH)
	if err := server.Start(addr, e); err != nil {
		log.Fatalf("server: %v", err)
	}
}
