// 公開ページAPIサービスのエントリポイント。
// 事業部ページの表示に必要なプログラム・公開中モジュール・お知らせを
// 読み取り専用で提供する。
package main

import (
	"log"

	"github.com/elifeweb/cms/internal/pages"
	"github.com/elifeweb/cms/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := pages.NewServer(cfg)
	if err != nil {
		log.Fatalf("公開ページAPIサーバーの初期化に失敗: %v", err)
	}

	log.Printf("公開ページAPIサービスを起動します: :%s", cfg.PagesPort)
	if err := server.Run(); err != nil {
		log.Fatalf("公開ページAPIサービスの起動に失敗: %v", err)
	}
}
