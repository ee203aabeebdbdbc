// 管理APIサービスのエントリポイント。
// 事業部管理者のトークン認証と、プログラムに付随するモジュール
// （お知らせ・参加申込フォーム・広告）の作成・更新・削除を担当する。
package main

import (
	"log"

	"github.com/elifeweb/cms/internal/admin"
	"github.com/elifeweb/cms/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := admin.NewServer(cfg)
	if err != nil {
		log.Fatalf("管理APIサーバーの初期化に失敗: %v", err)
	}

	log.Printf("管理APIサービスを起動します: :%s", cfg.AdminPort)
	if err := server.Run(); err != nil {
		log.Fatalf("管理APIサービスの起動に失敗: %v", err)
	}
}
