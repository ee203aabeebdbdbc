// Package config は環境変数からのサービス設定読み込みを提供する。
//
// トークン検証用のシークレットは発行側と共有する値であり、
// コードに埋め込まず必ず環境変数経由で注入する。
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config は全サービス共通の設定。
type Config struct {
	// AdminPort は管理APIサービスのリッスンポート。
	AdminPort string `env:"ADMIN_PORT" envDefault:"8091"`
	// PagesPort は公開ページAPIサービスのリッスンポート。
	PagesPort string `env:"PAGES_PORT" envDefault:"8092"`
	// DatabasePath はSQLiteデータベースファイルのパス。
	DatabasePath string `env:"DATABASE_PATH" envDefault:"/data/cms.db"`
	// AdminTokenSecret は管理者トークンの検証用シークレット。
	// 発行側（外部認証基盤）と同一の値を設定すること。
	AdminTokenSecret string `env:"ADMIN_TOKEN_SECRET" envDefault:"dev-secret-key"`
}

// Load は環境変数から設定を読み込む。
// 未設定の項目には開発用のデフォルト値が適用される。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗: %w", err)
	}
	return &cfg, nil
}
