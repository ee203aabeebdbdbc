package config

import "testing"

// TestLoad はLoad関数を検証する。
// 環境変数を操作するためt.Parallel()は使用しない。
func TestLoad(t *testing.T) {
	t.Run("未設定の場合にデフォルト値が適用されること", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}

		if cfg.AdminPort != "8091" {
			t.Errorf("AdminPort = %q, want %q", cfg.AdminPort, "8091")
		}
		if cfg.PagesPort != "8092" {
			t.Errorf("PagesPort = %q, want %q", cfg.PagesPort, "8092")
		}
		if cfg.DatabasePath != "/data/cms.db" {
			t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/cms.db")
		}
		if cfg.AdminTokenSecret != "dev-secret-key" {
			t.Errorf("AdminTokenSecret = %q, want %q", cfg.AdminTokenSecret, "dev-secret-key")
		}
	})

	t.Run("環境変数の値が優先されること", func(t *testing.T) {
		t.Setenv("ADMIN_PORT", "9001")
		t.Setenv("DATABASE_PATH", "/tmp/test-cms.db")
		t.Setenv("ADMIN_TOKEN_SECRET", "prod-secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load()でエラーが発生: %v", err)
		}

		if cfg.AdminPort != "9001" {
			t.Errorf("AdminPort = %q, want %q", cfg.AdminPort, "9001")
		}
		if cfg.DatabasePath != "/tmp/test-cms.db" {
			t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/tmp/test-cms.db")
		}
		if cfg.AdminTokenSecret != "prod-secret" {
			t.Errorf("AdminTokenSecret = %q, want %q", cfg.AdminTokenSecret, "prod-secret")
		}
	})
}
