package cmsdb

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。db/schema.sql と同期すること。
const schema = `
CREATE TABLE IF NOT EXISTS divisions (
    -- 事業部の一意識別子
    id TEXT PRIMARY KEY,
    -- 事業部名
    name TEXT NOT NULL,
    -- 公開状態フラグ
    is_active INTEGER NOT NULL DEFAULT 1,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS admins (
    -- 管理者の一意識別子
    id TEXT PRIMARY KEY,
    -- 管理者に紐づくユーザーのID
    user_id TEXT NOT NULL,
    -- 所属事業部のID（認可判定の基準となる値）
    division_id TEXT NOT NULL,
    -- 有効状態フラグ。無効化された管理者は認証を通過できない
    is_active INTEGER NOT NULL DEFAULT 1,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (division_id) REFERENCES divisions(id)
);

CREATE TABLE IF NOT EXISTS programs (
    id TEXT PRIMARY KEY,
    division_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (division_id) REFERENCES divisions(id)
);

CREATE TABLE IF NOT EXISTS program_modules (
    id TEXT PRIMARY KEY,
    program_id TEXT NOT NULL,
    -- モジュール種別（お知らせ・参加申込フォーム・広告）
    module_type TEXT NOT NULL CHECK (module_type IN ('announcement', 'registration', 'advertisement')),
    -- 公開フラグ。作成直後は非公開
    is_published INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 同一プログラムに同じ種別のモジュールは1つまで
    UNIQUE (program_id, module_type),
    FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS announcements (
    id TEXT PRIMARY KEY,
    program_id TEXT NOT NULL,
    title TEXT NOT NULL,
    body TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
);

-- 事業部IDでのプログラム検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_programs_division_id
    ON programs(division_id);

-- プログラムIDでのモジュール検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_program_modules_program_id
    ON program_modules(program_id);

-- プログラムIDでのお知らせ検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_announcements_program_id
    ON announcements(program_id);
`

// InitSchema はSQLiteデータベースにスキーマを適用する。
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
