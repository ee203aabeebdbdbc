// Package token は管理者認証用の署名付きトークンを提供する。
//
// トークンは base64(ペイロードJSON) と hex(SHA-256ダイジェスト) を
// "." で連結した独自形式。発行側と検証側が同一のシークレットを共有する
// 対称鍵方式であり、JWTのような標準エンベロープ形式は使用しない。
// トークンの発行（ログインフロー）は外部の認証基盤が担う。
package token
