// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// パニックリカバリ、CORS設定など、管理APIと公開ページAPIの
// 両サービスで共通して使用するミドルウェアを含む。
package middleware
