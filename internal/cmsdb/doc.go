// Package cmsdb はCMSストレージへのクエリレイヤを提供する。
//
// クエリ実行コードは db/query.sql からsqlcで生成する。
// 管理APIサービスと公開ページAPIサービスが同一のSQLiteデータベースを
// 共有するため、スキーマとクエリはこのパッケージに集約している。
package cmsdb
