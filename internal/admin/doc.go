// Package admin は事業部管理者向けのモジュール管理APIを提供する。
//
// 署名付きトークンによる認証、管理者レコードとの照合、
// 事業部スコープの認可を経て、プログラムに付随するモジュール
// （お知らせ・参加申込フォーム・広告）の作成・更新・削除を行う。
// すべての変更操作は管理者自身の事業部に属するプログラムに限定される。
package admin
