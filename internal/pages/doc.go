// Package pages は公開Webサイト向けの読み取り専用APIを提供する。
//
// 事業部ページの表示に必要なプログラム・公開中モジュール・お知らせを
// まとめて返す。認証は不要で、変更操作は一切行わない。
package pages
