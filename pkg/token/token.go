package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Principal は管理者トークンのペイロードを表す。
// トークン検証に成功した場合にのみ取得できる。
// DivisionID はあくまでトークン発行時点の値であり、
// 認可判定には管理者レコード側の事業部IDを使用すること。
type Principal struct {
	// AdminID は管理者レコードの一意識別子。
	AdminID string `json:"admin_id"`
	// UserID は管理者に紐づくユーザーのID。
	UserID string `json:"user_id"`
	// DivisionID はトークン発行時点の所属事業部ID。
	DivisionID string `json:"division_id"`
	// ExpiresAt はトークンの有効期限（Unix秒）。
	ExpiresAt int64 `json:"expires_at"`
}

// Sign はペイロードを署名して管理者トークン文字列を生成する。
// トークン形式: base64(ペイロードJSON) + "." + hex(sha256(ペイロードJSON + secret))
// 本番環境での発行は外部の認証基盤が担うが、テストや運用ツールからも使用する。
func Sign(p Principal, secret string) (string, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("ペイロードのシリアライズに失敗: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(payload)
	return encoded + "." + digest(payload, secret), nil
}

// Verify はトークン文字列を検証し、有効であればペイロードを返す。
// 形式不正・base64デコード失敗・期限切れ・署名不一致のいずれの場合もnilを返す。
// 失敗理由は呼び出し元に区別させない（オラクル攻撃の防止）。
func Verify(tokenStr, secret string) *Principal {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}

	payload, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil
	}

	var p Principal
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil
	}
	if p.AdminID == "" {
		return nil
	}

	// 有効期限は現在時刻より厳密に未来でなければならない
	if p.ExpiresAt <= time.Now().Unix() {
		return nil
	}

	// ダイジェスト比較は定数時間で行う
	if !hmac.Equal([]byte(digest(payload, secret)), []byte(parts[1])) {
		return nil
	}

	return &p
}

// digest はペイロードと共有シークレットからhexエンコードされたダイジェストを計算する。
func digest(payload []byte, secret string) string {
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}
