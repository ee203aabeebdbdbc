package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// testSecret はテスト用の共有シークレット。
const testSecret = "test-secret-key-for-unit-tests"

// validPrincipal はテスト用の有効なペイロードを生成する。
func validPrincipal() Principal {
	return Principal{
		AdminID:    "admin-123",
		UserID:     "user-456",
		DivisionID: "farmelife",
		ExpiresAt:  time.Now().Add(1 * time.Hour).Unix(),
	}
}

// TestSign はSign関数を検証する。
func TestSign(t *testing.T) {
	t.Parallel()

	t.Run("トークンが2セグメント形式で生成されること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := Sign(validPrincipal(), testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		parts := strings.Split(tokenStr, ".")
		if len(parts) != 2 {
			t.Fatalf("セグメント数 = %d, want 2", len(parts))
		}
		if parts[0] == "" || parts[1] == "" {
			t.Fatal("空のセグメントが含まれている")
		}
	})

	t.Run("第1セグメントがペイロードJSONのbase64であること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		parts := strings.Split(tokenStr, ".")
		payload, err := base64.StdEncoding.DecodeString(parts[0])
		if err != nil {
			t.Fatalf("base64デコードに失敗: %v", err)
		}

		var decoded Principal
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("JSONのパースに失敗: %v", err)
		}
		if decoded != p {
			t.Errorf("ペイロード = %+v, want %+v", decoded, p)
		}
	})
}

// TestVerify はVerify関数を検証する。
func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("有効なトークンが検証に成功すること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		got := Verify(tokenStr, testSecret)
		if got == nil {
			t.Fatal("Verify()がnilを返した")
		}
		if got.AdminID != p.AdminID {
			t.Errorf("AdminID = %q, want %q", got.AdminID, p.AdminID)
		}
		if got.UserID != p.UserID {
			t.Errorf("UserID = %q, want %q", got.UserID, p.UserID)
		}
		if got.DivisionID != p.DivisionID {
			t.Errorf("DivisionID = %q, want %q", got.DivisionID, p.DivisionID)
		}
	})

	t.Run("期限切れトークンが署名の正否に関わらず拒否されること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		p.ExpiresAt = time.Now().Add(-1 * time.Minute).Unix()
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		if got := Verify(tokenStr, testSecret); got != nil {
			t.Errorf("期限切れトークンでVerify() = %+v, want nil", got)
		}
	})

	t.Run("有効期限が現在時刻ちょうどの場合に拒否されること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		p.ExpiresAt = time.Now().Unix()
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		if got := Verify(tokenStr, testSecret); got != nil {
			t.Errorf("境界値のトークンでVerify() = %+v, want nil", got)
		}
	})

	t.Run("異なるシークレットで検証に失敗すること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := Sign(validPrincipal(), testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		if got := Verify(tokenStr, "wrong-secret"); got != nil {
			t.Errorf("異なるシークレットでVerify() = %+v, want nil", got)
		}
	})

	t.Run("ペイロードを1バイト改ざんすると検証に失敗すること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		// ペイロードのdivision_idを書き換えてダイジェストはそのまま使う
		parts := strings.Split(tokenStr, ".")
		payload, err := base64.StdEncoding.DecodeString(parts[0])
		if err != nil {
			t.Fatalf("base64デコードに失敗: %v", err)
		}
		tampered := strings.Replace(string(payload), "farmelife", "organlife", 1)
		forged := base64.StdEncoding.EncodeToString([]byte(tampered)) + "." + parts[1]

		if got := Verify(forged, testSecret); got != nil {
			t.Errorf("改ざんしたトークンでVerify() = %+v, want nil", got)
		}
	})

	t.Run("ダイジェストセグメントの改ざんで検証に失敗すること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := Sign(validPrincipal(), testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		parts := strings.Split(tokenStr, ".")
		last := parts[1][len(parts[1])-1]
		flip := "0"
		if last == '0' {
			flip = "1"
		}
		forged := parts[0] + "." + parts[1][:len(parts[1])-1] + flip

		if got := Verify(forged, testSecret); got != nil {
			t.Errorf("改ざんしたダイジェストでVerify() = %+v, want nil", got)
		}
	})

	t.Run("セグメント数が不正な場合にnilが返ること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := Sign(validPrincipal(), testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		cases := []string{
			"",
			"onlyonesegment",
			tokenStr + ".extra",
			"." + strings.Split(tokenStr, ".")[1],
			strings.Split(tokenStr, ".")[0] + ".",
		}
		for _, c := range cases {
			if got := Verify(c, testSecret); got != nil {
				t.Errorf("Verify(%q) = %+v, want nil", c, got)
			}
		}
	})

	t.Run("base64として不正なペイロードでnilが返ること", func(t *testing.T) {
		t.Parallel()

		if got := Verify("!!!not-base64!!!.deadbeef", testSecret); got != nil {
			t.Errorf("Verify() = %+v, want nil", got)
		}
	})

	t.Run("JSONとして不正なペイロードでnilが返ること", func(t *testing.T) {
		t.Parallel()

		encoded := base64.StdEncoding.EncodeToString([]byte("not json at all"))
		if got := Verify(encoded+".deadbeef", testSecret); got != nil {
			t.Errorf("Verify() = %+v, want nil", got)
		}
	})

	t.Run("admin_idが空のペイロードでnilが返ること", func(t *testing.T) {
		t.Parallel()

		p := validPrincipal()
		p.AdminID = ""
		tokenStr, err := Sign(p, testSecret)
		if err != nil {
			t.Fatalf("Sign()でエラーが発生: %v", err)
		}

		if got := Verify(tokenStr, testSecret); got != nil {
			t.Errorf("Verify() = %+v, want nil", got)
		}
	})
}
