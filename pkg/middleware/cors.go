package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS は全オリジンからのクロスオリジンリクエストを許可するGinミドルウェアを返す。
// 管理画面・公開ページのフロントエンドは別オリジンで配信されるため、
// x-admin-tokenヘッダーを含むプリフライトリクエストを許可する必要がある。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, x-admin-token")
		c.Header("Access-Control-Max-Age", "86400")

		// プリフライトリクエストは空ボディで応答する
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
