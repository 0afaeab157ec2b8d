package middleware

import (
	"credit_edu_backend/internal/util"
	"credit_edu_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 身份提供方在浏览器端写入的访问令牌 cookie
const accessTokenCookie = "sb-access-token"

func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware 校验身份提供方签发的 JWT，并把用户写入上下文
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("JWT parse error", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		util.SetUser(c, claims)
		c.Next()
	}
}
