package handler

import (
	"net/http"
	"strings"

	"cityhop/internal/service"

	"github.com/gin-gonic/gin"
)

const ctxUserID = "userID"

// AuthRequired проверяет заголовок Authorization (Bearer-токен) и кладет
// идентификатор пользователя в контекст запроса. Без валидного токена
// запрос отклоняется с 401 — клиент трактует это как «требуется вход».
func AuthRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Войдите, чтобы продолжить"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Сессия недействительна, войдите заново"})
			return
		}
		c.Set(ctxUserID, claims.Subject)
		c.Next()
	}
}

// currentUserID возвращает ID пользователя, положенный middleware в контекст.
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
