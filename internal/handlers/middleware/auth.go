package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fitcore/users-service/internal/handlers/dto"
)

// RequireJWT valida o bearer token das requisições usando HMAC.
// As claims validadas ficam disponíveis no contexto sob "claims".
func RequireJWT(secret string) gin.HandlerFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			dto.RespondProblem(c, dto.UnauthorizedProblem(c))
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			dto.RespondProblem(c, dto.UnauthorizedProblem(c))
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
