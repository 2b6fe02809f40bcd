package middleware

import (
	"context"
	"net/http"
	"strings"
)

type userIDContextKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст.
// Аутентификацию как таковую выполняет внешний gateway; здесь только
// пропускаем идентификатор дальше.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"требуется заголовок X-User-ID"}`))
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя, положенный Auth
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDContextKey{}).(string); ok {
		return userID
	}
	return ""
}
