package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookieName = "lp_session"

	tokenDataContextKey = "auth/token"
)

type Claims[T any] struct {
	jwt.RegisteredClaims
	TokenInfo T
}

// GenerateSessionToken подписывает данные сессии в JWT для cookie
func GenerateSessionToken[T any](input T, exp time.Duration, secret string) (token string, err error) {
	tokenData := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims[T]{
		TokenInfo: input,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	return tokenData.SignedString([]byte(secret))
}

func VerifySessionToken[T any](tokenString, secret string) (*T, error) {
	claims := &Claims[T]{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.TokenInfo, nil
}

func SessionCookie(token string, exp time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieAuthMiddlewareInit проверяет cookie сессии. Браузерные страницы
// редиректятся на redirectTo, остальные запросы получают 401.
func CookieAuthMiddlewareInit[T any](secret, redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				deny(w, r, redirectTo)
				return
			}

			tokenInfo, err := VerifySessionToken[T](cookie.Value, secret)
			if err != nil {
				deny(w, r, redirectTo)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTokenInfo(r.Context(), tokenInfo)))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, redirectTo string) {
	if redirectTo != "" {
		http.Redirect(w, r, redirectTo, http.StatusFound)
		return
	}
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// WithTokenInfo кладёт данные сессии в контекст так же, как middleware
func WithTokenInfo[T any](ctx context.Context, tokenInfo *T) context.Context {
	return context.WithValue(ctx, tokenDataContextKey, tokenInfo)
}

func GetTokenInfo[T any](r *http.Request) *T {
	tokenInfo, ok := r.Context().Value(tokenDataContextKey).(*T)
	if !ok {
		return nil
	}

	return tokenInfo
}
