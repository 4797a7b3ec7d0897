package helpers

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// CheckPassword compares a bcrypt hash against a plaintext candidate.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// FormatValidationErrors flattens validator errors into field -> message for
// re-rendered forms.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required", fieldErr.Field())
		case "email":
			messages[field] = "Invalid email address"
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
		case "gte":
			messages[field] = fmt.Sprintf("%s must be %s or more", fieldErr.Field(), fieldErr.Param())
		case "lte":
			messages[field] = fmt.Sprintf("%s must be %s or less", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			messages[field] = fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		default:
			messages[field] = fmt.Sprintf("%s is invalid", fieldErr.Field())
		}
	}
	return messages
}

// ClientIP extracts the caller address, preferring X-Forwarded-For when a
// proxy set it.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IsAJAX reports whether the request came from an XMLHttpRequest caller that
// expects JSON instead of a redirect.
func IsAJAX(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
