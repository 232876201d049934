package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"cardexcli/src/auth"
	"cardexcli/src/model"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type userFinder interface {
	GetUserByUserName(ctx context.Context, userName string) (*model.User, error)
}

type tokenIssuer interface {
	Issue(user *model.User) string
}

type tokenResolver interface {
	Lookup(token string) (*model.User, bool)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler serves POST /auth/login. Bad credentials are a 401.
func LoginHandler(users userFinder, tokens tokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("invalid login payload")
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		username := strings.TrimSpace(payload.Username)
		if username == "" || payload.Password == "" {
			http.Error(w, "Username and password are required", http.StatusBadRequest)
			return
		}

		user, err := users.GetUserByUserName(r.Context(), username)
		if err != nil {
			logger.WithError(err).Error("failed to load user for login")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
			logger.WithField("username", username).Warn("login rejected")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"accessToken": tokens.Issue(user)})
	}
}

// RequireBearer rejects requests without a known bearer token and puts the
// token's user on the request context.
func RequireBearer(tokens tokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, ok := tokens.Lookup(strings.TrimSpace(token))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}
