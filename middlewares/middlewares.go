package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	Config "wallet-ledger/config"
	"wallet-ledger/dto"
	"wallet-ledger/utility"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/jwt"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/response"
	"wallet-ledger/utility/session"
)

// Middleware ... Middleware struct
type Middleware struct {
	config Config.Data
	next   http.Handler
}

// NewMiddleware ... Creates a middleware instance
func NewMiddleware(config Config.Data, handler http.HandlerFunc) *Middleware {
	return &Middleware{config, handler}
}

// Build ... Build midlleware functions
func (m *Middleware) Build() http.HandlerFunc {
	return m.next.ServeHTTP
}

// LogAPIRequests ... Logs every incoming request
func (m *Middleware) LogAPIRequests() *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		logger.Info(fmt.Sprintf("Incoming request from : %s with IP : %s to : %s", requestReader.UserAgent(), utility.GetIPAdress(requestReader), requestReader.URL.Path))
		m.next.ServeHTTP(responseWriter, requestReader)
	})

	return &Middleware{m.config, nextHandler}
}

// ValidateAuthToken ... verifies the x-auth-token header carries the given permission and puts the caller's session in the request context
func (m *Middleware) ValidateAuthToken(permission string) *Middleware {
	nextHandler := http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		apiResponse := response.New()

		authToken := requestReader.Header.Get(jwt.X_AUTH_TOKEN)
		if authToken == "" {
			writeError(responseWriter, http.StatusUnauthorized, apiResponse.PlainError(errorcode.UNAUTHORIZED, errorcode.EMPTY_AUTH_KEY))
			return
		}

		tokenClaims := dto.TokenClaims{}
		if err := jwt.Verify(authToken, m.config, &tokenClaims); err != nil {
			logger.Info("Rejected auth token for %s : %s", requestReader.URL.Path, err)
			if appError.Code(err) == http.StatusUnauthorized {
				writeError(responseWriter, http.StatusUnauthorized, apiResponse.PlainError(errorcode.UNAUTHORIZED, errorcode.INVALID_AUTH_TOKEN))
				return
			}
			writeError(responseWriter, http.StatusInternalServerError, apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR))
			return
		}

		if !hasPermission(tokenClaims.Permissions, fmt.Sprintf("svcs.%s.%s", m.config.ServiceName, permission)) {
			writeError(responseWriter, http.StatusForbidden, apiResponse.PlainError(errorcode.FORBIDDEN, errorcode.INVALID_PERMISSIONS))
			return
		}

		ctx := session.With(requestReader.Context(), dto.Session{
			UserID:      tokenClaims.UserID,
			ServiceID:   tokenClaims.ServiceID,
			Role:        tokenClaims.Role,
			Permissions: tokenClaims.Permissions,
		})
		m.next.ServeHTTP(responseWriter, requestReader.WithContext(ctx))
	})

	return &Middleware{m.config, nextHandler}
}

// Timeout ... cancels the request context and answers 503 once the duration elapses. A zero duration disables it.
func (m *Middleware) Timeout(duration time.Duration) *Middleware {
	if duration <= 0 {
		return m
	}
	body, _ := json.Marshal(response.New().PlainError(errorcode.SERVER_ERR_CODE, errorcode.REQUEST_TIMEOUT))
	return &Middleware{m.config, http.TimeoutHandler(m.next, duration, string(body))}
}

func hasPermission(granted []string, required string) bool {
	for _, permission := range granted {
		if strings.EqualFold(permission, required) {
			return true
		}
	}
	return false
}

func writeError(responseWriter http.ResponseWriter, status int, body interface{}) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	_ = json.NewEncoder(responseWriter).Encode(body)
}
