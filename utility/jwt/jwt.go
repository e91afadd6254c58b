package jwt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	Config "wallet-ledger/config"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	jwt "github.com/dgrijalva/jwt-go"
)

var (
	X_AUTH_TOKEN = "x-auth-token"
)

// Verify ... This verifies an RS256 token against the configured authenticator key and decodes its claims
func Verify(authToken string, config Config.Data, tokenClaims interface{}) error {

	keyByte, err := base64.URLEncoding.DecodeString(config.AuthenticatorKey)
	if err != nil {
		return appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}

	token, err := jwt.Parse(authToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return jwt.ParseRSAPublicKeyFromPEM(keyByte)
	})
	if err != nil {
		return appError.Err{ErrType: errorcode.UNAUTHORIZED, ErrCode: http.StatusUnauthorized, Err: err}
	}

	jwtClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return appError.Err{ErrType: errorcode.UNAUTHORIZED, ErrCode: http.StatusUnauthorized, Err: errors.New("Failed to validate token")}
	}

	claimBytes, err := json.Marshal(jwtClaims)
	if err != nil {
		return appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}
	return json.Unmarshal(claimBytes, tokenClaims)
}
