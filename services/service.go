package services

import (
	"fmt"
	"net/http"
	"time"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"

	"github.com/go-resty/resty/v2"
)

func serviceError(code int, errType string, format string, args ...interface{}) error {
	return appError.Err{
		ErrCode: code,
		ErrType: errType,
		Err:     fmt.Errorf(format, args...),
	}
}

func validationError(format string, args ...interface{}) error {
	return serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE, format, args...)
}

// NewClient ... resty client used for calls to external services
func NewClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetHostURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "wallet-ledger")
}
