package appError

import (
	"errors"
	"fmt"
	"net/http"
	"wallet-ledger/utility/errorcode"
)

// Err ... Application error carrying the http status and error type surfaced to clients
type Err struct {
	ErrCode int
	ErrType string
	Err     error
}

func (e Err) Error() string {
	return fmt.Sprintf("%s", e.Err)
}

func (e Err) Unwrap() error {
	return e.Err
}

// New ... builds an Err from a message
func New(code int, errType string, message string) Err {
	return Err{ErrCode: code, ErrType: errType, Err: errors.New(message)}
}

// Type returns the ErrType of err, or SERVER_ERR_CODE for errors not raised by the app
func Type(err error) string {
	var appErr Err
	if errors.As(err, &appErr) {
		return appErr.ErrType
	}
	return errorcode.SERVER_ERR_CODE
}

// Code returns the http status of err, or 500 for errors not raised by the app
func Code(err error) int {
	var appErr Err
	if errors.As(err, &appErr) && appErr.ErrCode != 0 {
		return appErr.ErrCode
	}
	return http.StatusInternalServerError
}

// Is reports whether err is an Err of the given type
func Is(err error, errType string) bool {
	var appErr Err
	return errors.As(err, &appErr) && appErr.ErrType == errType
}
