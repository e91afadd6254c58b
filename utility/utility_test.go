package utility

import (
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	amount, err := decimal.NewFromString("0.5")
	require.NoError(t, err)
	assert.Equal(t, "-0.50000 BTC", FormatAmount("-", amount, "BTC"))

	amount, err = decimal.NewFromString("1.914285714")
	require.NoError(t, err)
	assert.Equal(t, "+1.91429 ETH", FormatAmount("+", amount, "ETH"))
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "USDT", NormalizeSymbol(" usdt "))
	assert.Equal(t, "", NormalizeSymbol("   "))
}

func TestParseBalance(t *testing.T) {
	balance, err := ParseBalance("")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = ParseBalance("0.0")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	balance, err = ParseBalance("12.75")
	require.NoError(t, err)
	assert.Equal(t, "12.75", balance.String())

	_, err = ParseBalance("twelve")
	assert.Error(t, err)
}

func TestRandomString(t *testing.T) {
	value := RandomString(32, "ab")
	assert.Len(t, value, 32)
	assert.Regexp(t, `^[ab]+$`, value)
}

func TestGetIPAdress(t *testing.T) {
	request := httptest.NewRequest("GET", "/ping", nil)
	request.RemoteAddr = "10.0.0.7:5123"
	assert.Equal(t, "10.0.0.7", GetIPAdress(request))

	request.Header.Set("X-Real-Ip", "172.16.0.2")
	assert.Equal(t, "172.16.0.2", GetIPAdress(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", GetIPAdress(request))
}
