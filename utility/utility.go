package utility

import (
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDecimals ... number of decimals used when rendering amounts on transaction records
const DisplayDecimals = 5

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomString ... random string drawn from chars
func RandomString(strlen int, chars string) string {
	result := make([]byte, strlen)
	for i := 0; i < strlen; i++ {
		result[i] = chars[rand.Intn(len(chars))]
	}
	return string(result)
}

// FormatAmount ... renders a signed amount such as "-0.50000 BTC"
func FormatAmount(sign string, amount decimal.Decimal, assetSymbol string) string {
	return fmt.Sprintf("%s%s %s", sign, amount.StringFixed(DisplayDecimals), assetSymbol)
}

// NormalizeSymbol ... asset symbols are stored upper case without surrounding spaces
func NormalizeSymbol(assetSymbol string) string {
	return strings.ToUpper(strings.TrimSpace(assetSymbol))
}

// ParseBalance ... parses a stored balance string, treating an empty string as zero
func ParseBalance(balance string) (decimal.Decimal, error) {
	if strings.TrimSpace(balance) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(balance)
}

// GetIPAdress ... best effort client address for request logs
func GetIPAdress(requestReader *http.Request) string {
	if forwarded := requestReader.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := requestReader.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(requestReader.RemoteAddr)
	if err != nil {
		return requestReader.RemoteAddr
	}
	return host
}
