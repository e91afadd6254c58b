package services

import (
	"strings"
	"wallet-ledger/dto"
	"wallet-ledger/utility"
)

const (
	bech32Chars   = "023456789acdefghjklmnpqrstuvwxyz"
	hexChars      = "0123456789abcdef"
	alphanumChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// UserAddressService ... hands out mock deposit addresses, shaped like real ones for the well known chains
type UserAddressService struct{}

// NewUserAddressService ...
func NewUserAddressService() *UserAddressService {
	return &UserAddressService{}
}

// GenerateAddress ...
func (service *UserAddressService) GenerateAddress(assetSymbol string) (dto.AddressResponse, error) {
	assetSymbol = utility.NormalizeSymbol(assetSymbol)
	if assetSymbol == "" {
		return dto.AddressResponse{}, validationError("assetSymbol cannot be blank")
	}

	var address string
	switch assetSymbol {
	case "BTC":
		address = "bc1q" + utility.RandomString(38, bech32Chars)
	case "ETH", "USDT":
		address = "0x" + utility.RandomString(40, hexChars)
	default:
		address = strings.ToLower(assetSymbol) + "_" + utility.RandomString(32, alphanumChars)
	}
	return dto.AddressResponse{AssetSymbol: assetSymbol, Address: address}, nil
}
