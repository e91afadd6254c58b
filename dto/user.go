package dto

// BankDetailsRequest ...
type BankDetailsRequest struct {
	UserID        string `json:"userId" validate:"required,notblank"`
	BankName      string `json:"bankName" validate:"required,notblank"`
	AccountNumber string `json:"accountNumber" validate:"required,account_number"`
	AccountName   string `json:"accountName" validate:"required,notblank"`
}

// UpdateRoleRequest ...
type UpdateRoleRequest struct {
	UserID string `json:"userId" validate:"required,notblank"`
	Role   string `json:"role" validate:"required,oneof=buyer seller admin"`
}

// TokenClaims ... claims carried by tokens accepted on the API
type TokenClaims struct {
	Issuer      string   `json:"iss"`
	ServiceID   string   `json:"serviceId"`
	UserID      string   `json:"userId"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	TokenType   string   `json:"tokenType"`
}

// Session ... authenticated caller of a request
type Session struct {
	UserID      string
	ServiceID   string
	Role        string
	Permissions []string
}
