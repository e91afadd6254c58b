package model

import "time"

// UserRoles ...
type UserRoles struct{ BUYER, SELLER, ADMIN string }

var Role = UserRoles{
	BUYER:  "buyer",
	SELLER: "seller",
	ADMIN:  "admin",
}

// User ... profile of an authenticated user, keyed by the auth provider's uid
type User struct {
	ID            string    `gorm:"type:VARCHAR(128);primary_key" json:"id"`
	Role          string    `gorm:"type:VARCHAR(20);not null" json:"role"`
	BankName      string    `gorm:"type:VARCHAR(100)" json:"bankName"`
	AccountNumber string    `gorm:"type:VARCHAR(10)" json:"accountNumber"`
	AccountName   string    `gorm:"type:VARCHAR(150)" json:"accountName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
