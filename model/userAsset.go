package model

// UserAsset ... balance of one asset held by one user. Balance and Value are decimal strings.
// Version is bumped on every write and guards conditional updates; zero means not yet stored.
type UserAsset struct {
	BaseModel
	UserID      string `gorm:"type:VARCHAR(128);not null;unique_index:idx_user_asset_symbol" json:"userId"`
	AssetSymbol string `gorm:"type:VARCHAR(20);not null;unique_index:idx_user_asset_symbol" json:"assetSymbol"`
	Name        string `gorm:"type:VARCHAR(100);not null" json:"name"`
	Balance     string `gorm:"type:VARCHAR(100);not null" json:"balance"`
	Value       string `gorm:"type:VARCHAR(100);not null" json:"value"`
	Version     int64  `gorm:"not null" json:"-"`
}
