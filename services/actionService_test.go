package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"wallet-ledger/database"
	"wallet-ledger/dto"
	"wallet-ledger/model"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/validator"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// failingLedger ... a ledger that cannot reach its store
type failingLedger struct {
	database.Ledger
	err error
}

func (ledger failingLedger) RunTransaction(ctx context.Context, fn func(tx database.LedgerTx) error) error {
	return ledger.err
}

func conflict() error {
	return appError.New(http.StatusConflict, errorcode.STORAGE_CONFLICT, "BTC balance of user u1 changed concurrently")
}

//ActionServiceSuite ...
type ActionServiceSuite struct {
	suite.Suite
	DB        *gorm.DB
	Ledger    *database.GormLedger
	Validator *validator.Validator
	Service   *ActionService
}

func TestActionService(t *testing.T) {
	suite.Run(t, new(ActionServiceSuite))
}

func (s *ActionServiceSuite) SetupTest() {
	s.Ledger, s.DB = newTestLedger(s.T())
	requestValidator, err := validator.New()
	require.NoError(s.T(), err)
	s.Validator = requestValidator

	users := &database.UserRepository{BaseRepository: database.BaseRepository{Database: database.Database{DB: s.DB}}}
	s.Service = NewActionService(NewLedgerService(s.Ledger, newMockPriceFeed()), users, requestValidator)
}

func (s *ActionServiceSuite) TestBuy() {
	result := s.Service.Buy(context.Background(), dto.BuyRequest{UserID: "u1", AssetSymbol: "btc", AssetName: "Bitcoin", Amount: "0.01", NairaAmount: "1000000"})

	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), http.StatusOK, result.Status)
	assert.Equal(s.T(), errorcode.SUCCESS, result.Code)
	assert.Equal(s.T(), "Successfully bought 0.01000 BTC", result.Message)

	transaction, ok := result.Data.(dto.Transaction)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "+0.01000 BTC", transaction.Amount)
	assert.Equal(s.T(), "Buy", transaction.Type)
}

func (s *ActionServiceSuite) TestSellEntireBalance() {
	seedAsset(s.T(), s.DB, "u1", "BTC", "0.5", "0")

	result := s.Service.Sell(context.Background(), dto.SellRequest{UserID: "u1", AssetSymbol: "BTC", Amount: "0.5"})
	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), "Successfully sold 0.50000 BTC", result.Message)
	assert.Equal(s.T(), "-0.50000 BTC", result.Data.(dto.Transaction).Amount)

	asset, err := s.Ledger.GetAsset(context.Background(), "u1", "BTC")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0", asset.Balance)
}

func (s *ActionServiceSuite) TestSellInsufficientFunds() {
	seedAsset(s.T(), s.DB, "u1", "BTC", "0.1", "0")

	result := s.Service.Sell(context.Background(), dto.SellRequest{UserID: "u1", AssetSymbol: "BTC", Amount: "1"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusBadRequest, result.Status)
	assert.Equal(s.T(), errorcode.INSUFFICIENT_FUNDS, result.Code)
	assert.Equal(s.T(), "Insufficient BTC balance: available 0.1, requested 1", result.Message)
}

func (s *ActionServiceSuite) TestSellUnknownAsset() {
	result := s.Service.Sell(context.Background(), dto.SellRequest{UserID: "u1", AssetSymbol: "ETH", Amount: "1"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusNotFound, result.Status)
	assert.Equal(s.T(), errorcode.ASSET_NOT_FOUND, result.Code)
}

func (s *ActionServiceSuite) TestSwap() {
	seedAsset(s.T(), s.DB, "u1", "ETH", "2", "0")

	result := s.Service.Swap(context.Background(), dto.SwapRequest{UserID: "u1", FromAssetSymbol: "eth", ToAssetSymbol: "usdt", FromAmount: "1", ToAmount: "3500"})
	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), "Successfully swapped 1.00000 ETH for USDT", result.Message)
	assert.Equal(s.T(), "USDT", result.Data.(dto.Transaction).CounterAssetSymbol)
}

func (s *ActionServiceSuite) TestDeposit() {
	result := s.Service.Deposit(context.Background(), dto.DepositRequest{UserID: "u1", AssetSymbol: "SOL", Amount: "10"})
	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), "Successfully deposited 10.00000 SOL", result.Message)
	assert.Equal(s.T(), "Deposit", result.Data.(dto.Transaction).Type)
}

func (s *ActionServiceSuite) TestDepositWebhookCreatesAsset() {
	result := s.Service.DepositWebhook(context.Background(), dto.DepositWebhookRequest{UserID: "u1", Asset: "ETH", Amount: "2", AssetName: "Ethereum"})
	require.True(s.T(), result.Success, result.Message)

	asset, err := s.Ledger.GetAsset(context.Background(), "u1", "ETH")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "2", asset.Balance)
	assert.Equal(s.T(), "Ethereum", asset.Name)
	assert.Equal(s.T(), "0", asset.Value)

	transactions, err := s.Ledger.FetchTransactions(context.Background(), "u1", 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), model.TransactionType.BUY, transactions[0].TransactionType)
	assert.Equal(s.T(), "+2.00000 ETH", transactions[0].Amount)
}

func (s *ActionServiceSuite) TestDepositWebhookFailureIsAServerError() {
	s.Service.Ledger = NewLedgerService(failingLedger{err: errors.New("store unavailable")}, nil)

	result := s.Service.DepositWebhook(context.Background(), dto.DepositWebhookRequest{UserID: "u1", Asset: "ETH", Amount: "2", AssetName: "Ethereum"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusInternalServerError, result.Status)
	assert.Equal(s.T(), errorcode.SYSTEM_ERR, result.Message)
}

func (s *ActionServiceSuite) TestValidationErrors() {
	result := s.Service.Buy(context.Background(), dto.BuyRequest{UserID: " ", AssetSymbol: "BTC", Amount: "-1"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusBadRequest, result.Status)
	assert.Equal(s.T(), errorcode.VALIDATION_ERR_CODE, result.Code)
	assert.Contains(s.T(), result.Errors, map[string]string{"userId": "userId cannot be blank"})
	assert.Contains(s.T(), result.Errors, map[string]string{"amount": "amount must be a number greater than zero"})
}

func (s *ActionServiceSuite) TestConflictAfterRetries() {
	s.Service.Ledger = NewLedgerService(failingLedger{err: conflict()}, nil)

	result := s.Service.Deposit(context.Background(), dto.DepositRequest{UserID: "u1", AssetSymbol: "BTC", Amount: "1"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusConflict, result.Status)
	assert.Equal(s.T(), errorcode.STORAGE_CONFLICT, result.Code)
	assert.Equal(s.T(), errorcode.STORAGE_CONFLICT_ERR, result.Message)
}

func (s *ActionServiceSuite) TestUpdateBankDetailsCreatesProfile() {
	result := s.Service.UpdateBankDetails(context.Background(), dto.Session{UserID: "u1", Role: model.Role.BUYER}, dto.BankDetailsRequest{UserID: "u1", BankName: "Access Bank", AccountNumber: "0123456789", AccountName: "Ada Obi"})
	require.True(s.T(), result.Success, result.Message)

	user := result.Data.(model.User)
	assert.Equal(s.T(), model.Role.BUYER, user.Role)
	assert.Equal(s.T(), "0123456789", user.AccountNumber)
}

func (s *ActionServiceSuite) TestUpdateBankDetailsRejectsBadAccountNumber() {
	result := s.Service.UpdateBankDetails(context.Background(), dto.Session{UserID: "u1", Role: model.Role.BUYER}, dto.BankDetailsRequest{UserID: "u1", BankName: "Access Bank", AccountNumber: "12345", AccountName: "Ada Obi"})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusBadRequest, result.Status)
}

func (s *ActionServiceSuite) TestUpdateBankDetailsOfAnotherUser() {
	request := dto.BankDetailsRequest{UserID: "u1", BankName: "Access Bank", AccountNumber: "0123456789", AccountName: "Mallory"}

	result := s.Service.UpdateBankDetails(context.Background(), dto.Session{UserID: "u2", Role: model.Role.SELLER}, request)
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusForbidden, result.Status)
	assert.Equal(s.T(), errorcode.FORBIDDEN, result.Code)
	assert.Equal(s.T(), errorcode.OWNER_ONLY, result.Message)

	result = s.Service.UpdateBankDetails(context.Background(), dto.Session{}, request)
	assert.Equal(s.T(), http.StatusForbidden, result.Status)

	result = s.Service.UpdateBankDetails(context.Background(), dto.Session{UserID: "admin", Role: model.Role.ADMIN}, request)
	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), "Mallory", result.Data.(model.User).AccountName)
}

func (s *ActionServiceSuite) TestUpdateRoleRequiresAdmin() {
	result := s.Service.UpdateRole(context.Background(), dto.Session{UserID: "u2", Role: model.Role.BUYER}, dto.UpdateRoleRequest{UserID: "u1", Role: model.Role.SELLER})
	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), http.StatusForbidden, result.Status)
	assert.Equal(s.T(), errorcode.ADMIN_ONLY, result.Message)

	result = s.Service.UpdateRole(context.Background(), dto.Session{UserID: "admin", Role: model.Role.ADMIN}, dto.UpdateRoleRequest{UserID: "u1", Role: model.Role.SELLER})
	require.True(s.T(), result.Success, result.Message)
	assert.Equal(s.T(), "User role updated to seller", result.Message)
}
