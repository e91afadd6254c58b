package services

import (
	"context"
	"encoding/json"
	"net/http"
	"wallet-ledger/database"
	"wallet-ledger/dto"
	"wallet-ledger/model"
	"wallet-ledger/utility"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"
	"wallet-ledger/utility/validator"

	"github.com/getsentry/sentry-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./mocks/mock_actions.go -package=mocks wallet-ledger/services Actions

// Actions ... every ledger and profile mutation a client can request. Failures are reported
// through the result, never as an error.
type Actions interface {
	Buy(ctx context.Context, request dto.BuyRequest) dto.ActionResult
	Sell(ctx context.Context, request dto.SellRequest) dto.ActionResult
	Swap(ctx context.Context, request dto.SwapRequest) dto.ActionResult
	Deposit(ctx context.Context, request dto.DepositRequest) dto.ActionResult
	DepositWebhook(ctx context.Context, request dto.DepositWebhookRequest) dto.ActionResult
	UpdateBankDetails(ctx context.Context, caller dto.Session, request dto.BankDetailsRequest) dto.ActionResult
	UpdateRole(ctx context.Context, caller dto.Session, request dto.UpdateRoleRequest) dto.ActionResult
}

// ActionService ...
type ActionService struct {
	Ledger    *LedgerService
	Users     database.IUserRepository
	Validator *validator.Validator
}

// NewActionService ...
func NewActionService(ledger *LedgerService, users database.IUserRepository, validator *validator.Validator) *ActionService {
	return &ActionService{Ledger: ledger, Users: users, Validator: validator}
}

// Buy ...
func (service *ActionService) Buy(ctx context.Context, request dto.BuyRequest) dto.ActionResult {
	if result, ok := service.validate(request); !ok {
		return result
	}
	transaction, err := service.Ledger.Credit(ctx, Credit{
		UserID:      request.UserID,
		AssetSymbol: request.AssetSymbol,
		AssetName:   request.AssetName,
		Amount:      amountOf(request.Amount),
		NairaAmount: amountOf(request.NairaAmount),
		Type:        model.TransactionType.BUY,
	})
	if err != nil {
		return failure("Buy", err)
	}
	return success("Successfully bought "+displayAmount(request.Amount, request.AssetSymbol), TransactionResponse(transaction))
}

// Sell ...
func (service *ActionService) Sell(ctx context.Context, request dto.SellRequest) dto.ActionResult {
	if result, ok := service.validate(request); !ok {
		return result
	}
	transaction, err := service.Ledger.Debit(ctx, Debit{
		UserID:      request.UserID,
		AssetSymbol: request.AssetSymbol,
		Amount:      amountOf(request.Amount),
		NairaAmount: amountOf(request.NairaAmount),
	})
	if err != nil {
		return failure("Sell", err)
	}
	return success("Successfully sold "+displayAmount(request.Amount, request.AssetSymbol), TransactionResponse(transaction))
}

// Swap ...
func (service *ActionService) Swap(ctx context.Context, request dto.SwapRequest) dto.ActionResult {
	if result, ok := service.validate(request); !ok {
		return result
	}
	transaction, err := service.Ledger.Swap(ctx, Swap{
		UserID:          request.UserID,
		FromAssetSymbol: request.FromAssetSymbol,
		ToAssetSymbol:   request.ToAssetSymbol,
		ToAssetName:     request.ToAssetName,
		FromAmount:      amountOf(request.FromAmount),
		ToAmount:        amountOf(request.ToAmount),
	})
	if err != nil {
		return failure("Swap", err)
	}
	return success("Successfully swapped "+displayAmount(request.FromAmount, request.FromAssetSymbol)+" for "+utility.NormalizeSymbol(request.ToAssetSymbol), TransactionResponse(transaction))
}

// Deposit ...
func (service *ActionService) Deposit(ctx context.Context, request dto.DepositRequest) dto.ActionResult {
	if result, ok := service.validate(request); !ok {
		return result
	}
	transaction, err := service.Ledger.Credit(ctx, Credit{
		UserID:      request.UserID,
		AssetSymbol: request.AssetSymbol,
		AssetName:   request.AssetName,
		Amount:      amountOf(request.Amount),
		Type:        model.TransactionType.DEPOSIT,
	})
	if err != nil {
		return failure("Deposit", err)
	}
	return success("Successfully deposited "+displayAmount(request.Amount, request.AssetSymbol), TransactionResponse(transaction))
}

// DepositWebhook ... credits an externally reported deposit through the buy path. Credit failures map to 500.
func (service *ActionService) DepositWebhook(ctx context.Context, request dto.DepositWebhookRequest) dto.ActionResult {
	if result, ok := service.validate(request); !ok {
		return result
	}
	transaction, err := service.Ledger.Credit(ctx, Credit{
		UserID:      request.UserID,
		AssetSymbol: request.Asset,
		AssetName:   request.AssetName,
		Amount:      amountOf(request.Amount),
		Type:        model.TransactionType.BUY,
	})
	if err != nil {
		result := failure("DepositWebhook", err)
		result.Status = http.StatusInternalServerError
		return result
	}
	return success("Successfully credited "+displayAmount(request.Amount, request.Asset), TransactionResponse(transaction))
}

// UpdateBankDetails ... users change their own bank details, admins anyone's
func (service *ActionService) UpdateBankDetails(ctx context.Context, caller dto.Session, request dto.BankDetailsRequest) dto.ActionResult {
	if caller.UserID != request.UserID && caller.Role != model.Role.ADMIN {
		return dto.ActionResult{
			Success: false,
			Code:    errorcode.FORBIDDEN,
			Message: errorcode.OWNER_ONLY,
			Status:  http.StatusForbidden,
		}
	}
	if result, ok := service.validate(request); !ok {
		return result
	}
	user, err := service.Users.UpdateBankDetails(ctx, request.UserID, request.BankName, request.AccountNumber, request.AccountName)
	if err != nil {
		return failure("UpdateBankDetails", err)
	}
	return success("Bank details updated successfully", user)
}

// UpdateRole ... only admins may change roles
func (service *ActionService) UpdateRole(ctx context.Context, caller dto.Session, request dto.UpdateRoleRequest) dto.ActionResult {
	if caller.Role != model.Role.ADMIN {
		return dto.ActionResult{
			Success: false,
			Code:    errorcode.FORBIDDEN,
			Message: errorcode.ADMIN_ONLY,
			Status:  http.StatusForbidden,
		}
	}
	if result, ok := service.validate(request); !ok {
		return result
	}
	user, err := service.Users.UpdateRole(ctx, request.UserID, request.Role)
	if err != nil {
		return failure("UpdateRole", err)
	}
	return success("User role updated to "+user.Role, user)
}

func (service *ActionService) validate(request interface{}) (dto.ActionResult, bool) {
	validationErrors := service.Validator.Struct(request)
	if len(validationErrors) == 0 {
		return dto.ActionResult{}, true
	}
	return dto.ActionResult{
		Success: false,
		Code:    errorcode.VALIDATION_ERR_CODE,
		Message: errorcode.VALIDATION_ERR,
		Status:  http.StatusBadRequest,
		Errors:  validationErrors,
	}, false
}

func success(message string, data interface{}) dto.ActionResult {
	return dto.ActionResult{
		Success: true,
		Code:    errorcode.SUCCESS,
		Message: message,
		Status:  http.StatusOK,
		Data:    data,
	}
}

// failure surfaces business errors verbatim and hides everything else behind a generic message
func failure(action string, err error) dto.ActionResult {
	errType := appError.Type(err)
	switch errType {
	case errorcode.INSUFFICIENT_FUNDS, errorcode.ASSET_NOT_FOUND, errorcode.VALIDATION_ERR_CODE, errorcode.PRICE_FEED_ERR, errorcode.RECORD_NOT_FOUND:
		logger.Info("%s rejected : %s", action, err)
		return dto.ActionResult{Success: false, Code: errType, Message: err.Error(), Status: appError.Code(err)}
	case errorcode.STORAGE_CONFLICT:
		logger.Warning("%s gave up after repeated conflicts : %s", action, err)
		return dto.ActionResult{Success: false, Code: errType, Message: errorcode.STORAGE_CONFLICT_ERR, Status: http.StatusConflict}
	}

	logger.Error("%s failed : %s", action, err)
	sentry.CaptureException(err)
	return dto.ActionResult{
		Success: false,
		Code:    errorcode.SERVER_ERR_CODE,
		Message: errorcode.SYSTEM_ERR,
		Status:  http.StatusInternalServerError,
	}
}

func amountOf(number json.Number) decimal.Decimal {
	if number == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(number.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func displayAmount(number json.Number, assetSymbol string) string {
	return amountOf(number).StringFixed(utility.DisplayDecimals) + " " + utility.NormalizeSymbol(assetSymbol)
}
