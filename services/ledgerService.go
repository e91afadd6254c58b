package services

import (
	"context"
	"net/http"
	"strings"
	"wallet-ledger/database"
	"wallet-ledger/model"
	"wallet-ledger/utility"
	"wallet-ledger/utility/errorcode"

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// valueDecimals ... Naira values are kept to kobo precision
const valueDecimals = 2

// Credit ... adds Amount to a user's balance of AssetSymbol, creating the balance when absent
type Credit struct {
	UserID      string
	AssetSymbol string
	AssetName   string
	Amount      decimal.Decimal
	NairaAmount decimal.Decimal
	Type        string
}

// Debit ... removes Amount from an existing balance
type Debit struct {
	UserID      string
	AssetSymbol string
	Amount      decimal.Decimal
	NairaAmount decimal.Decimal
}

// Swap ... debits FromAmount of one asset and credits ToAmount of another in one unit.
// A zero ToAmount is priced from the feed.
type Swap struct {
	UserID          string
	FromAssetSymbol string
	ToAssetSymbol   string
	ToAssetName     string
	FromAmount      decimal.Decimal
	ToAmount        decimal.Decimal
}

// LedgerService ... applies balance mutations together with their transaction record, atomically
type LedgerService struct {
	Ledger database.Ledger
	Prices *PriceFeedService
}

// NewLedgerService ...
func NewLedgerService(ledger database.Ledger, prices *PriceFeedService) *LedgerService {
	return &LedgerService{Ledger: ledger, Prices: prices}
}

// Credit ...
func (service *LedgerService) Credit(ctx context.Context, credit Credit) (model.Transaction, error) {
	credit.AssetSymbol = utility.NormalizeSymbol(credit.AssetSymbol)
	if err := checkMutation(credit.UserID, credit.AssetSymbol, credit.Amount); err != nil {
		return model.Transaction{}, err
	}
	if credit.Type == "" {
		credit.Type = model.TransactionType.BUY
	}

	var transaction model.Transaction
	err := service.Ledger.RunTransaction(ctx, func(tx database.LedgerTx) error {
		asset, found, err := tx.GetAsset(credit.UserID, credit.AssetSymbol)
		if err != nil {
			return err
		}
		if !found {
			asset = newUserAsset(credit.UserID, credit.AssetSymbol, credit.AssetName)
		}

		balance, value, err := parseAsset(asset)
		if err != nil {
			return err
		}
		asset.Balance = balance.Add(credit.Amount).String()
		if credit.NairaAmount.IsPositive() {
			asset.Value = value.Add(credit.NairaAmount).Round(valueDecimals).String()
		}
		if asset.Name == "" {
			asset.Name = credit.AssetName
		}
		if err := tx.SaveAsset(&asset); err != nil {
			return err
		}

		transaction = newTransaction(credit.UserID, credit.Type, credit.AssetSymbol, utility.FormatAmount("+", credit.Amount, credit.AssetSymbol))
		transaction.NairaAmount = nairaString(credit.NairaAmount)
		return tx.AppendTransaction(&transaction)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// Debit ...
func (service *LedgerService) Debit(ctx context.Context, debit Debit) (model.Transaction, error) {
	debit.AssetSymbol = utility.NormalizeSymbol(debit.AssetSymbol)
	if err := checkMutation(debit.UserID, debit.AssetSymbol, debit.Amount); err != nil {
		return model.Transaction{}, err
	}

	var transaction model.Transaction
	err := service.Ledger.RunTransaction(ctx, func(tx database.LedgerTx) error {
		asset, found, err := tx.GetAsset(debit.UserID, debit.AssetSymbol)
		if err != nil {
			return err
		}
		if _, err := debitAsset(&asset, found, debit.UserID, debit.AssetSymbol, debit.Amount); err != nil {
			return err
		}
		if err := tx.SaveAsset(&asset); err != nil {
			return err
		}

		transaction = newTransaction(debit.UserID, model.TransactionType.SELL, debit.AssetSymbol, utility.FormatAmount("-", debit.Amount, debit.AssetSymbol))
		transaction.NairaAmount = nairaString(debit.NairaAmount)
		return tx.AppendTransaction(&transaction)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// Swap ...
func (service *LedgerService) Swap(ctx context.Context, swap Swap) (model.Transaction, error) {
	swap.FromAssetSymbol = utility.NormalizeSymbol(swap.FromAssetSymbol)
	swap.ToAssetSymbol = utility.NormalizeSymbol(swap.ToAssetSymbol)
	if err := checkMutation(swap.UserID, swap.FromAssetSymbol, swap.FromAmount); err != nil {
		return model.Transaction{}, err
	}
	if swap.ToAssetSymbol == "" {
		return model.Transaction{}, validationError("toAssetSymbol cannot be blank")
	}
	if swap.FromAssetSymbol == swap.ToAssetSymbol {
		return model.Transaction{}, validationError("Cannot swap %s for itself", swap.FromAssetSymbol)
	}
	if swap.ToAmount.IsNegative() {
		return model.Transaction{}, validationError("toAmount must be a number greater than zero")
	}
	if swap.ToAmount.IsZero() {
		toAmount, err := service.quote(ctx, swap.FromAssetSymbol, swap.ToAssetSymbol, swap.FromAmount)
		if err != nil {
			return model.Transaction{}, err
		}
		swap.ToAmount = toAmount
	}

	var transaction model.Transaction
	err := service.Ledger.RunTransaction(ctx, func(tx database.LedgerTx) error {
		// both legs are read before anything is written
		source, sourceFound, err := tx.GetAsset(swap.UserID, swap.FromAssetSymbol)
		if err != nil {
			return err
		}
		destination, destinationFound, err := tx.GetAsset(swap.UserID, swap.ToAssetSymbol)
		if err != nil {
			return err
		}

		movedValue, err := debitAsset(&source, sourceFound, swap.UserID, swap.FromAssetSymbol, swap.FromAmount)
		if err != nil {
			return err
		}
		if !destinationFound {
			destination = newUserAsset(swap.UserID, swap.ToAssetSymbol, swap.ToAssetName)
		}
		balance, value, err := parseAsset(destination)
		if err != nil {
			return err
		}
		destination.Balance = balance.Add(swap.ToAmount).String()
		destination.Value = value.Add(movedValue).Round(valueDecimals).String()

		// rows are written in symbol order so opposite swaps lock them in the same order
		first, second := &source, &destination
		if destination.AssetSymbol < source.AssetSymbol {
			first, second = second, first
		}
		if err := tx.SaveAsset(first); err != nil {
			return err
		}
		if err := tx.SaveAsset(second); err != nil {
			return err
		}

		amount := utility.FormatAmount("-", swap.FromAmount, swap.FromAssetSymbol) + " / " + utility.FormatAmount("+", swap.ToAmount, swap.ToAssetSymbol)
		transaction = newTransaction(swap.UserID, model.TransactionType.SWAP, swap.FromAssetSymbol, amount)
		transaction.CounterAssetSymbol = swap.ToAssetSymbol
		return tx.AppendTransaction(&transaction)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return transaction, nil
}

// quote ... amount of toSymbol worth amount of fromSymbol at current USD prices
func (service *LedgerService) quote(ctx context.Context, fromSymbol, toSymbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	if service.Prices == nil {
		return decimal.Zero, validationError("toAmount is required")
	}
	fromPrice, err := service.Prices.PriceOf(ctx, fromSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	toPrice, err := service.Prices.PriceOf(ctx, toSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(fromPrice).DivRound(toPrice, 8), nil
}

// debitAsset removes amount from asset and returns the share of its value that left with it
func debitAsset(asset *model.UserAsset, found bool, userID, assetSymbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !found {
		return decimal.Zero, serviceError(http.StatusNotFound, errorcode.ASSET_NOT_FOUND, "No %s balance found for user %s", assetSymbol, userID)
	}
	balance, value, err := parseAsset(*asset)
	if err != nil {
		return decimal.Zero, err
	}
	if balance.LessThan(amount) {
		return decimal.Zero, serviceError(http.StatusBadRequest, errorcode.INSUFFICIENT_FUNDS,
			"Insufficient %s balance: available %s, requested %s", assetSymbol, balance.String(), amount.String())
	}

	movedValue := value
	if !balance.Equal(amount) {
		movedValue = value.Mul(amount).DivRound(balance, valueDecimals)
	}
	asset.Balance = balance.Sub(amount).String()
	asset.Value = value.Sub(movedValue).Round(valueDecimals).String()
	return movedValue, nil
}

func checkMutation(userID, assetSymbol string, amount decimal.Decimal) error {
	if strings.TrimSpace(userID) == "" {
		return validationError("userId cannot be blank")
	}
	if assetSymbol == "" {
		return validationError("assetSymbol cannot be blank")
	}
	if !amount.IsPositive() {
		return validationError("amount must be a number greater than zero")
	}
	return nil
}

func parseAsset(asset model.UserAsset) (decimal.Decimal, decimal.Decimal, error) {
	balance, err := utility.ParseBalance(asset.Balance)
	if err != nil {
		return decimal.Zero, decimal.Zero, serviceError(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE,
			"stored %s balance of user %s is not a number : %s", asset.AssetSymbol, asset.UserID, err)
	}
	value, err := utility.ParseBalance(asset.Value)
	if err != nil {
		return decimal.Zero, decimal.Zero, serviceError(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE,
			"stored %s value of user %s is not a number : %s", asset.AssetSymbol, asset.UserID, err)
	}
	return balance, value, nil
}

func newUserAsset(userID, assetSymbol, assetName string) model.UserAsset {
	if strings.TrimSpace(assetName) == "" {
		assetName = assetSymbol
	}
	return model.UserAsset{
		UserID:      userID,
		AssetSymbol: assetSymbol,
		Name:        assetName,
		Balance:     "0",
		Value:       "0",
	}
}

func newTransaction(userID, transactionType, assetSymbol, amount string) model.Transaction {
	return model.Transaction{
		UserID:            userID,
		Reference:         uuid.NewV4().String(),
		TransactionType:   transactionType,
		TransactionStatus: model.TransactionStatus.COMPLETED,
		AssetSymbol:       assetSymbol,
		Amount:            amount,
	}
}

func nairaString(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return ""
	}
	return amount.StringFixed(valueDecimals)
}
