package database

import (
	"context"
	"fmt"
	"time"
	"wallet-ledger/config"
	"wallet-ledger/model"
	"wallet-ledger/utility/logger"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	uuid "github.com/satori/go.uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewFirestoreClient ... builds the firebase app and its firestore client. Called once at start up.
func NewFirestoreClient(ctx context.Context, config config.Data) (*firestore.Client, error) {
	var options []option.ClientOption
	if config.FirebaseCredentials != "" {
		options = append(options, option.WithCredentialsFile(config.FirebaseCredentials))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.FirebaseProjectID}, options...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app : %s", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore client : %s", err)
	}
	return client, nil
}

type assetDocument struct {
	Name      string    `firestore:"name"`
	Balance   string    `firestore:"balance"`
	Value     string    `firestore:"value"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type transactionDocument struct {
	Reference          string      `firestore:"reference"`
	Type               string      `firestore:"type"`
	Status             string      `firestore:"status"`
	AssetSymbol        string      `firestore:"assetSymbol"`
	CounterAssetSymbol string      `firestore:"counterAssetSymbol,omitempty"`
	Amount             string      `firestore:"amount"`
	NairaAmount        string      `firestore:"nairaAmount,omitempty"`
	Date               string      `firestore:"date"`
	Timestamp          interface{} `firestore:"timestamp"`
}

// FirestoreLedger ... Ledger over the document store. Balances live at users/{uid}/assets/{SYMBOL}
// and history at users/{uid}/transactions/{id}. Conflicting transactions are retried by the client.
type FirestoreLedger struct {
	Client      *firestore.Client
	MaxAttempts int
}

// NewFirestoreLedger ...
func NewFirestoreLedger(client *firestore.Client, maxAttempts int) *FirestoreLedger {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &FirestoreLedger{Client: client, MaxAttempts: maxAttempts}
}

func (ledger *FirestoreLedger) assets(userID string) *firestore.CollectionRef {
	return ledger.Client.Collection("users").Doc(userID).Collection("assets")
}

func (ledger *FirestoreLedger) transactions(userID string) *firestore.CollectionRef {
	return ledger.Client.Collection("users").Doc(userID).Collection("transactions")
}

// RunTransaction ...
func (ledger *FirestoreLedger) RunTransaction(ctx context.Context, fn func(tx LedgerTx) error) error {
	err := ledger.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreLedgerTx{ledger: ledger, tx: tx})
	}, firestore.MaxAttempts(ledger.MaxAttempts))
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.Aborted {
		return conflictError(err)
	}
	return err
}

// FetchAssets ...
func (ledger *FirestoreLedger) FetchAssets(ctx context.Context, userID string) ([]model.UserAsset, error) {
	assets := []model.UserAsset{}
	iter := ledger.assets(userID).Documents(ctx)
	defer iter.Stop()
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Error with firestore FetchAssets : %s", err)
			return nil, repoError(err)
		}
		asset, err := toUserAsset(userID, snapshot)
		if err != nil {
			return nil, repoError(err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// GetAsset ...
func (ledger *FirestoreLedger) GetAsset(ctx context.Context, userID, assetSymbol string) (model.UserAsset, error) {
	snapshot, err := ledger.assets(userID).Doc(assetSymbol).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.UserAsset{}, notFoundError(userID, assetSymbol)
		}
		logger.Error("Error with firestore GetAsset : %s", err)
		return model.UserAsset{}, repoError(err)
	}
	asset, err := toUserAsset(userID, snapshot)
	if err != nil {
		return model.UserAsset{}, repoError(err)
	}
	return asset, nil
}

// FetchTransactions ...
func (ledger *FirestoreLedger) FetchTransactions(ctx context.Context, userID string, limit int) ([]model.Transaction, error) {
	query := ledger.transactions(userID).OrderBy("timestamp", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	snapshots, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Error with firestore FetchTransactions : %s", err)
		return nil, repoError(err)
	}

	transactions := make([]model.Transaction, 0, len(snapshots))
	for _, snapshot := range snapshots {
		document := transactionDocument{}
		if err := snapshot.DataTo(&document); err != nil {
			return nil, repoError(err)
		}
		transaction := model.Transaction{
			UserID:             userID,
			Reference:          document.Reference,
			TransactionType:    document.Type,
			TransactionStatus:  document.Status,
			AssetSymbol:        document.AssetSymbol,
			CounterAssetSymbol: document.CounterAssetSymbol,
			Amount:             document.Amount,
			NairaAmount:        document.NairaAmount,
			Date:               document.Date,
		}
		if id, err := uuid.FromString(snapshot.Ref.ID); err == nil {
			transaction.ID = id
		}
		if timestamp, ok := document.Timestamp.(time.Time); ok {
			transaction.Timestamp = timestamp
		}
		transaction.CreatedAt = snapshot.CreateTime
		transaction.UpdatedAt = snapshot.UpdateTime
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

type firestoreLedgerTx struct {
	ledger *FirestoreLedger
	tx     *firestore.Transaction
}

func (ltx *firestoreLedgerTx) GetAsset(userID, assetSymbol string) (model.UserAsset, bool, error) {
	snapshot, err := ltx.tx.Get(ltx.ledger.assets(userID).Doc(assetSymbol))
	if status.Code(err) == codes.NotFound {
		return model.UserAsset{}, false, nil
	}
	if err != nil {
		return model.UserAsset{}, false, err
	}
	asset, err := toUserAsset(userID, snapshot)
	if err != nil {
		return model.UserAsset{}, false, repoError(err)
	}
	return asset, true, nil
}

// SaveAsset ... the document's update time stands in for the version; the client validates it at commit
func (ltx *firestoreLedgerTx) SaveAsset(asset *model.UserAsset) error {
	now := time.Now().UTC()
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = now
	}
	asset.UpdatedAt = now
	document := assetDocument{
		Name:      asset.Name,
		Balance:   asset.Balance,
		Value:     asset.Value,
		CreatedAt: asset.CreatedAt,
		UpdatedAt: asset.UpdatedAt,
	}
	if err := ltx.tx.Set(ltx.ledger.assets(asset.UserID).Doc(asset.AssetSymbol), document); err != nil {
		return err
	}
	asset.Version++
	return nil
}

func (ltx *firestoreLedgerTx) AppendTransaction(transaction *model.Transaction) error {
	if uuid.Equal(transaction.ID, uuid.Nil) {
		transaction.ID = uuid.NewV4()
	}
	now := time.Now().UTC()
	transaction.Timestamp = now
	if transaction.Date == "" {
		transaction.Date = now.Format(model.TransactionDateLayout)
	}
	document := transactionDocument{
		Reference:          transaction.Reference,
		Type:               transaction.TransactionType,
		Status:             transaction.TransactionStatus,
		AssetSymbol:        transaction.AssetSymbol,
		CounterAssetSymbol: transaction.CounterAssetSymbol,
		Amount:             transaction.Amount,
		NairaAmount:        transaction.NairaAmount,
		Date:               transaction.Date,
		Timestamp:          firestore.ServerTimestamp,
	}
	return ltx.tx.Create(ltx.ledger.transactions(transaction.UserID).Doc(transaction.ID.String()), document)
}

func toUserAsset(userID string, snapshot *firestore.DocumentSnapshot) (model.UserAsset, error) {
	document := assetDocument{}
	if err := snapshot.DataTo(&document); err != nil {
		return model.UserAsset{}, err
	}
	asset := model.UserAsset{
		UserID:      userID,
		AssetSymbol: snapshot.Ref.ID,
		Name:        document.Name,
		Balance:     document.Balance,
		Value:       document.Value,
	}
	// any stored document counts as version 1 so SaveAsset treats it as existing
	asset.Version = 1
	asset.CreatedAt = document.CreatedAt
	asset.UpdatedAt = document.UpdatedAt
	return asset, nil
}
