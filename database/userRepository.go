package database

import (
	"context"
	"time"
	"wallet-ledger/model"
	"wallet-ledger/utility/logger"

	"cloud.google.com/go/firestore"
	"github.com/jinzhu/gorm"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserRepository ... relational profile store
type UserRepository struct {
	BaseRepository
}

// GetUser ...
func (repo *UserRepository) GetUser(ctx context.Context, userID string) (model.User, error) {
	user := model.User{}
	err := repo.GetByFieldName(model.User{ID: userID}, &user)
	return user, err
}

// UpdateBankDetails ... creates the profile with the buyer role when it does not exist yet
func (repo *UserRepository) UpdateBankDetails(ctx context.Context, userID, bankName, accountNumber, accountName string) (model.User, error) {
	user := model.User{}
	update := model.User{BankName: bankName, AccountNumber: accountNumber, AccountName: accountName}
	if err := repo.DB.Where(model.User{ID: userID}).Attrs(model.User{Role: model.Role.BUYER}).Assign(update).FirstOrCreate(&user).Error; err != nil {
		logger.Error("Error with repository UpdateBankDetails : %s", err)
		return user, repoError(err)
	}
	return user, nil
}

// UpdateRole ...
func (repo *UserRepository) UpdateRole(ctx context.Context, userID, role string) (model.User, error) {
	user := model.User{}
	err := repo.UpdateOrCreate(model.User{ID: userID}, &user, model.User{Role: role})
	return user, err
}

type userDocument struct {
	Role          string    `firestore:"role"`
	BankName      string    `firestore:"bankName,omitempty"`
	AccountNumber string    `firestore:"accountNumber,omitempty"`
	AccountName   string    `firestore:"accountName,omitempty"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

// FirestoreUserRepository ... profiles stored at users/{uid}
type FirestoreUserRepository struct {
	Client *firestore.Client
}

// GetUser ...
func (repo *FirestoreUserRepository) GetUser(ctx context.Context, userID string) (model.User, error) {
	snapshot, err := repo.Client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.User{}, repoError(gorm.ErrRecordNotFound)
		}
		logger.Error("Error with firestore GetUser : %s", err)
		return model.User{}, repoError(err)
	}
	document := userDocument{}
	if err := snapshot.DataTo(&document); err != nil {
		return model.User{}, repoError(err)
	}
	return model.User{
		ID:            userID,
		Role:          document.Role,
		BankName:      document.BankName,
		AccountNumber: document.AccountNumber,
		AccountName:   document.AccountName,
		CreatedAt:     snapshot.CreateTime,
		UpdatedAt:     document.UpdatedAt,
	}, nil
}

// UpdateBankDetails ...
func (repo *FirestoreUserRepository) UpdateBankDetails(ctx context.Context, userID, bankName, accountNumber, accountName string) (model.User, error) {
	return repo.merge(ctx, userID, map[string]interface{}{
		"bankName":      bankName,
		"accountNumber": accountNumber,
		"accountName":   accountName,
		"updatedAt":     time.Now().UTC(),
	})
}

// UpdateRole ...
func (repo *FirestoreUserRepository) UpdateRole(ctx context.Context, userID, role string) (model.User, error) {
	return repo.merge(ctx, userID, map[string]interface{}{
		"role":      role,
		"updatedAt": time.Now().UTC(),
	})
}

func (repo *FirestoreUserRepository) merge(ctx context.Context, userID string, fields map[string]interface{}) (model.User, error) {
	if _, err := repo.Client.Collection("users").Doc(userID).Set(ctx, fields, firestore.MergeAll); err != nil {
		logger.Error("Error with firestore user update : %s", err)
		return model.User{}, repoError(err)
	}
	return repo.GetUser(ctx, userID)
}
