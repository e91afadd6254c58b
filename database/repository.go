package database

import (
	"errors"
	"fmt"
	"net/http"
	"wallet-ledger/utility/appError"
	"wallet-ledger/utility/errorcode"
	"wallet-ledger/utility/logger"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
)

// BaseRepository ... Model definition for database base repository
type BaseRepository struct {
	Database
}

// GetByFieldName ... Retrieves a record for the specified model from the database for a given field name
func (repo *BaseRepository) GetByFieldName(field interface{}, model interface{}) error {
	if err := repo.DB.Where(field).First(model).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			logger.Error("Error with repository GetByFieldName : %+v", err)
		}
		return repoError(err)
	}
	return nil
}

// UpdateOrCreate ...
func (repo *BaseRepository) UpdateOrCreate(checkExistOrUpdate interface{}, model interface{}, update interface{}) error {
	if err := repo.DB.Where(checkExistOrUpdate).Assign(update).FirstOrCreate(model).Error; err != nil {
		logger.Error("Error with repository UpdateOrCreate : %s", err)
		return repoError(err)
	}
	return nil
}

func repoError(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return appError.Err{
			ErrType: errorcode.RECORD_NOT_FOUND,
			ErrCode: http.StatusNotFound,
			Err:     err,
		}
	}
	return appError.Err{
		ErrType: errorcode.SERVER_ERR_CODE,
		ErrCode: http.StatusInternalServerError,
		Err:     err,
	}
}

// storeError maps deadlocks, lock wait timeouts and serialization failures reported by the
// database to a conflict, everything else to repoError
func storeError(err error) error {
	if isDriverConflict(err) {
		return conflictError(err)
	}
	return repoError(err)
}

func isDriverConflict(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1213 deadlock, 1205 lock wait timeout
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}

func conflictError(err error) error {
	return appError.Err{
		ErrType: errorcode.STORAGE_CONFLICT,
		ErrCode: http.StatusConflict,
		Err:     err,
	}
}

func notFoundError(userID, assetSymbol string) error {
	return appError.Err{
		ErrType: errorcode.RECORD_NOT_FOUND,
		ErrCode: http.StatusNotFound,
		Err:     fmt.Errorf("no %s balance found for user %s", assetSymbol, userID),
	}
}
