package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

func TestReplaceAllHoldings_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := &DB{conn: sqlDB}

	holdings := []*models.Holding{
		{
			Symbol:       "RELIANCE",
			Sector:       models.SectorEnergy,
			Quantity:     decimal.NewFromInt(10),
			AvgPrice:     decimal.NewFromFloat(2450.50),
			LastPrice:    decimal.NewFromFloat(2892.50),
			DayChangePct: 1.2,
		},
		{
			Symbol:       "TCS",
			Sector:       models.SectorIT,
			Quantity:     decimal.NewFromInt(5),
			AvgPrice:     decimal.NewFromInt(3300),
			LastPrice:    decimal.NewFromFloat(3756.80),
			DayChangePct: -0.59,
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM holdings").WillReturnResult(sqlmock.NewResult(0, 2))

	// Two inserts, one for each holding.
	mock.ExpectExec("INSERT INTO holdings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO holdings").WillReturnResult(sqlmock.NewResult(2, 1))

	mock.ExpectCommit()
	// ReplaceAllHoldings defers tx.Rollback(), but database/sql short-circuits
	// Rollback after Commit, so sqlmock never observes it.

	err = db.ReplaceAllHoldings(holdings)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllHoldings_ReturnsErrorIfBeginFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := &DB{conn: sqlDB}

	mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

	err = db.ReplaceAllHoldings([]*models.Holding{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllHoldings_ReturnsErrorIfDeleteFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := &DB{conn: sqlDB}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM holdings").WillReturnError(errors.New("delete failed"))
	mock.ExpectRollback()

	err = db.ReplaceAllHoldings([]*models.Holding{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete existing holdings")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllHoldings_ReturnsErrorIfInsertFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := &DB{conn: sqlDB}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM holdings").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO holdings").WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err = db.ReplaceAllHoldings([]*models.Holding{{
		Symbol:   "RELIANCE",
		Sector:   models.SectorEnergy,
		Quantity: decimal.NewFromInt(1),
		AvgPrice: decimal.NewFromInt(100),
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert holding RELIANCE")

	require.NoError(t, mock.ExpectationsWereMet())
}
