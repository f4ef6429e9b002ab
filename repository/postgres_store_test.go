// file: repository/postgres_store_test.go

package repository

import (
	"context"
	"errors"
	"go-ledger-api/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), dbMock
}

func TestPostgresStore_Customers(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers (name) VALUES ($1) RETURNING id`)).
			WithArgs("Alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		customer := &model.Customer{Name: "Alice"}
		err := store.CreateCustomer(ctx, customer)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing customer", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM customers WHERE id = $1`)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		customer, err := store.GetCustomerByID(ctx, 42)

		assert.Nil(t, customer)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestPostgresStore_CreateAccount(t *testing.T) {
	ctx := context.Background()
	deposit := decimal.RequireFromString("200.00")

	t.Run("success", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (customer_id, balance)`)).
			WithArgs(int64(1), deposit).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt))

		account := &model.Account{CustomerID: 1, Balance: deposit}
		err := store.CreateAccount(ctx, account)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), account.ID)
		assert.Equal(t, createdAt, account.CreatedAt)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown customer violates foreign key", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
			WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"accounts\" violates foreign key constraint"})

		err := store.CreateAccount(ctx, &model.Account{CustomerID: 99, Balance: deposit})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("negative balance violates check", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
			WillReturnError(&pq.Error{Code: "23514", Message: "new row violates check constraint"})

		err := store.CreateAccount(ctx, &model.Account{CustomerID: 1, Balance: decimal.NewFromInt(-1)})

		assert.ErrorIs(t, err, ErrConstraint)
	})

	t.Run("oversized balance overflows numeric column", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
			WillReturnError(&pq.Error{Code: "22003", Message: "numeric field overflow"})

		err := store.CreateAccount(ctx, &model.Account{CustomerID: 1, Balance: decimal.RequireFromString("1e20")})

		assert.ErrorIs(t, err, ErrConstraint)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestPostgresStore_GetTransactionsByAccountID(t *testing.T) {
	ctx := context.Background()

	t.Run("both legs in insertion order", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "from_account_id", "to_account_id", "amount", "created_at"}).
			AddRow(1, 1, 2, "100.0000", now).
			AddRow(2, 3, 1, "5.5000", now)
		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		transactions, err := store.GetTransactionsByAccountID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, int64(1), transactions[0].ID)
		assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, int64(3), transactions[1].FromAccountID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("no history is an empty list", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "from_account_id", "to_account_id", "amount", "created_at"}))

		transactions, err := store.GetTransactionsByAccountID(ctx, 5)

		assert.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Empty(t, transactions)
	})
}

func TestPostgresStore_RunInTx(t *testing.T) {
	ctx := context.Background()
	accountCols := []string{"id", "customer_id", "balance", "created_at"}
	lockQuery := regexp.QuoteMeta(`SELECT id, customer_id, balance, created_at FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`)

	t.Run("commit applies both legs and the record", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		now := time.Now()
		fromBalance := decimal.RequireFromString("100")
		toBalance := decimal.RequireFromString("150")

		dbMock.ExpectBegin()
		dbMock.ExpectQuery(lockQuery).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(accountCols).
				AddRow(1, 1, "200.0000", now).
				AddRow(2, 2, "50.0000", now))
		dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET balance = $1 WHERE id = $2`)).
			WithArgs(fromBalance, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET balance = $1 WHERE id = $2`)).
			WithArgs(toBalance, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))
		dbMock.ExpectCommit()

		transaction := &model.Transaction{FromAccountID: 1, ToAccountID: 2, Amount: decimal.NewFromInt(100)}
		err := store.RunInTx(ctx, func(tx LedgerTx) error {
			accounts, err := tx.GetAccountsForUpdate(ctx, 2, 1)
			if err != nil {
				return err
			}
			assert.Len(t, accounts, 2)
			assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(200)))
			if err := tx.UpdateAccountBalances(ctx, []model.BalanceUpdate{
				{AccountID: 1, Balance: fromBalance},
				{AccountID: 2, Balance: toBalance},
			}); err != nil {
				return err
			}
			return tx.CreateTransaction(ctx, transaction)
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(11), transaction.ID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("callback error rolls back", func(t *testing.T) {
		store, dbMock := newMockStore(t)
		boom := errors.New("boom")

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		err := store.RunInTx(ctx, func(tx LedgerTx) error { return boom })

		assert.Equal(t, boom, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing row on update rolls back", func(t *testing.T) {
		store, dbMock := newMockStore(t)

		dbMock.ExpectBegin()
		dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET balance`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectRollback()

		err := store.RunInTx(ctx, func(tx LedgerTx) error {
			return tx.UpdateAccountBalances(ctx, []model.BalanceUpdate{{AccountID: 9, Balance: decimal.NewFromInt(1)}})
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("deadlock maps to conflict", func(t *testing.T) {
		store, dbMock := newMockStore(t)

		dbMock.ExpectBegin()
		dbMock.ExpectQuery(lockQuery).
			WillReturnError(&pq.Error{Code: "40P01", Message: "deadlock detected"})
		dbMock.ExpectRollback()

		err := store.RunInTx(ctx, func(tx LedgerTx) error {
			_, err := tx.GetAccountsForUpdate(ctx, 1, 2)
			return err
		})

		assert.ErrorIs(t, err, ErrConflict)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("serialization failure on commit maps to conflict", func(t *testing.T) {
		store, dbMock := newMockStore(t)

		dbMock.ExpectBegin()
		dbMock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

		err := store.RunInTx(ctx, func(tx LedgerTx) error { return nil })

		assert.ErrorIs(t, err, ErrConflict)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestPostgresStore_SumBalances(t *testing.T) {
	store, dbMock := newMockStore(t)
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(balance), 0) FROM accounts`)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("250.0000"))

	total, err := store.SumBalances(context.Background())

	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(250)))
}
