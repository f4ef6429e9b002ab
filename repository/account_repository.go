package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount adds a new account with its opening balance.
// An unknown customer surfaces as ErrNotFound through the foreign key.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"customer_id": account.CustomerID,
		"balance":     account.Balance.String(),
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (customer_id, balance) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, account.CustomerID, account.Balance).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return translateError(err)
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	account := &model.Account{}
	query := `SELECT id, customer_id, balance, created_at FROM accounts WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&account.ID, &account.CustomerID, &account.Balance, &account.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.WithError(err).WithField("account_id", id).Error("Failed to execute get account query")
		}
		return nil, translateError(err)
	}
	return account, nil
}

// GetAccountsByCustomerID retrieves all accounts owned by a customer, oldest first.
func (r *AccountRepository) GetAccountsByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error) {
	log := logger.Log.WithField("customer_id", customerID)
	log.Info("Executing query to get accounts by customer ID")

	query := `SELECT id, customer_id, balance, created_at FROM accounts WHERE customer_id = $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by customer ID")
		return nil, translateError(err)
	}
	defer rows.Close()

	accounts := make([]*model.Account, 0)
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.CustomerID, &acc.Balance, &acc.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// SumBalances returns the total of every account balance.
func (r *AccountRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts`
	if err := r.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		logger.Log.WithError(err).Error("Failed to execute sum balances query")
		return decimal.Zero, translateError(err)
	}
	return total, nil
}

// GetAccountsForUpdate row-locks the given accounts. ORDER BY id makes every
// caller acquire the row locks in the same order.
func (r *AccountRepository) GetAccountsForUpdate(ctx context.Context, tx *sql.Tx, ids []int64) (map[int64]*model.Account, error) {
	log := logger.Log.WithField("account_ids", ids)
	log.Info("Executing query to get accounts for update")

	query := `SELECT id, customer_id, balance, created_at FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		log.WithError(err).Error("Failed to execute get accounts for update query")
		return nil, translateError(err)
	}
	defer rows.Close()

	accounts := make(map[int64]*model.Account, len(ids))
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.CustomerID, &acc.Balance, &acc.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts[acc.ID] = &acc
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return accounts, nil
}

// UpdateAccountBalances writes every new balance inside tx.
func (r *AccountRepository) UpdateAccountBalances(ctx context.Context, tx *sql.Tx, updates []model.BalanceUpdate) error {
	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	for _, u := range updates {
		log := logger.Log.WithFields(logrus.Fields{
			"account_id":  u.AccountID,
			"new_balance": u.Balance.String(),
		})
		log.Info("Executing query to update account balance")

		res, err := tx.ExecContext(ctx, query, u.Balance, u.AccountID)
		if err != nil {
			log.WithError(err).Error("Failed to execute update account balance query")
			return translateError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n != 1 {
			return fmt.Errorf("%w: account %d", ErrNotFound, u.AccountID)
		}
	}
	return nil
}
