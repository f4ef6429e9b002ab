package repository

import (
	"context"
	"database/sql"
	"fmt"
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
)

// PostgresStore is the LedgerStore backed by PostgreSQL.
type PostgresStore struct {
	DB           *sql.DB
	Customers    *CustomerRepository
	Accounts     *AccountRepository
	Transactions *TransactionRepository
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		DB:           db,
		Customers:    NewCustomerRepository(db),
		Accounts:     NewAccountRepository(db),
		Transactions: NewTransactionRepository(db),
	}
}

func (s *PostgresStore) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.Customers.CreateCustomer(ctx, customer)
}

func (s *PostgresStore) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.Customers.GetCustomerByID(ctx, id)
}

func (s *PostgresStore) CreateAccount(ctx context.Context, account *model.Account) error {
	return s.Accounts.CreateAccount(ctx, account)
}

func (s *PostgresStore) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	return s.Accounts.GetAccountByID(ctx, id)
}

func (s *PostgresStore) GetAccountsByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error) {
	return s.Accounts.GetAccountsByCustomerID(ctx, customerID)
}

func (s *PostgresStore) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	return s.Accounts.SumBalances(ctx)
}

func (s *PostgresStore) GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]*model.Transaction, error) {
	return s.Transactions.GetTransactionsByAccountID(ctx, accountID)
}

// RunInTx begins a database transaction, hands it to fn and commits only if
// fn succeeds. The deferred Rollback is a no-op after a successful Commit.
func (s *PostgresStore) RunInTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", translateError(err))
	}
	defer tx.Rollback()

	if err := fn(&postgresTx{tx: tx, store: s}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", translateError(err))
	}
	return nil
}

type postgresTx struct {
	tx    *sql.Tx
	store *PostgresStore
}

func (t *postgresTx) GetAccountsForUpdate(ctx context.Context, ids ...int64) (map[int64]*model.Account, error) {
	return t.store.Accounts.GetAccountsForUpdate(ctx, t.tx, ids)
}

func (t *postgresTx) UpdateAccountBalances(ctx context.Context, updates []model.BalanceUpdate) error {
	return t.store.Accounts.UpdateAccountBalances(ctx, t.tx, updates)
}

func (t *postgresTx) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	return t.store.Transactions.CreateTransaction(ctx, t.tx, transaction)
}

var _ LedgerStore = (*PostgresStore)(nil)
