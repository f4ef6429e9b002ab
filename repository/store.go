// file: repository/store.go

package repository

import (
	"context"
	"errors"
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a store transaction lost a race with a
	// concurrent writer. It is transient; the whole transaction may be retried.
	ErrConflict = errors.New("concurrent modification conflict")
	// ErrConstraint is returned when a write would break a table constraint
	// (negative balance, non-positive amount, empty name).
	ErrConstraint = errors.New("constraint violation")
)

// LedgerStore is the durable home of customers, accounts and transactions.
type LedgerStore interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error)

	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	GetAccountsByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error)
	SumBalances(ctx context.Context) (decimal.Decimal, error)

	GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]*model.Transaction, error)

	// RunInTx runs fn inside a store transaction. Writes made through the
	// LedgerTx become visible together when fn returns nil and are discarded
	// otherwise. The transaction is released on every path.
	RunInTx(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the set of operations available inside RunInTx.
type LedgerTx interface {
	// GetAccountsForUpdate reads the given accounts and reserves them for
	// writing, in ascending id order. Ids that don't exist are missing from
	// the returned map.
	GetAccountsForUpdate(ctx context.Context, ids ...int64) (map[int64]*model.Account, error)
	// UpdateAccountBalances applies every update or none of them.
	UpdateAccountBalances(ctx context.Context, updates []model.BalanceUpdate) error
	// CreateTransaction appends an immutable transaction record and fills in
	// its id and timestamp once the store has assigned them.
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
}
