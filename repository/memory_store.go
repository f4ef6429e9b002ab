// file: repository/memory_store.go

package repository

import (
	"context"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type accountRecord struct {
	account model.Account
	// version increases on every committed balance change.
	version uint64
}

// MemoryStore is an embedded LedgerStore that keeps everything in process
// memory. Transactions are optimistic: reads record the account version and
// commit fails with ErrConflict if any of those accounts changed meanwhile.
type MemoryStore struct {
	mu sync.RWMutex

	customers        map[int64]model.Customer
	accounts         map[int64]*accountRecord
	customerAccounts map[int64][]int64

	transactions        []model.Transaction
	accountTransactions map[int64][]int

	nextCustomerID    int64
	nextAccountID     int64
	nextTransactionID int64

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:           make(map[int64]model.Customer),
		accounts:            make(map[int64]*accountRecord),
		customerAccounts:    make(map[int64][]int64),
		accountTransactions: make(map[int64][]int),
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return fmt.Errorf("%w: customer name is empty", ErrConstraint)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCustomerID++
	customer.ID = s.nextCustomerID
	s.customers[customer.ID] = *customer

	logger.Log.WithField("customer_id", customer.ID).Debug("Stored customer in memory")
	return nil
}

func (s *MemoryStore) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (s *MemoryStore) CreateAccount(ctx context.Context, account *model.Account) error {
	if account.Balance.IsNegative() {
		return fmt.Errorf("%w: opening balance is negative", ErrConstraint)
	}
	if !model.IsStorable(account.Balance) {
		return fmt.Errorf("%w: opening balance out of range", ErrConstraint)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[account.CustomerID]; !ok {
		return fmt.Errorf("%w: customer %d", ErrNotFound, account.CustomerID)
	}

	s.nextAccountID++
	account.ID = s.nextAccountID
	account.CreatedAt = s.now()
	s.accounts[account.ID] = &accountRecord{account: *account}
	s.customerAccounts[account.CustomerID] = append(s.customerAccounts[account.CustomerID], account.ID)

	logger.Log.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"customer_id": account.CustomerID,
	}).Debug("Stored account in memory")
	return nil
}

func (s *MemoryStore) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	acc := rec.account
	return &acc, nil
}

func (s *MemoryStore) GetAccountsByCustomerID(ctx context.Context, customerID int64) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.customerAccounts[customerID]
	accounts := make([]*model.Account, 0, len(ids))
	for _, id := range ids {
		acc := s.accounts[id].account
		accounts = append(accounts, &acc)
	}
	return accounts, nil
}

func (s *MemoryStore) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, rec := range s.accounts {
		total = total.Add(rec.account.Balance)
	}
	return total, nil
}

func (s *MemoryStore) GetTransactionsByAccountID(ctx context.Context, accountID int64) ([]*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.accountTransactions[accountID]
	transactions := make([]*model.Transaction, 0, len(idx))
	for _, i := range idx {
		t := s.transactions[i]
		transactions = append(transactions, &t)
	}
	return transactions, nil
}

// RunInTx stages every write made by fn and applies them in one critical
// section. Nothing is visible to other callers until that commit.
func (s *MemoryStore) RunInTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx := &memoryTx{
		store:   s,
		reads:   make(map[int64]uint64),
		updates: make(map[int64]decimal.Decimal),
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

type memoryTx struct {
	store   *MemoryStore
	reads   map[int64]uint64
	updates map[int64]decimal.Decimal
	order   []int64
	pending []*model.Transaction
}

func (t *memoryTx) GetAccountsForUpdate(ctx context.Context, ids ...int64) (map[int64]*model.Account, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	accounts := make(map[int64]*model.Account, len(sorted))
	for _, id := range slices.Compact(sorted) {
		rec, ok := t.store.accounts[id]
		if !ok {
			continue
		}
		if _, seen := t.reads[id]; !seen {
			t.reads[id] = rec.version
		}
		acc := rec.account
		if bal, staged := t.updates[id]; staged {
			acc.Balance = bal
		}
		accounts[id] = &acc
	}
	return accounts, nil
}

func (t *memoryTx) UpdateAccountBalances(ctx context.Context, updates []model.BalanceUpdate) error {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, u := range updates {
		rec, ok := t.store.accounts[u.AccountID]
		if !ok {
			return fmt.Errorf("%w: account %d", ErrNotFound, u.AccountID)
		}
		if u.Balance.IsNegative() {
			return fmt.Errorf("%w: balance of account %d would be negative", ErrConstraint, u.AccountID)
		}
		if !model.IsStorable(u.Balance) {
			return fmt.Errorf("%w: balance of account %d out of range", ErrConstraint, u.AccountID)
		}
		// A blind write still has to be checked against concurrent commits.
		if _, seen := t.reads[u.AccountID]; !seen {
			t.reads[u.AccountID] = rec.version
		}
	}
	for _, u := range updates {
		if _, staged := t.updates[u.AccountID]; !staged {
			t.order = append(t.order, u.AccountID)
		}
		t.updates[u.AccountID] = u.Balance
	}
	return nil
}

func (t *memoryTx) CreateTransaction(ctx context.Context, transaction *model.Transaction) error {
	if !transaction.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive", ErrConstraint)
	}
	t.pending = append(t.pending, transaction)
	return nil
}

func (t *memoryTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, version := range t.reads {
		if s.accounts[id].version != version {
			return fmt.Errorf("%w: account %d changed", ErrConflict, id)
		}
	}
	for _, tr := range t.pending {
		if _, ok := s.accounts[tr.FromAccountID]; !ok {
			return fmt.Errorf("%w: account %d", ErrNotFound, tr.FromAccountID)
		}
		if _, ok := s.accounts[tr.ToAccountID]; !ok {
			return fmt.Errorf("%w: account %d", ErrNotFound, tr.ToAccountID)
		}
	}

	for _, id := range t.order {
		rec := s.accounts[id]
		rec.account.Balance = t.updates[id]
		rec.version++
	}

	now := s.now()
	for _, tr := range t.pending {
		s.nextTransactionID++
		tr.ID = s.nextTransactionID
		tr.CreatedAt = now

		s.transactions = append(s.transactions, *tr)
		i := len(s.transactions) - 1
		s.accountTransactions[tr.FromAccountID] = append(s.accountTransactions[tr.FromAccountID], i)
		if tr.ToAccountID != tr.FromAccountID {
			s.accountTransactions[tr.ToAccountID] = append(s.accountTransactions[tr.ToAccountID], i)
		}
	}
	return nil
}

var _ LedgerStore = (*MemoryStore)(nil)
