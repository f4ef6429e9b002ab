// file: service/account_service_test.go

package service

import (
	"context"
	"errors"
	"go-ledger-api/model"
	"go-ledger-api/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistry(store repository.LedgerStore) (*CustomerService, *AccountService) {
	customers := NewCustomerService(store, nil, 0)
	return customers, NewAccountService(store, customers)
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	customers, accounts := newRegistry(store)

	alice, err := customers.CreateCustomer(ctx, "Alice")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		details, err := accounts.CreateAccount(ctx, alice.ID, dec("200.0"))

		require.NoError(t, err)
		assert.NotZero(t, details.AccountID)
		assert.Equal(t, alice.ID, details.CustomerID)
		assert.Equal(t, "Alice", details.CustomerName)
		assert.True(t, details.Balance.Equal(dec("200")))
	})

	t.Run("zero deposit is allowed", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, alice.ID, dec("0"))
		assert.NoError(t, err)
	})

	t.Run("negative deposit", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, alice.ID, dec("-0.01"))
		assert.Equal(t, ErrInvalidDeposit, err)
	})

	t.Run("too many decimal places", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, alice.ID, dec("1.00001"))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("deposit out of range", func(t *testing.T) {
		for _, deposit := range []string{"1e16", "1e20", "1e2000000"} {
			_, err := accounts.CreateAccount(ctx, alice.ID, dec(deposit))
			assert.Equal(t, ErrInvalidDeposit, err, deposit)
		}

		total, err := NewQueryService(store).TotalBalance(ctx)
		require.NoError(t, err)
		assert.True(t, model.WithinRange(total))
	})

	t.Run("largest storable deposit", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, alice.ID, dec("9999999999999999.9999"))
		assert.NoError(t, err)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, 4242, dec("10"))
		assert.Equal(t, ErrCustomerNotFound, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockStore := new(mockLedgerStore)
		_, svc := newRegistry(mockStore)
		dbErr := errors.New("db error")
		mockStore.On("GetCustomerByID", mock.Anything, int64(1)).Return(&model.Customer{ID: 1, Name: "Zed"}, nil).Once()
		mockStore.On("CreateAccount", mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := svc.CreateAccount(ctx, 1, dec("1"))

		assert.ErrorIs(t, err, dbErr)
		mockStore.AssertExpectations(t)
	})
}

func TestAccountService_ListAccountsForCustomer(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	customers, accounts := newRegistry(store)

	bob, err := customers.CreateCustomer(ctx, "Bob")
	require.NoError(t, err)

	t.Run("no accounts yet", func(t *testing.T) {
		list, err := accounts.ListAccountsForCustomer(ctx, bob.ID)
		assert.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("lists owned accounts", func(t *testing.T) {
		first, err := accounts.CreateAccount(ctx, bob.ID, dec("1"))
		require.NoError(t, err)
		second, err := accounts.CreateAccount(ctx, bob.ID, dec("2"))
		require.NoError(t, err)

		list, err := accounts.ListAccountsForCustomer(ctx, bob.ID)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.AccountID, list[0].ID)
		assert.Equal(t, second.AccountID, list[1].ID)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := accounts.ListAccountsForCustomer(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
