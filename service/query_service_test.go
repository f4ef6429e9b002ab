package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryService(t *testing.T) {
	ctx := context.Background()
	f := newLedgerFixture()
	a := f.openAccount(t, "A", "10.25")
	b := f.openAccount(t, "B", "0")

	t.Run("balance reads are repeatable", func(t *testing.T) {
		first, err := f.queries.BalanceOf(ctx, a)
		require.NoError(t, err)
		second, err := f.queries.BalanceOf(ctx, a)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, first.Balance.Equal(dec("10.25")))
	})

	t.Run("unknown account balance", func(t *testing.T) {
		_, err := f.queries.BalanceOf(ctx, 12345)
		assert.Equal(t, ErrAccountNotFound, err)
	})

	t.Run("unknown account has empty history", func(t *testing.T) {
		history, err := f.queries.TransactionsOf(ctx, 12345)
		assert.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("history holds both legs in creation order", func(t *testing.T) {
		first, err := f.transfers.TransferMoney(ctx, a, b, dec("5"))
		require.NoError(t, err)
		second, err := f.transfers.TransferMoney(ctx, b, a, dec("1.5"))
		require.NoError(t, err)

		history, err := f.queries.TransactionsOf(ctx, a)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, first.ID, history[0].ID)
		assert.Equal(t, second.ID, history[1].ID)
	})

	t.Run("total balance", func(t *testing.T) {
		total, err := f.queries.TotalBalance(ctx)
		assert.NoError(t, err)
		assert.True(t, total.Equal(dec("10.25")))
	})

	t.Run("store error on total", func(t *testing.T) {
		store := new(mockLedgerStore)
		store.On("SumBalances", mock.Anything).Return(decimal.Zero, errors.New("db down")).Once()

		_, err := NewQueryService(store).TotalBalance(ctx)

		assert.Error(t, err)
	})
}
