package service

import (
	"slices"
	"sync"
)

type accountLock struct {
	mu   sync.Mutex
	refs int
}

// lockTable hands out one mutex per account id. Entries exist only while
// somebody holds or waits for them.
type lockTable struct {
	mu    sync.Mutex
	locks map[int64]*accountLock
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[int64]*accountLock)}
}

// acquire blocks until every listed account is locked and returns the
// function that releases them. Locks are always taken in ascending id order,
// so two callers naming the same accounts in any order cannot deadlock.
func (t *lockTable) acquire(ids ...int64) (release func()) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*accountLock, len(sorted))
	t.mu.Lock()
	for i, id := range sorted {
		l, ok := t.locks[id]
		if !ok {
			l = &accountLock{}
			t.locks[id] = l
		}
		l.refs++
		held[i] = l
	}
	t.mu.Unlock()

	for _, l := range held {
		l.mu.Lock()
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].mu.Unlock()
		}

		t.mu.Lock()
		for i, id := range sorted {
			held[i].refs--
			if held[i].refs == 0 {
				delete(t.locks, id)
			}
		}
		t.mu.Unlock()
	}
}
