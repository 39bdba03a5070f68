package repository

import (
	"context"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// inChunkSize limits number of bound parameters in a single IN clause
const inChunkSize = 500

// withRetry runs a write, retrying on sqlite lock errors only. Any other error stops retries
// and is returned as is.
func withRetry(ctx context.Context, fn func() error) error {
	var critical error
	err := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second)).Do(ctx, func() error {
		err := fn()
		if err != nil && !isLockError(err) {
			critical = err
			return nil
		}
		return err
	})
	if critical != nil {
		return critical
	}
	return err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// chunks splits ids into slices of at most size elements
func chunks(ids []int64, size int) [][]int64 {
	var res [][]int64
	for size < len(ids) {
		ids, res = ids[size:], append(res, ids[:size])
	}
	if len(ids) > 0 {
		res = append(res, ids)
	}
	return res
}

// dbTime normalizes time for storage, UTC with second precision keeps text ordering correct
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
