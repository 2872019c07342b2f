// Package integration provides utilities for postgres integration testing
package integration

import (
	"context"
	"testing"

	"currencyrates/internal/models"
	"currencyrates/internal/testutil"

	"github.com/stretchr/testify/require"
)

// TestContext wraps testutil.TestContext with raw SQL helpers used to check
// what actually reached the tables
type TestContext struct {
	*testutil.TestContext
}

// NewTestContext creates a new test context for postgres integration tests
func NewTestContext(t *testing.T) *TestContext {
	return &TestContext{TestContext: testutil.NewTestContext(t)}
}

// StoredCurrencyStatus reads the status column of a currency row
func (tc *TestContext) StoredCurrencyStatus(id int64) models.CurrencyStatus {
	tc.T.Helper()
	var status models.CurrencyStatus
	err := tc.DB.QueryRowContext(context.Background(),
		"SELECT status FROM currencies WHERE id = $1", id).Scan(&status)
	require.NoError(tc.T, err)
	return status
}

// CountRows returns the number of rows in table
func (tc *TestContext) CountRows(table string) int {
	tc.T.Helper()
	var n int
	err := tc.DB.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(tc.T, err)
	return n
}

// ExecuteSQL executes a raw SQL query for testing
func (tc *TestContext) ExecuteSQL(query string, args ...interface{}) {
	tc.T.Helper()
	_, err := tc.DB.ExecContext(context.Background(), query, args...)
	require.NoError(tc.T, err)
}
