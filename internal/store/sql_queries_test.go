package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoughtforge-ai/thoughtforge-go/models"
)

func Test_buildListRunsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListRunsQuery(RunFilter{})
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from runs")
	require.Contains(t, q, "order by started_at desc")
	require.NotContains(t, q, "where")
	require.NotContains(t, q, "limit")
}

func Test_buildListRunsQuery_StatusFilter(t *testing.T) {
	query, args, err := buildListRunsQuery(RunFilter{Status: models.RunStatusCompleted})
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, models.RunStatusCompleted, args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where")
	require.Contains(t, q, "status")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
}

func Test_buildListRunsQuery_Limit(t *testing.T) {
	query, _, err := buildListRunsQuery(RunFilter{Limit: 10})
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "limit 10")
}

func Test_buildListRunsQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListRunsQuery(RunFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"id",
		"session_id",
		"params_file",
		"host",
		"port",
		"status",
		"steps",
		"started_at",
		"finished_at",
	}
	for _, col := range cols {
		require.Contains(t, q, col)
	}
}
