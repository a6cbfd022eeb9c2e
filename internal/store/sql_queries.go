package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createRun = `
		INSERT INTO runs (
			id,
			session_id,
			params_file,
			host,
			port,
			status,
			steps,
			started_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	finishRun = `
		UPDATE runs SET
			status      = ?,
			steps       = ?,
			finished_at = CURRENT_TIMESTAMP
		WHERE id = ?;`

	getRun = `
		SELECT
			id,
			session_id,
			params_file,
			host,
			port,
			status,
			steps,
			started_at,
			finished_at
		FROM runs
		WHERE id = ?;`

	appendRunLog = `
		INSERT INTO run_logs (run_id, seq, message, logged_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM run_logs WHERE run_id = ?), ?, ?);`

	getRunLogs = `
		SELECT message
		FROM run_logs
		WHERE run_id = ?
		ORDER BY seq;`

	saveSnapshot = `
		INSERT INTO snapshots (id, run_id, name, specification, model_data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			run_id        = excluded.run_id,
			specification = excluded.specification,
			model_data    = excluded.model_data,
			created_at    = excluded.created_at;`

	getSnapshot = `
		SELECT id, run_id, name, specification, model_data, created_at
		FROM snapshots
		WHERE name = ?;`

	listSnapshots = `
		SELECT id, run_id, name, created_at
		FROM snapshots
		ORDER BY created_at DESC;`
)

// buildListRunsQuery builds the filtered run listing dynamically: the status
// predicate and the limit are present only when the filter sets them.
func buildListRunsQuery(filter RunFilter) (string, []any, error) {
	builder := sq.Select(
		"id",
		"session_id",
		"params_file",
		"host",
		"port",
		"status",
		"steps",
		"started_at",
		"finished_at",
	).
		From("runs").
		OrderBy("started_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
