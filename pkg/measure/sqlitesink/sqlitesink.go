// Package sqlitesink stores computed measures in a SQLite database.
package sqlitesink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver.

	"github.com/Sumatoshi-tech/scanreport/pkg/measure"
	"github.com/Sumatoshi-tech/scanreport/pkg/rules"
	"github.com/Sumatoshi-tech/scanreport/pkg/tree"
)

const schema = `
CREATE TABLE IF NOT EXISTS measures (
	analysis      TEXT NOT NULL,
	component_ref INTEGER NOT NULL,
	component_key TEXT NOT NULL,
	metric        TEXT NOT NULL,
	rule_key      TEXT NOT NULL DEFAULT '',
	value         INTEGER NOT NULL,
	PRIMARY KEY (analysis, component_ref, metric, rule_key)
) WITHOUT ROWID;
`

const insertMeasure = `
INSERT INTO measures (analysis, component_ref, component_key, metric, rule_key, value)
VALUES (?, ?, ?, ?, ?, ?)
`

// Sink writes measures of one analysis inside a single transaction that is
// committed by Close.
type Sink struct {
	db       *sql.DB
	tx       *sql.Tx
	insert   *sql.Stmt
	analysis string
}

var _ measure.Sink = (*Sink)(nil)

// Open opens or creates the database at path and starts a transaction for
// the measures of analysis.
func Open(ctx context.Context, path, analysis string) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	_, err = db.ExecContext(ctx, schema)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create schema: %w", err), db.Close())
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("begin: %w", err), db.Close())
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM measures WHERE analysis = ?`, analysis)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("reset analysis: %w", err), tx.Rollback(), db.Close())
	}

	stmt, err := tx.PrepareContext(ctx, insertMeasure)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("prepare insert: %w", err), tx.Rollback(), db.Close())
	}

	return &Sink{db: db, tx: tx, insert: stmt, analysis: analysis}, nil
}

// Add implements measure.Sink.
func (s *Sink) Add(c *tree.Component, m measure.Measure) error {
	_, err := s.insert.Exec(s.analysis, c.Ref, c.Key, m.Metric, string(m.Rule), m.Value)
	if err != nil {
		return fmt.Errorf("insert %s on component %d: %w", m.Metric, c.Ref, err)
	}

	return nil
}

// Close commits the measures and closes the database.
func (s *Sink) Close() error {
	stmtErr := s.insert.Close()

	err := s.tx.Commit()
	if err != nil {
		err = fmt.Errorf("commit measures: %w", err)
	}

	return errors.Join(stmtErr, err, s.db.Close())
}

// Abort discards the measures and closes the database.
func (s *Sink) Abort() error {
	return errors.Join(s.insert.Close(), s.tx.Rollback(), s.db.Close())
}

// Row is one stored measure.
type Row struct {
	ComponentKey string
	Metric       string
	Rule         rules.Key
	Value        int64
	ComponentRef int32
}

// Query returns every measure stored for analysis, ordered by component,
// metric and rule.
func Query(ctx context.Context, path, analysis string) ([]Row, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT component_ref, component_key, metric, rule_key, value
		FROM measures WHERE analysis = ?
		ORDER BY component_ref, metric, rule_key`, analysis)
	if err != nil {
		return nil, fmt.Errorf("query measures: %w", err)
	}

	defer rows.Close()

	var out []Row

	for rows.Next() {
		var (
			row  Row
			rule string
		)

		err = rows.Scan(&row.ComponentRef, &row.ComponentKey, &row.Metric, &rule, &row.Value)
		if err != nil {
			return nil, fmt.Errorf("scan measure: %w", err)
		}

		row.Rule = rules.Key(rule)
		out = append(out, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate measures: %w", err)
	}

	return out, nil
}
