package enrichment

import (
	"context"
	"database/sql"
	"errors"

	pkgerrors "bodygraph/pkg/errors"
)

// PostgresStore serves reference labels from PostgreSQL. The tables are
// read-only seed data loaded out of band.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GateLabel(ctx context.Context, gate int) (GateInfo, error) {
	var info GateInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT name, summary FROM gates WHERE gate_number = $1`,
		gate,
	).Scan(&info.Name, &info.Summary)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GateInfo{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "gate %d not found", gate)
		}
		return GateInfo{}, pkgerrors.Wrap(pkgerrors.CodeInternal, "query gate label", err)
	}
	return info, nil
}

func (s *PostgresStore) LineLabel(ctx context.Context, gate, line int) (LineInfo, error) {
	var info LineInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT name, description FROM gate_lines WHERE gate_number = $1 AND line_number = $2`,
		gate, line,
	).Scan(&info.Name, &info.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineInfo{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "gate %d line %d not found", gate, line)
		}
		return LineInfo{}, pkgerrors.Wrap(pkgerrors.CodeInternal, "query line label", err)
	}
	return info, nil
}

var _ Store = (*PostgresStore)(nil)
