package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"gridscan/pkg/domain"
)

const (
	scanResultsTable = "scan_results"
)

// PutResult stores the consensus result for jobID. A conflicting job ID is
// ignored so the first write wins.
func (p *PgSQL) PutResult(ctx context.Context, jobID domain.JobID, result domain.ConsensusResult) error {
	var row PgScanResult
	if err := row.FromDomain(jobID, result); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(scanResultsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store scan result into pg: %w", err)
	}

	return nil
}

// GetResult returns the stored result for jobID, or (nil, nil) when absent.
func (p *PgSQL) GetResult(ctx context.Context, jobID domain.JobID) (*domain.ConsensusResult, error) {
	var row PgScanResult
	found, err := p.Builder.From(scanResultsTable).
		Where(goqu.I("job_id").Eq(uuid.UUID(jobID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan result by job id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

// DeleteResultsBefore removes results created before cutoff.
func (p *PgSQL) DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := p.Builder.Delete(scanResultsTable).
		Where(goqu.I("created_at").Lt(cutoff)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired scan results from pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return deleted, nil
}
