package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gridscan/pkg/domain"
)

type PgScanResult struct {
	JobID uuid.UUID `db:"job_id"`

	URL    string          `db:"url"`
	Result json.RawMessage `db:"result"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScanResult) ToDomain() (*domain.ConsensusResult, error) {
	var result domain.ConsensusResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal consensus result: %w", err)
	}

	return &result, nil
}

func (p *PgScanResult) FromDomain(jobID domain.JobID, result domain.ConsensusResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal consensus result: %w", err)
	}

	*p = PgScanResult{
		JobID:  uuid.UUID(jobID),
		URL:    result.URL,
		Result: b,
	}

	return nil
}
