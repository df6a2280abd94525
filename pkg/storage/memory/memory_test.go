package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/domain"
	"gridscan/pkg/storage/memory"
)

func testResult(url string) domain.ConsensusResult {
	return domain.ConsensusResult{
		URL:      url,
		ScanDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Statistics: domain.Statistics{
			TotalViolations:      1,
			MinorCount:           1,
			AllEnginesSuccessful: true,
		},
	}
}

func TestGetMissingReturnsNilNil(t *testing.T) {
	s := memory.New()

	res, err := s.GetResult(context.Background(), domain.NewJobID())
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestPutThenGet(t *testing.T) {
	s := memory.New()
	id := domain.NewJobID()

	require.NoError(t, s.PutResult(context.Background(), id, testResult("https://example.com")))

	res, err := s.GetResult(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, "https://example.com", res.URL)
}

func TestFirstWriteWins(t *testing.T) {
	s := memory.New()
	id := domain.NewJobID()

	require.NoError(t, s.PutResult(context.Background(), id, testResult("https://first.example")))
	require.NoError(t, s.PutResult(context.Background(), id, testResult("https://second.example")))

	res, err := s.GetResult(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "https://first.example", res.URL)
}

func TestDeleteResultsBefore(t *testing.T) {
	s := memory.New()
	oldID, newID := domain.NewJobID(), domain.NewJobID()

	require.NoError(t, s.PutResult(context.Background(), oldID, testResult("https://old.example")))
	cutoff := time.Now().Add(time.Minute)
	time.Sleep(time.Millisecond)

	deleted, err := s.DeleteResultsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	require.NoError(t, s.PutResult(context.Background(), newID, testResult("https://new.example")))
	deleted, err = s.DeleteResultsBefore(context.Background(), cutoff.Add(-2*time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 0, deleted)

	res, err := s.GetResult(context.Background(), newID)
	require.NoError(t, err)
	require.NotNil(t, res)
}
