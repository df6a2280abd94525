// Package compliance decides whether a domain may be scanned at all. The
// gate runs before any network traffic is issued for a job; a denial is
// terminal and never retried.
package compliance

import (
	"context"
)

// Decision is the outcome of a compliance check. Reasons are only populated
// when the domain is denied and are surfaced verbatim to the caller.
type Decision struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons,omitempty"`
}

// Gate checks a domain against the compliance policy. An error return means
// the check itself could not run and the caller may retry; a denied Decision
// is a definitive answer.
//
//go:generate mockgen -package mockcompliance -source=interface.go -destination=mock/mockcompliance.go *
type Gate interface {
	Check(ctx context.Context, domain string) (Decision, error)
}
