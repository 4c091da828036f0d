package lifecycle

import (
	"context"
	"fmt"
)

// Observed is a point-in-time snapshot of the container bearing the
// target name. It is valid only at the instant it was fetched and must
// not be cached across reconciliation calls.
type Observed struct {
	// ID is the daemon-assigned identity; empty when Status is
	// StatusAbsent.
	ID     string
	Status Status
}

// Inspect queries the runtime for the container named name. Zero matches
// yield StatusAbsent. A summary without an id, or with a state string
// outside the Docker vocabulary, is an error.
func Inspect(ctx context.Context, rt Runtime, name string) (Observed, error) {
	summaries, err := rt.List(ctx, name)
	if err != nil {
		return Observed{}, fmt.Errorf("list containers named %q: %w", name, err)
	}
	if len(summaries) == 0 {
		return Observed{Status: StatusAbsent}, nil
	}

	s := summaries[0]
	if s.ID == "" {
		return Observed{}, fmt.Errorf("container %q: runtime returned a summary without an id", name)
	}
	status, err := ParseStatus(s.State)
	if err != nil {
		return Observed{}, fmt.Errorf("container %q: %w", name, err)
	}
	return Observed{ID: s.ID, Status: status}, nil
}
