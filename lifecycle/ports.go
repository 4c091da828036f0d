package lifecycle

import "context"

// Summary is the runtime's thumbnail view of one container, as returned
// by a listing call. State is the raw daemon status string; ParseStatus
// maps it onto the closed Status set.
type Summary struct {
	ID    string
	Name  string
	Image string
	State string
}

// Runtime is the container daemon boundary. In production this is the
// Docker Engine API; in tests it is a fake recording call order. Every
// error it returns is opaque and fatal — no call is retried.
type Runtime interface {
	// List returns containers whose name exactly matches name, at most
	// one, including non-running containers.
	List(ctx context.Context, name string) ([]Summary, error)
	// Create creates a container named name from spec and returns the
	// daemon-assigned id.
	Create(ctx context.Context, name string, spec Spec) (string, error)
	Start(ctx context.Context, id string) error
	Stop(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}
