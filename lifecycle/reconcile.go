// Package lifecycle converges a single named container onto a desired
// image version. The reconciler owns no state of its own: every call
// re-inspects the daemon, decides the minimal corrective sequence, and
// executes it strictly in order. Any runtime error aborts the whole
// operation with no rollback — a half-converged container is left in
// place for the operator to inspect.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
)

// Reconciler drives one named container toward a desired spec.
type Reconciler struct {
	rt   Runtime
	name string
}

// NewReconciler creates a reconciler for the container named name.
func NewReconciler(rt Runtime, name string) *Reconciler {
	return &Reconciler{rt: rt, name: name}
}

// Run converges to "exactly one container named name, running spec".
// An existing container is always cleared and re-created rather than
// reused: the daemon binds a container's image at creation time, so a
// changed image version can only be picked up by remove-and-recreate.
func (r *Reconciler) Run(ctx context.Context, spec Spec) error {
	obs, err := Inspect(ctx, r.rt, r.name)
	if err != nil {
		return err
	}

	switch obs.Status {
	case StatusAbsent:
		// Nothing to clear.
	case StatusRunning, StatusRestarting:
		if err := r.stopAndRemove(ctx, obs.ID); err != nil {
			return err
		}
	case StatusCreated, StatusPaused, StatusExited, StatusDead:
		// Already non-active; the daemon accepts a remove without a
		// prior stop.
		if err := r.remove(ctx, obs.ID); err != nil {
			return err
		}
	case StatusEmpty, StatusRemoving:
		// No corrective action. If the daemon has not finished removing
		// the old container, the create below fails with a name
		// conflict rather than waiting for the name to free up.
		slog.Warn("Container state is indeterminate, creating anyway.",
			"name", r.name, "status", obs.Status.String())
	}

	return r.createAndStart(ctx, spec)
}

// End stops and removes the named container regardless of its status.
// It returns false when no container matched — a normal outcome, not an
// error.
func (r *Reconciler) End(ctx context.Context) (bool, error) {
	obs, err := Inspect(ctx, r.rt, r.name)
	if err != nil {
		return false, err
	}
	if obs.Status == StatusAbsent {
		return false, nil
	}
	if err := r.stopAndRemove(ctx, obs.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Reconciler) createAndStart(ctx context.Context, spec Spec) error {
	id, err := r.rt.Create(ctx, r.name, spec)
	if err != nil {
		return fmt.Errorf("create container %q: %w", r.name, err)
	}
	slog.Info("Created container.", "name", r.name, "id", id, "image", spec.Image)

	if err := r.rt.Start(ctx, id); err != nil {
		return fmt.Errorf("start container %q: %w", r.name, err)
	}
	slog.Info("Started container.", "name", r.name, "id", id)
	return nil
}

// stopAndRemove is strictly sequential: the remove must observe the
// container already stopped, so a stop failure prevents the remove.
func (r *Reconciler) stopAndRemove(ctx context.Context, id string) error {
	if err := r.rt.Stop(ctx, id); err != nil {
		return fmt.Errorf("stop container %q: %w", r.name, err)
	}
	slog.Info("Stopped container.", "name", r.name, "id", id)
	return r.remove(ctx, id)
}

func (r *Reconciler) remove(ctx context.Context, id string) error {
	if err := r.rt.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove container %q: %w", r.name, err)
	}
	slog.Info("Removed container.", "name", r.name, "id", id)
	return nil
}
