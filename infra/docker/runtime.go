// Package docker implements the lifecycle runtime boundary over the
// Docker Engine API.
package docker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"berth/lifecycle"

	"github.com/docker/docker/api/types/container"
	dockerfilters "github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
)

var _ lifecycle.Runtime = (*Runtime)(nil)

// Runtime implements lifecycle.Runtime using a Docker client.
type Runtime struct {
	cli client.APIClient
}

// NewRuntime creates a Runtime with a new Docker client from the
// environment (DOCKER_HOST etc.).
func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &Runtime{cli: cli}, nil
}

// NewRuntimeFromClient wraps an existing Docker client.
func NewRuntimeFromClient(cli client.APIClient) *Runtime {
	return &Runtime{cli: cli}
}

// List returns at most one container whose name exactly matches name,
// including stopped and created containers. Docker's name filter is a
// substring match, so the result is re-checked for exact equality.
func (r *Runtime) List(ctx context.Context, name string) ([]lifecycle.Summary, error) {
	f := dockerfilters.NewArgs()
	f.Add("name", name)

	containers, err := r.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Limit:   1,
		Filters: f,
	})
	if err != nil {
		return nil, err
	}

	out := make([]lifecycle.Summary, 0, len(containers))
	for _, c := range containers {
		cname := ""
		if len(c.Names) > 0 {
			cname = strings.TrimPrefix(c.Names[0], "/")
		}
		if cname != name {
			continue
		}
		out = append(out, lifecycle.Summary{
			ID:    c.ID,
			Name:  cname,
			Image: c.Image,
			State: c.State,
		})
	}
	return out, nil
}

// Create creates a container from spec with the container port published
// on all host interfaces.
func (r *Runtime) Create(ctx context.Context, name string, spec lifecycle.Spec) (string, error) {
	containerPort := nat.Port(fmt.Sprintf("%d/tcp", spec.ContainerPort))

	cc := &container.Config{
		Image:        spec.Image,
		ExposedPorts: nat.PortSet{containerPort: struct{}{}},
	}
	hc := &container.HostConfig{
		PortBindings: nat.PortMap{
			containerPort: []nat.PortBinding{{
				HostIP:   "0.0.0.0",
				HostPort: strconv.Itoa(spec.HostPort),
			}},
		},
	}

	resp, err := r.cli.ContainerCreate(ctx, cc, hc, nil, nil, name)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (r *Runtime) Start(ctx context.Context, id string) error {
	return r.cli.ContainerStart(ctx, id, container.StartOptions{})
}

func (r *Runtime) Stop(ctx context.Context, id string) error {
	return r.cli.ContainerStop(ctx, id, container.StopOptions{})
}

// Remove does not force: the reconciler guarantees the container is
// stopped first, and a remove rejected on an active container is a
// sequencing bug worth surfacing.
func (r *Runtime) Remove(ctx context.Context, id string) error {
	return r.cli.ContainerRemove(ctx, id, container.RemoveOptions{})
}

func (r *Runtime) Close() error {
	return r.cli.Close()
}
