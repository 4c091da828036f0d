package lifecycle

import (
	"fmt"
	"strings"
)

// Spec is the target a container should converge to: the fully qualified
// image reference and the port exposure. Built once per reconciliation,
// never mutated.
type Spec struct {
	Image         string
	ContainerPort int
	HostPort      int
}

// NewSpec derives the desired spec from configuration: the image is
// name:version and the configured port is bound on all host interfaces
// to the same port inside the container.
func NewSpec(name, version string, port int) (Spec, error) {
	if strings.TrimSpace(name) == "" {
		return Spec{}, fmt.Errorf("container name is required")
	}
	if strings.ContainsAny(name, " \t\n\r") {
		return Spec{}, fmt.Errorf("container name %q must not contain whitespace", name)
	}
	if strings.TrimSpace(version) == "" {
		return Spec{}, fmt.Errorf("image version is required")
	}
	if strings.ContainsAny(version, " \t\n\r") {
		return Spec{}, fmt.Errorf("image version %q must not contain whitespace", version)
	}
	if port < 1 || port > 65535 {
		return Spec{}, fmt.Errorf("port %d out of range 1-65535", port)
	}
	return Spec{
		Image:         name + ":" + version,
		ContainerPort: port,
		HostPort:      port,
	}, nil
}
