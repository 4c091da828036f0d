package lifecycle

import "fmt"

// Status is the daemon-reported lifecycle stage of a container, plus the
// synthesized Absent for "no container with the target name". The set
// mirrors the Docker Engine status vocabulary exactly.
type Status int

const (
	// StatusAbsent means no container with the target name exists. It is
	// never reported by the daemon; the inspector synthesizes it.
	StatusAbsent Status = iota
	// StatusEmpty means the daemon returned a summary without a state
	// string.
	StatusEmpty
	StatusCreated
	StatusRunning
	StatusRestarting
	StatusRemoving
	StatusPaused
	StatusExited
	StatusDead
)

var statusNames = map[Status]string{
	StatusAbsent:     "absent",
	StatusEmpty:      "empty",
	StatusCreated:    "created",
	StatusRunning:    "running",
	StatusRestarting: "restarting",
	StatusRemoving:   "removing",
	StatusPaused:     "paused",
	StatusExited:     "exited",
	StatusDead:       "dead",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Active reports whether the container may still be executing, in which
// case the daemon requires a stop before it will accept a remove.
func (s Status) Active() bool {
	return s == StatusRunning || s == StatusRestarting
}

// ParseStatus maps a daemon state string onto the closed Status set.
// The empty string is valid (StatusEmpty); anything outside the Docker
// vocabulary is an error so a misbehaving daemon surfaces instead of
// being routed through the wrong reconciliation branch.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case "":
		return StatusEmpty, nil
	case "created":
		return StatusCreated, nil
	case "running":
		return StatusRunning, nil
	case "restarting":
		return StatusRestarting, nil
	case "removing":
		return StatusRemoving, nil
	case "paused":
		return StatusPaused, nil
	case "exited":
		return StatusExited, nil
	case "dead":
		return StatusDead, nil
	}
	return 0, fmt.Errorf("unknown container status %q", raw)
}
