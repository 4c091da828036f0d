package lifecycle

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
	}{
		{"", StatusEmpty},
		{"created", StatusCreated},
		{"running", StatusRunning},
		{"restarting", StatusRestarting},
		{"removing", StatusRemoving},
		{"paused", StatusPaused},
		{"exited", StatusExited},
		{"dead", StatusDead},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.raw)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	for _, raw := range []string{"hibernating", "Running", "absent"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Errorf("ParseStatus(%q) should fail", raw)
		}
	}
}

func TestStatusActive(t *testing.T) {
	active := map[Status]bool{
		StatusRunning:    true,
		StatusRestarting: true,
	}
	for s := StatusAbsent; s <= StatusDead; s++ {
		if got := s.Active(); got != active[s] {
			t.Errorf("%s.Active() = %v, want %v", s, got, active[s])
		}
	}
}
