package lifecycle

import "testing"

func TestNewSpec(t *testing.T) {
	spec, err := NewSpec("web", "1.2.3", 8080)
	if err != nil {
		t.Fatalf("NewSpec: %v", err)
	}
	if spec.Image != "web:1.2.3" {
		t.Errorf("image = %q, want web:1.2.3", spec.Image)
	}
	if spec.ContainerPort != 8080 || spec.HostPort != 8080 {
		t.Errorf("ports = %d/%d, want 8080/8080", spec.ContainerPort, spec.HostPort)
	}
}

func TestNewSpec_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		desc    string
		name    string
		version string
		port    int
	}{
		{"empty name", "", "1.0", 8080},
		{"blank name", "   ", "1.0", 8080},
		{"name with space", "my app", "1.0", 8080},
		{"empty version", "web", "", 8080},
		{"version with tab", "web", "1.0\t", 8080},
		{"port zero", "web", "1.0", 0},
		{"port negative", "web", "1.0", -1},
		{"port too large", "web", "1.0", 70000},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if _, err := NewSpec(tc.name, tc.version, tc.port); err == nil {
				t.Errorf("NewSpec(%q, %q, %d) should fail", tc.name, tc.version, tc.port)
			}
		})
	}
}
