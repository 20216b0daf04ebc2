package manifest

import "testing"

func TestCheckBridgeVersion(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		wantErr    bool
	}{
		{"no constraint", "", "0.1.0", false},
		{"dev build", ">= 9.0.0", DevVersion, false},
		{"satisfied", ">= 1.0.0, < 2.0.0", "1.4.2", false},
		{"v prefix", "^1.2", "v1.3.0", false},
		{"too old", ">= 1.5.0", "1.4.9", true},
		{"bad constraint", "newest", "1.0.0", true},
		{"bad version", ">= 1.0.0", "latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBridgeVersion(tt.constraint, tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckBridgeVersion(%q, %q) error = %v, wantErr %v", tt.constraint, tt.version, err, tt.wantErr)
			}
		})
	}
}
