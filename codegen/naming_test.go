package codegen

import "testing"

func TestEnumName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"label", "LABEL"},
		{"get_list", "GETLIST"},
		{"is_nonempty_list", "ISNONEMPTYLIST"},
		{"'spawn'", "SPAWN"},
		{"move", "MOVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumName(tt.name)
			if got != tt.expected {
				t.Errorf("EnumName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCFunName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"SpawnLink", "spawnlink"},
		{"'abs'", "abs"},
		{"length", "length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CFunName(tt.name)
			if got != tt.expected {
				t.Errorf("CFunName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"SPAWN", true},
		{"abs_1", true},
		{"_private", true},
		{"1abs", false},
		{"'+'", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isIdentifier(tt.s); got != tt.want {
			t.Errorf("isIdentifier(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
