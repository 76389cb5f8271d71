package main

import (
	"testing"
)

func TestPackageNameValidator(t *testing.T) {
	seen := map[string]bool{"existing": true}
	validate := packageNameValidator(seen)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "requests", false},
		{"valid with dash", "typing-extensions", false},
		{"valid with trailing space", "requests ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"contains space", "two words", true},
		{"contains slash", "a/b", true},
		{"inline pin", "requests==2.0", true},
		{"already added", "existing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("validate(%q) = nil, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validate(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}
