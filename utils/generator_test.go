package utils

import (
	"strings"
	"testing"
)

func TestGeneratePortalToken(t *testing.T) {
	tests := []struct {
		name       string
		lastName   string
		wantPrefix string
	}{
		{name: "simple name", lastName: "Cohen", wantPrefix: "cohen-"},
		{name: "name with apostrophe", lastName: "O'Brien", wantPrefix: "obrien-"},
		{name: "name with spaces", lastName: "Van Der Berg", wantPrefix: "vanderberg-"},
		{name: "empty name", lastName: "", wantPrefix: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := GeneratePortalToken(tt.lastName)
			if !strings.HasPrefix(token, tt.wantPrefix) {
				t.Errorf("token %q missing prefix %q", token, tt.wantPrefix)
			}
			suffix := strings.TrimPrefix(token, tt.wantPrefix)
			if len(suffix) == 0 {
				t.Errorf("token %q has no random suffix", token)
			}
			if strings.ContainsAny(suffix, "+/=") {
				t.Errorf("suffix %q is not URL safe", suffix)
			}
		})
	}
}

func TestGeneratePortalTokenUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := GeneratePortalToken("Cohen")
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}
