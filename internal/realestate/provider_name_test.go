package realestate

import "testing"

type unnamedProvider struct{}

func TestProviderName(t *testing.T) {
	tests := []struct {
		name     string
		provider any
		want     string
	}{
		{"repliers", NewRepliers("http://x", "k", "TX"), "repliers"},
		{"redfin", NewRedfin("http://x", "k"), "redfin"},
		{"zillow", NewZillow("http://x", "k"), "zillow"},
		{"mls", NewMLS("http://x", "k"), "mls"},
		{"unnamed falls back to type", unnamedProvider{}, "realestate.unnamedProvider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := providerName(tt.provider); got != tt.want {
				t.Errorf("providerName = %q, want %q", got, tt.want)
			}
		})
	}
}
