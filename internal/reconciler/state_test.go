package reconciler

import "testing"

func TestSnapshot_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		snap     Snapshot
		wantBoth bool
		wantAny  bool
	}{
		{
			name:     "empty",
			snap:     Snapshot{},
			wantBoth: false,
			wantAny:  false,
		},
		{
			name:     "dark only",
			snap:     Snapshot{Dark: true},
			wantBoth: false,
			wantAny:  true,
		},
		{
			name:     "light only",
			snap:     Snapshot{Light: true},
			wantBoth: false,
			wantAny:  true,
		},
		{
			name:     "both candidates",
			snap:     Snapshot{Dark: true, Light: true},
			wantBoth: true,
			wantAny:  true,
		},
		{
			name:     "active alone is not a candidate",
			snap:     Snapshot{Active: true, Overflow: true},
			wantBoth: false,
			wantAny:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.BothCandidates(); got != tt.wantBoth {
				t.Errorf("BothCandidates() = %v, want %v", got, tt.wantBoth)
			}
			if got := tt.snap.AnyCandidate(); got != tt.wantAny {
				t.Errorf("AnyCandidate() = %v, want %v", got, tt.wantAny)
			}
		})
	}
}
