package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare doi", "see 10.1093/molbev/msaa123 for details", "10.1093/molbev/msaa123"},
		{"trailing period stripped", "doi: 10.1371/journal.pone.0012345.", "10.1371/journal.pone.0012345"},
		{"too short rejected", "10.1/x but later 10.1234/real-one", "10.1234/real-one"},
		{"no doi", "no identifier in this text", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI() = %q, want %q", got, tt.want)
			}
		})
	}
}
