package service

import "testing"

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name          string
		max           int
		current       int
		requested     int
		wantOK        bool
		wantRemaining int
	}{
		{"empty group fits full batch", 4, 0, 4, true, 4},
		{"batch exceeds remaining by one", 4, 2, 3, false, 2},
		{"exact fit", 8, 5, 3, true, 3},
		{"zero requested always fits", 4, 4, 0, true, 0},
		// the decision sees the full requested batch, not the subset that
		// would actually be placed after filtering assigned members out
		{"judged on the whole batch", 4, 3, 2, false, 1},
		{"full group rejects one more", 4, 4, 1, false, 0},
		{"overfull group reports zero remaining", 4, 6, 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, remaining := CheckCapacity(tt.max, tt.current, tt.requested)
			if ok != tt.wantOK || remaining != tt.wantRemaining {
				t.Errorf("CheckCapacity(%d, %d, %d) = (%v, %d), want (%v, %d)",
					tt.max, tt.current, tt.requested, ok, remaining, tt.wantOK, tt.wantRemaining)
			}
		})
	}
}
