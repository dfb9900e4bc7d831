package thread

import "testing"

func TestNumPages(t *testing.T) {
	tests := []struct {
		count uint64
		want  uint64
	}{
		{count: 0, want: 0},
		{count: 1, want: 1},
		{count: 49, want: 1},
		{count: 50, want: 1},
		{count: 51, want: 2},
		{count: 100, want: 2},
		{count: 125, want: 3},
		{count: 251, want: 6},
	}

	for _, tc := range tests {
		if got := NumPages(tc.count); got != tc.want {
			t.Fatalf("NumPages(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}
