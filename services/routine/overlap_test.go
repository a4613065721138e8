package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd           int
		bStart, bEnd           int
		aOvernight, bOvernight bool
		want                   bool
	}{
		{name: "disjoint", aStart: 540, aEnd: 600, bStart: 660, bEnd: 720, want: false},
		{name: "touching endpoints", aStart: 540, aEnd: 600, bStart: 600, bEnd: 660, want: false},
		{name: "partial overlap", aStart: 540, aEnd: 630, bStart: 600, bEnd: 660, want: true},
		{name: "containment", aStart: 540, aEnd: 720, bStart: 570, bEnd: 600, want: true},
		{name: "identical", aStart: 540, aEnd: 600, bStart: 540, bEnd: 600, want: true},
		{name: "one minute overlap", aStart: 540, aEnd: 601, bStart: 600, bEnd: 660, want: true},
		{
			name:   "overnight b spans candidate start",
			aStart: 30, aEnd: 90,
			bStart: 1380, bEnd: 60, bOvernight: true,
			want: false,
		},
		{
			name:   "overnight b wraps past candidate",
			aStart: 1390, aEnd: 1420,
			bStart: 1380, bEnd: 60, bOvernight: true,
			want: true,
		},
		{
			name:   "both overnight",
			aStart: 1380, aEnd: 30, aOvernight: true,
			bStart: 1410, bEnd: 60, bOvernight: true,
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, tc.aOvernight, tc.bOvernight)
			assert.Equal(t, tc.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd, tc.bOvernight, tc.aOvernight))
		})
	}
}
