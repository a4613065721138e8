// File: services/routine/overlap.go
package routine

// Overlaps reports whether two ranges intersect. Ends of overnight ranges
// are normalized by a full day so the comparison stays linear; the test is
// half-open, so a range ending exactly when the other starts does not
// overlap. New candidates can never be overnight (the validator forbids
// them), but legacy stored ranges still evaluate correctly.
func Overlaps(aStart, aEnd, bStart, bEnd int, aOvernight, bOvernight bool) bool {
	if aOvernight {
		aEnd += 1440
	}
	if bOvernight {
		bEnd += 1440
	}
	return aStart < bEnd && bStart < aEnd
}
