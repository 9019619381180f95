package searcher

import "time"

// Segment is a sub-interval of the overall date range, searched
// independently so each query stays under GitHub's per-query result
// ceiling.
type Segment struct {
	Start time.Time
	End   time.Time
}

// splitSegments partitions [start, end] into consecutive windows of at
// most days days; the last window is clipped to end. A degenerate
// range (start == end) yields a single one-day segment.
func splitSegments(start, end time.Time, days int) []Segment {
	if days <= 0 {
		days = DefaultSegmentDays
	}

	var segs []Segment
	for cur := start; cur.Before(end); {
		segEnd := cur.AddDate(0, 0, days)
		if segEnd.After(end) {
			segEnd = end
		}
		segs = append(segs, Segment{Start: cur, End: segEnd})
		cur = segEnd
	}

	if len(segs) == 0 {
		segs = append(segs, Segment{Start: start, End: end})
	}
	return segs
}
