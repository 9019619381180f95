package searcher

import (
	"testing"
	"time"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		days     int
		expected []Segment
	}{
		{
			name:  "range longer than segment size",
			start: "2024-01-01",
			end:   "2024-01-10",
			days:  7,
			expected: []Segment{
				{date("2024-01-01"), date("2024-01-08")},
				{date("2024-01-08"), date("2024-01-10")},
			},
		},
		{
			name:  "range shorter than segment size",
			start: "2024-01-01",
			end:   "2024-01-03",
			days:  7,
			expected: []Segment{
				{date("2024-01-01"), date("2024-01-03")},
			},
		},
		{
			name:  "exact multiple",
			start: "2024-01-01",
			end:   "2024-01-15",
			days:  7,
			expected: []Segment{
				{date("2024-01-01"), date("2024-01-08")},
				{date("2024-01-08"), date("2024-01-15")},
			},
		},
		{
			name:  "single day range",
			start: "2024-01-01",
			end:   "2024-01-01",
			days:  7,
			expected: []Segment{
				{date("2024-01-01"), date("2024-01-01")},
			},
		},
		{
			name:  "non-positive days falls back to default",
			start: "2024-01-01",
			end:   "2024-01-05",
			days:  0,
			expected: []Segment{
				{date("2024-01-01"), date("2024-01-05")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSegments(date(tt.start), date(tt.end), tt.days)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d segments, want %d: %v", len(got), len(tt.expected), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.expected[i].Start) || !got[i].End.Equal(tt.expected[i].End) {
					t.Errorf("segment %d: got %v..%v, want %v..%v",
						i, got[i].Start, got[i].End, tt.expected[i].Start, tt.expected[i].End)
				}
			}
		})
	}
}

// Segments must cover the whole range in order: each segment starts
// where the previous one ended, the first at start, the last at end,
// and none exceeds the segment size.
func TestSplitSegmentsCoverage(t *testing.T) {
	start := date("2023-03-05")
	end := date("2023-06-28")
	days := 11

	segs := splitSegments(start, end, days)
	if len(segs) == 0 {
		t.Fatal("no segments")
	}

	if !segs[0].Start.Equal(start) {
		t.Errorf("first segment starts at %v, want %v", segs[0].Start, start)
	}
	if !segs[len(segs)-1].End.Equal(end) {
		t.Errorf("last segment ends at %v, want %v", segs[len(segs)-1].End, end)
	}

	for i, seg := range segs {
		if i > 0 && !seg.Start.Equal(segs[i-1].End) {
			t.Errorf("segment %d starts at %v, previous ended at %v", i, seg.Start, segs[i-1].End)
		}
		if seg.End.Sub(seg.Start) > time.Duration(days)*24*time.Hour {
			t.Errorf("segment %d spans %v, exceeds %d days", i, seg.End.Sub(seg.Start), days)
		}
	}
}
