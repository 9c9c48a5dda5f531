package preprocess

import "testing"

func TestNumSegments(t *testing.T) {
	tests := []struct {
		name           string
		length         int
		segmentSamples int
		want           int
	}{
		{"empty stem", 0, 110250, 0},
		{"exactly one window", 110250, 110250, 1},
		{"shorter than one window", 50000, 110250, 1},
		{"one sample over", 110251, 110250, 2},
		{"several windows with tail", 250000, 110250, 3},
		{"exact multiple", 220500, 110250, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numSegments(tt.length, tt.segmentSamples); got != tt.want {
				t.Errorf("numSegments(%d, %d) = %d, want %d",
					tt.length, tt.segmentSamples, got, tt.want)
			}
		})
	}
}

func TestEffectiveLength(t *testing.T) {
	tests := []struct {
		name        string
		stemLen     int
		maxDuration float64
		want        int
	}{
		{"no limit", 220500, 0, 220500},
		{"negative limit means no limit", 220500, -1, 220500},
		{"limit below stem", 220500, 2.5, 55125},
		{"limit beyond stem", 50000, 10, 50000},
		{"limit equals stem", 220500, 10, 220500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveLength(tt.stemLen, 22050, tt.maxDuration); got != tt.want {
				t.Errorf("effectiveLength(%d, 22050, %g) = %d, want %d",
					tt.stemLen, tt.maxDuration, got, tt.want)
			}
		})
	}
}

func TestSegmentBoundsCoverStemExactly(t *testing.T) {
	const segmentSamples = 110250

	for _, length := range []int{1, 50000, 110250, 110251, 250000, 441000} {
		n := numSegments(length, segmentSamples)

		next := 0
		for j := 0; j < n; j++ {
			start, end := segmentBounds(j, segmentSamples, length)
			if start != next {
				t.Fatalf("length %d: segment %d starts at %d, want %d (gap or overlap)",
					length, j, start, next)
			}
			if end <= start {
				t.Fatalf("length %d: segment %d is empty [%d, %d)", length, j, start, end)
			}
			if j < n-1 && end-start != segmentSamples {
				t.Fatalf("length %d: non-final segment %d spans %d samples, want %d",
					length, j, end-start, segmentSamples)
			}
			next = end
		}
		if next != length {
			t.Fatalf("length %d: segments cover [0, %d), want [0, %d)", length, next, length)
		}
	}
}
