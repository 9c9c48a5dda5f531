package preprocess

// effectiveLength bounds a stem to maxDuration seconds from its start.
// maxDuration <= 0 means the full stem. The result never exceeds the
// decoded length, so segments cannot reach past real audio.
func effectiveLength(stemLen, sampleRate int, maxDuration float64) int {
	if maxDuration <= 0 {
		return stemLen
	}
	limit := int(maxDuration * float64(sampleRate))
	if limit < stemLen {
		return limit
	}
	return stemLen
}

// numSegments is ceil(length / segmentSamples). A stem shorter than one
// window still yields one (truncated) segment; an empty stem yields
// none.
func numSegments(length, segmentSamples int) int {
	return (length + segmentSamples - 1) / segmentSamples
}

// segmentBounds returns the half-open sample range of segment j. The
// last segment is truncated at the effective length, never padded.
func segmentBounds(j, segmentSamples, length int) (start, end int) {
	start = j * segmentSamples
	end = start + segmentSamples
	if end > length {
		end = length
	}
	return start, end
}
