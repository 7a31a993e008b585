package diff

// ExtractHunks windows a flat diff into hunks. Each maximal run of changed
// lines becomes one hunk, padded with up to context lines before it and up
// to context Equal lines after it. Neighbouring hunks are never merged, so
// when two runs are closer than 2*context the shared Equal lines appear in
// both. lines is not modified.
func ExtractHunks(lines []DiffLine, context int) []Hunk {
	if context < 0 {
		context = 0
	}

	var hunks []Hunk
	i := 0
	for i < len(lines) {
		if lines[i].Tag == Equal {
			i++
			continue
		}

		start := max(0, i-context)
		hunk := make([]DiffLine, 0, i-start+1)
		hunk = append(hunk, lines[start:i]...)

		for i < len(lines) && lines[i].Tag != Equal {
			hunk = append(hunk, lines[i])
			i++
		}

		end := min(len(lines), i+context)
		hunk = append(hunk, lines[i:end]...)
		i = end

		hunks = append(hunks, Hunk{Lines: hunk})
	}
	return hunks
}
