package formation

// findGroup locates the first top-level open character and its matching close. Closing characters
// seen before any open are ignored. ok is false when there is no open or it is never balanced.
func findGroup(text string, open, close byte) (start int, end int, ok bool) {
	depth := 0
	start = -1

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return start, i, true
			}
		}
	}

	return -1, -1, false
}

// ExtractGroup returns the text strictly between the first balanced open/close pair.
func ExtractGroup(text string, open, close byte) (string, bool) {
	start, end, ok := findGroup(text, open, close)
	if !ok {
		return "", false
	}

	return text[start+1 : end], true
}

// drainGroups repeatedly extracts balanced groups, removing each consumed span (delimiters
// included) from the text. It returns the group contents in order and whatever text is left.
func drainGroups(text string, open, close byte) ([]string, string) {
	var groups []string

	for {
		start, end, ok := findGroup(text, open, close)
		if !ok {
			return groups, text
		}

		groups = append(groups, text[start+1:end])
		text = text[:start] + text[end+1:]
	}
}
