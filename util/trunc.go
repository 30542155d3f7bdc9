package util

// TruncateRightWithSuffix keeps the first len number of runes of text and only append the suffix if truncation happens.
func TruncateRightWithSuffix(text string, len int, suffix string) string {
	if len <= 0 {
		return suffix
	}

	rs := make([]rune, 0, len)
	n := 0
	for _, r := range text {
		if n >= len {
			return string(rs) + suffix
		}

		rs = append(rs, r)
		n++
	}

	return string(rs)
}
