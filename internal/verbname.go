package internal

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func toUpper(c byte) byte {
	return c - 32
}

func toLower(c byte) byte {
	return c + 32
}

// VerbName converts "greater_than" and "GreaterThan" to "greaterThan".
// Names that are already lower camel case are returned as is.
func VerbName(s string) string {
	if s == "" {
		return s
	}

	r := make([]byte, 0, len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '-' {
			upperNext = len(r) > 0
			continue
		}
		switch {
		case len(r) == 0 && isUpper(c):
			c = toLower(c)
		case upperNext && isLower(c):
			c = toUpper(c)
		}
		upperNext = false
		r = append(r, c)
	}
	return string(r)
}
