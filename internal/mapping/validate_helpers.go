package mapping

// isValidIdent checks if a string is a valid handler function identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

// isValidAttrWord checks if a string is a lowercase-dash word suitable
// as a data-* attribute name suffix or value token: it must start and
// end with a lowercase letter or digit, with single dashes between runs.
func isValidAttrWord(s string) bool {
	if s == "" {
		return false
	}

	prevDash := true // leading dash is invalid

	for _, r := range s {
		if r == '-' {
			if prevDash {
				return false
			}

			prevDash = true

			continue
		}

		if !isLowerLetter(r) && !isDigit(r) {
			return false
		}

		prevDash = false
	}

	return !prevDash
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
