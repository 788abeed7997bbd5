package editor

import "unicode"

// splitShellWords splits an editor setting such as `code --wait` or
// `"/opt/My Editor/bin/edit" -n` into argv, honoring quotes and backslashes.
func splitShellWords(s string) []string {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		if escaped {
			cur = append(cur, r)
			escaped = false
			continue
		}

		switch {
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}

	flush()
	return out
}
