package codegen

import "strings"

// EnumName converts a table name to an enum-style constant part.
// e.g., "get_list" → "GETLIST", "'+'" → the name inside the quotes.
func EnumName(name string) string {
	if strings.HasPrefix(name, "'") {
		return EnumName(strings.Trim(name, "'"))
	}

	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = strings.ToUpper(p)
	}
	return strings.Join(parts, "")
}

// CFunName converts a table name to a C-style function name.
// e.g., "SpawnLink" → "spawnlink", "'++'" → "++".
func CFunName(name string) string {
	if strings.HasPrefix(name, "'") {
		return CFunName(strings.Trim(name, "'"))
	}
	return strings.ToLower(name)
}

// isIdentifier reports whether s is usable as a Go identifier: ASCII
// letters, digits and underscores, not starting with a digit.
func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
