package cache

import "strings"

const keySeparator = "|"

var keyEscaper = strings.NewReplacer(`\`, `\\`, keySeparator, `\`+keySeparator)

// Key joins normalized request parameters into a cache key.
// Separators inside a part are escaped, so two different parameter tuples of
// the same arity never produce the same key.
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, part := range parts {
		escaped[i] = keyEscaper.Replace(part)
	}
	return strings.Join(escaped, keySeparator)
}
