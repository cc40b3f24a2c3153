package ids

import (
	internalstrings "github.com/agendadev/agenda/internal/strings"
)

// NormalizeUniqueIDs lowercases IDs and drops empties and duplicates,
// preserving first-seen order.
func NormalizeUniqueIDs(ids []string) []string {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		normalized := internalstrings.NormalizeLowerTrimSpace(id)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		unique = append(unique, normalized)
	}
	return unique
}

// MatchPrefix finds the ID matching prefix among ids. It reports whether a
// match was found and whether the prefix was ambiguous. An exact match wins
// over a longer ID that shares the prefix.
func MatchPrefix(ids []string, prefix string) (match string, found, ambiguous bool) {
	normalized := internalstrings.NormalizeLowerTrimSpace(prefix)
	if normalized == "" {
		return "", false, false
	}

	for _, id := range ids {
		if id == normalized {
			return id, true, false
		}
		if len(id) > len(normalized) && id[:len(normalized)] == normalized {
			if found {
				return "", false, true
			}
			match = id
			found = true
		}
	}

	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
func UniquePrefixLengths(ids []string) map[string]int {
	unique := NormalizeUniqueIDs(ids)

	lengths := make(map[string]int, len(unique))
	for _, id := range unique {
		lengths[id] = uniquePrefixLength(id, unique)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if len(other) >= length && other[:length] == prefix {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
