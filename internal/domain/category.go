package domain

import "strings"

// DefaultCategory is assigned when a product is saved with no category
// labels at all.
const DefaultCategory = "Electronics"

// SplitCategories splits a stored comma-joined category string into its
// trimmed labels, dropping empty tokens.
func SplitCategories(category string) []string {
	parts := strings.Split(category, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			labels = append(labels, part)
		}
	}

	return labels
}

// NormalizeCategory turns free-text category input into the storage format:
// labels split on commas, trimmed, deduplicated preserving first-seen order,
// rejoined with ", ". Empty input yields DefaultCategory.
func NormalizeCategory(raw string) string {
	labels := SplitCategories(raw)
	if len(labels) == 0 {
		return DefaultCategory
	}

	seen := make(map[string]struct{}, len(labels))
	unique := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		unique = append(unique, label)
	}

	return strings.Join(unique, ", ")
}
