package usecase

import "strings"

// NormalizeTags parses a raw comma-separated tag string into lowercase,
// trimmed, non-empty tokens, deduplicated in first-appearance order. An
// empty result means the order carries no tags yet, which is distinct from
// "not fetched" and may trigger the readiness wait.
func NormalizeTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
