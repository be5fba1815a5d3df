package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Classifier maps a normalized tag set to exactly one column title. The
// second return is false when the set cannot be classified; an empty tag
// set is never classified silently.
type Classifier interface {
	Classify(tags []string) (string, bool)
	// Fallback reports the column used when a non-empty set matches no rule,
	// or false when the table refuses a default.
	Fallback() (string, bool)
}

// Rule binds matcher keywords to a destination column. A rule matches when
// any tag in the set contains any of its keywords as a substring.
type Rule struct {
	Keywords []string
	Column   string
}

// RuleTable evaluates rules strictly in order; the first matching rule wins
// regardless of which tag satisfied it.
type RuleTable struct {
	Rules   []Rule
	Default string
}

// Classify picks the target column for a tag set.
func (t RuleTable) Classify(tags []string) (string, bool) {
	if len(tags) == 0 {
		return "", false
	}
	for _, rule := range t.Rules {
		for _, tag := range tags {
			for _, keyword := range rule.Keywords {
				if strings.Contains(tag, keyword) {
					return rule.Column, true
				}
			}
		}
	}
	if t.Default != "" {
		return t.Default, true
	}
	return "", false
}

// Fallback returns the table's default column, when configured.
func (t RuleTable) Fallback() (string, bool) {
	return t.Default, t.Default != ""
}

// DefaultShippingTable is the stock shipping-routing precedence:
// priority > express > pickup > ground, with Ground as the fallback.
func DefaultShippingTable() RuleTable {
	return RuleTable{
		Rules: []Rule{
			{Keywords: []string{"priority"}, Column: "Priority"},
			{Keywords: []string{"express"}, Column: "Express"},
			{Keywords: []string{"pickup", "shop location"}, Column: "Pickup"},
			{Keywords: []string{"ground", "shipping"}, Column: "Ground"},
		},
		Default: "Ground",
	}
}

// TagMapTable maps exact tokens to column titles. The first mapped tag in
// the set's natural order wins; unmapped sets are unclassified and there is
// no fallback.
type TagMapTable map[string]string

// Classify looks tags up verbatim.
func (m TagMapTable) Classify(tags []string) (string, bool) {
	for _, tag := range tags {
		if column, ok := m[tag]; ok {
			return column, true
		}
	}
	return "", false
}

// Fallback always refuses; unmapped orders are skipped.
func (TagMapTable) Fallback() (string, bool) {
	return "", false
}

// ParseTagMap decodes a tag map from JSON, accepting either an object
// {"alice":"Alice"} or an array [{"tag":"alice","designer":"Alice"}].
// Keys are lowercased and trimmed to align with NormalizeTags output.
func ParseTagMap(raw string) (TagMapTable, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	table := make(TagMapTable)

	var entries []struct {
		Tag      string `json:"tag"`
		Key      string `json:"key"`
		Designer string `json:"designer"`
		Value    string `json:"value"`
	}
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		for _, e := range entries {
			key := e.Tag
			if key == "" {
				key = e.Key
			}
			value := e.Designer
			if value == "" {
				value = e.Value
			}
			if key == "" || value == "" {
				continue
			}
			table[strings.ToLower(strings.TrimSpace(key))] = value
		}
		return table, nil
	}

	var object map[string]string
	if err := json.Unmarshal([]byte(raw), &object); err != nil {
		return nil, fmt.Errorf("parse tag map: %w", err)
	}
	for key, value := range object {
		table[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return table, nil
}
