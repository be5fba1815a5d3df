package usecase

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " , ,", nil},
		{"dedupes case-insensitively", "A, a ,A", []string{"a"}},
		{"trims and lowercases", " Priority , Express ", []string{"priority", "express"}},
		{"keeps multi-word tags", "free ground shipping", []string{"free ground shipping"}},
		{"preserves appearance order", "zeta,alpha,zeta", []string{"zeta", "alpha"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTags(tc.raw)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	inputs := []string{"", " , ,", "A, a ,A", "Priority, gift", "free ground shipping, PICKUP"}
	for _, raw := range inputs {
		once := NormalizeTags(raw)
		twice := NormalizeTags(strings.Join(once, ","))
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalize not idempotent for %q: %v vs %v", raw, once, twice)
		}
	}
}

func TestNormalizeTagsNeverEmptyTokens(t *testing.T) {
	for _, raw := range []string{",,,", "a,,b", " , x , ", "  "} {
		for _, tag := range NormalizeTags(raw) {
			if tag == "" {
				t.Fatalf("empty token leaked from %q", raw)
			}
		}
	}
}
