package cmd

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	data, err := os.ReadFile("../testdata/scenario.json")
	if err != nil {
		t.Fatal(err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path  string
		first bool
		want  any
	}{
		{"$.character.name", false, "John Doe"},
		{"$.start", false, "2024-01-01"},
		{"$.character.assets[*].name", false, []any{"salary", "etf", "flat", "mortgage", "coins", "livret"}},
		{"$.character.assets[? @.kind==\"loan\"].end_date", false, []any{"2025-12-31"}},
		{"$.character.assets[? @.kind==\"loan\"].end_date", true, "2025-12-31"},
		{"$.currencies[1].interest_rate.constant", false, 0.045},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := query(doc, tc.path, tc.first)
			if err != nil {
				t.Fatalf("query() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("query() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	doc := map[string]any{"assets": []any{}}
	if _, err := query(doc, "$.assets[*].name", true); err == nil {
		t.Error("query() on an empty match with first, want error")
	}
	if _, err := query(doc, "$.unknown", false); err == nil {
		t.Error("query() on an unknown key, want error")
	}
}
