package tables

import (
	"strings"
	"testing"

	"github.com/tsawler/rowscan/model"
)

func column(texts ...string) model.Column {
	col := model.Column{}
	for _, t := range texts {
		col.Fragments = append(col.Fragments, model.Fragment{Text: t})
	}
	return col
}

func TestDateColumnHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		columns []model.Column
		want    bool
	}{
		{"no columns", nil, false},
		{"date in first column", []model.Column{column("12/03/2024"), column("x"), column("y")}, true},
		{"date in second column", []model.Column{column("Ref"), column("2024-03-12"), column("y")}, true},
		{"date in third column", []model.Column{column("Ref"), column("x"), column("12/03/2024")}, false},
		{"only later fragment is a date", []model.Column{column("Date", "12/03/2024"), column("x")}, false},
		{"date with trailing text", []model.Column{column("12 Mar 2024 opening balance"), column("x")}, true},
		{"column without fragments", []model.Column{{}, column("12/03/2024")}, true},
	}

	h := NewDateColumnHeuristic(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HasDateColumn(tt.columns); got != tt.want {
				t.Errorf("HasDateColumn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateColumnHeuristic_Reach(t *testing.T) {
	columns := []model.Column{column("Ref"), column("12/03/2024")}

	if (&DateColumnHeuristic{Reach: 1}).HasDateColumn(columns) {
		t.Error("reach 1 should only inspect the first column")
	}
	if (&DateColumnHeuristic{Reach: 0}).HasDateColumn(columns) {
		t.Error("reach 0 should never find a date column")
	}
}

func TestDateColumnHeuristic_CustomMatcher(t *testing.T) {
	h := &DateColumnHeuristic{
		Reach:  2,
		IsDate: func(s string) bool { return strings.HasPrefix(s, "Q") },
	}

	if !h.HasDateColumn([]model.Column{column("Q1")}) {
		t.Error("custom matcher should be used")
	}
	if h.HasDateColumn([]model.Column{column("12/03/2024")}) {
		t.Error("default matcher should not be used when a custom one is set")
	}
}
