package domain

import (
	"slices"
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRecord_IsZero(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{
			name:     "empty record",
			record:   Record{},
			expected: true,
		},
		{
			name:     "only description",
			record:   Record{Description: "summary", SourceName: "BBC"},
			expected: true,
		},
		{
			name:     "title only",
			record:   Record{Title: "Headline"},
			expected: false,
		},
		{
			name:     "url only",
			record:   Record{URL: "https://example.com/a"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsZero(); got != tt.expected {
				t.Errorf("IsZero() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestComparePublishedDesc(t *testing.T) {
	older := Record{Title: "older", PublishedAt: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))}
	newer := Record{Title: "newer", PublishedAt: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))}
	undated := Record{Title: "undated"}

	if ComparePublishedDesc(newer, older) >= 0 {
		t.Error("newer record should sort before older record")
	}
	if ComparePublishedDesc(older, newer) <= 0 {
		t.Error("older record should sort after newer record")
	}
	if ComparePublishedDesc(undated, older) <= 0 {
		t.Error("undated record should sort after dated record")
	}
	if ComparePublishedDesc(older, undated) >= 0 {
		t.Error("dated record should sort before undated record")
	}
	if ComparePublishedDesc(undated, Record{}) != 0 {
		t.Error("two undated records should compare equal")
	}
}

func TestComparePublishedDesc_StableSort(t *testing.T) {
	same := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{Title: "undated-1"},
		{Title: "tie-1", PublishedAt: timePtr(same)},
		{Title: "oldest", PublishedAt: timePtr(same.Add(-time.Hour))},
		{Title: "tie-2", PublishedAt: timePtr(same)},
		{Title: "newest", PublishedAt: timePtr(same.Add(time.Hour))},
		{Title: "undated-2"},
	}

	slices.SortStableFunc(records, ComparePublishedDesc)

	want := []string{"newest", "tie-1", "tie-2", "oldest", "undated-1", "undated-2"}
	for i, title := range want {
		if records[i].Title != title {
			t.Errorf("position %d = %s, want %s", i, records[i].Title, title)
		}
	}
}
