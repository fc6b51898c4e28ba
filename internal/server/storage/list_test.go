package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListOptions(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		size    int
		sortDir string
		want    ListOptions
	}{
		{"defaults applied", -1, 0, "", ListOptions{Page: 0, Size: 10, SortDir: "desc"}},
		{"size capped", 0, 500, "asc", ListOptions{Page: 0, Size: 100, SortDir: "asc"}},
		{"valid input kept", 3, 25, "asc", ListOptions{Page: 3, Size: 25, SortDir: "asc"}},
		{"unknown direction normalized", 0, 10, "sideways", ListOptions{Page: 0, Size: 10, SortDir: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewListOptions(tt.page, tt.size, "id", tt.sortDir)
			tt.want.SortBy = "id"
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListOptions_Offset(t *testing.T) {
	assert.Equal(t, 0, NewListOptions(0, 10, "id", "asc").Offset())
	assert.Equal(t, 30, NewListOptions(3, 10, "id", "asc").Offset())
}
