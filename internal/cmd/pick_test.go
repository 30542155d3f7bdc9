package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePicks(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		n       int
		want    []int
		wantErr bool
	}{
		{name: "numbers", s: "1 3 5", n: 5, want: []int{0, 2, 4}},
		{name: "ranges", s: "1-3 8 10-12", n: 20, want: []int{0, 1, 2, 7, 9, 10, 11}},
		{name: "duplicates", s: "2 1-3", n: 5, want: []int{0, 1, 2}},
		{name: "out of range dropped", s: "0 4 99", n: 5, want: []int{3}},
		{name: "range clamped", s: "4-10", n: 5, want: []int{3, 4}},
		{name: "all", s: " ALL ", n: 3, want: []int{0, 1, 2}},
		{name: "reversed range", s: "5-2", n: 5, wantErr: true},
		{name: "nothing valid", s: "7 8", n: 5, wantErr: true},
		{name: "not a number", s: "1 two", n: 5, wantErr: true},
		{name: "bad range", s: "1-", n: 5, wantErr: true},
		{name: "empty", s: "", n: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePicks(tt.s, tt.n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}
