package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	cases := []struct {
		name       string
		from, size int
		want       int
	}{
		{"first page", 0, 10, 0},
		{"mid-page from truncates to page start", 5, 10, 0},
		{"exact page boundary", 10, 10, 10},
		{"second page with remainder", 25, 10, 20},
		{"size one passes from through", 7, 1, 7},
		{"zero size guards against division", 5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pageOffset(tc.from, tc.size))
		})
	}
}
