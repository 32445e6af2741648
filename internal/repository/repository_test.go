package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name         string
		number, size int
		want         Page
	}{
		{"defaults", 0, 0, Page{Number: 1, Size: 10}},
		{"explicit", 3, 25, Page{Number: 3, Size: 25}},
		{"negative", -2, -5, Page{Number: 1, Size: 10}},
		{"capped", 1, 1000, Page{Number: 1, Size: MaxPageSize}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPage(tc.number, tc.size, 10))
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 20, Page{Number: 3, Size: 10}.Offset())
	assert.Equal(t, 0, Page{Number: 0, Size: 10}.Offset())
}
