package pagination

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shareit/internal/errors"
)

func TestNew_SnapsToPageBoundary(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		size     int
		expected Page
	}{
		{"first page", 0, 10, Page{Offset: 0, Limit: 10}},
		{"inside first page", 7, 10, Page{Offset: 0, Limit: 10}},
		{"exact boundary", 10, 10, Page{Offset: 10, Limit: 10}},
		{"inside second page", 3, 2, Page{Offset: 2, Limit: 2}},
		{"size one", 5, 1, Page{Offset: 5, Limit: 1}},
		{"largest size", 150, MaxSize, Page{Offset: 100, Limit: MaxSize}},
		{"large size keeps page zero", 99, MaxSize, Page{Offset: 0, Limit: MaxSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := New(tt.from, tt.size, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestNew_ExactOffset(t *testing.T) {
	page, err := New(3, 2, true)

	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 3, Limit: 2}, page)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(-1, 10, false)
	assert.ErrorIs(t, err, ErrInvalidFrom)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = New(0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(0, -5, true)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNew_SizeAboveMaxIsRejected(t *testing.T) {
	for _, tc := range []struct{ from, size int }{{150, 500}, {150, 150}, {0, MaxSize + 1}} {
		_, err := New(tc.from, tc.size, false)
		assert.ErrorIs(t, err, ErrSizeTooLarge, "from=%d size=%d", tc.from, tc.size)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	}

	_, err := New(0, 500, true)
	assert.ErrorIs(t, err, ErrSizeTooLarge)
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, err := Parse("", "", false)
		require.NoError(t, err)
		assert.Equal(t, Default, page)
		assert.Equal(t, Page{Offset: 0, Limit: 10}, page)
	})

	t.Run("values", func(t *testing.T) {
		page, err := Parse("25", "10", false)
		require.NoError(t, err)
		assert.Equal(t, Page{Offset: 20, Limit: 10}, page)
	})

	t.Run("non-numeric from", func(t *testing.T) {
		_, err := Parse("abc", "10", false)
		assert.ErrorIs(t, err, ErrInvalidFrom)
	})

	t.Run("non-numeric size", func(t *testing.T) {
		_, err := Parse("0", "ten", false)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}
