// Package pagination turns from/size query parameters into row offsets.
package pagination

import (
	"fmt"
	"strconv"

	apperrors "shareit/internal/errors"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
	MaxSize     = 100
)

var (
	ErrInvalidFrom  = apperrors.New(apperrors.ErrValidation, "from must be zero or greater")
	ErrInvalidSize  = apperrors.New(apperrors.ErrValidation, "size must be greater than zero")
	ErrSizeTooLarge = apperrors.New(apperrors.ErrValidation, fmt.Sprintf("size must not exceed %d", MaxSize))
)

// Page is a resolved window over an ordered result set.
type Page struct {
	Offset int
	Limit  int
}

// Default is the page used when the caller sends no parameters.
var Default = Page{Offset: DefaultFrom, Limit: DefaultSize}

// New resolves from/size into a Page. By default from is snapped down to the
// start of the page containing it, so from=3,size=2 yields offset 2. With exact
// set the offset is from itself. Sizes above MaxSize are rejected.
func New(from, size int, exact bool) (Page, error) {
	if from < 0 {
		return Page{}, ErrInvalidFrom
	}
	if size < 1 {
		return Page{}, ErrInvalidSize
	}
	if size > MaxSize {
		return Page{}, ErrSizeTooLarge
	}

	offset := from
	if !exact {
		offset = (from / size) * size
	}
	return Page{Offset: offset, Limit: size}, nil
}

// Parse reads raw query values. Empty values take the defaults.
func Parse(from, size string, exact bool) (Page, error) {
	f, s := DefaultFrom, DefaultSize
	var err error
	if from != "" {
		if f, err = strconv.Atoi(from); err != nil {
			return Page{}, ErrInvalidFrom
		}
	}
	if size != "" {
		if s, err = strconv.Atoi(size); err != nil {
			return Page{}, ErrInvalidSize
		}
	}
	return New(f, s, exact)
}
