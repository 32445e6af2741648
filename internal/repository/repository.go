package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// MaxPageSize caps the page size a client can request.
const MaxPageSize = 100

// Page selects a window of a listing. Page numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps client-supplied paging values. A non-positive size falls
// back to defaultSize.
func NewPage(number, size, defaultSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

type base struct {
	timeout time.Duration
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.timeout)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
