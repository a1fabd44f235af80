package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a normalized page request.
type Page struct {
	Index int
	Size  int
}

// NewPage clamps a requested page: negative indexes become 0, non-positive sizes fall
// back to DefaultPageSize and sizes above MaxPageSize are capped.
func NewPage(index, size int) Page {
	if index < 0 {
		index = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Index: index, Size: size}
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

func (p Page) Offset() int32 {
	return int32(p.Index * p.Size)
}
