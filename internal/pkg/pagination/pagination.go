package pagination

// Pageable is a request for a bounded, ordered slice of a larger result
// set: zero-based page index plus page size.
type Pageable struct {
	Page int
	Size int
}

// Normalize clamps a caller-supplied pageable against the configured
// default and maximum sizes. A negative page becomes 0; a missing or
// non-positive size becomes defaultSize; a size above maxSize is capped.
func Normalize(page, size, defaultSize, maxSize int) Pageable {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return Pageable{Page: page, Size: size}
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

type PageMetadata struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// Page is the response envelope for a single page window. TotalSize counts
// parent rows only, never rows inflated by a one-to-many join.
type Page[T any] struct {
	Content          []T          `json:"content"`
	Pageable         PageMetadata `json:"pageable"`
	TotalSize        int64        `json:"totalSize"`
	TotalPages       int          `json:"totalPages"`
	NumberOfElements int          `json:"numberOfElements"`
}

func NewPage[T any](content []T, pageable Pageable, totalSize int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageable.Size > 0 {
		totalPages = int((totalSize + int64(pageable.Size) - 1) / int64(pageable.Size))
	}
	return &Page[T]{
		Content:          content,
		Pageable:         PageMetadata{Number: pageable.Page, Size: pageable.Size},
		TotalSize:        totalSize,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}
