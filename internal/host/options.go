package host

import "github.com/dshills/atpoint/internal/analysis"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithMode overrides the mode derived from the path.
func WithMode(mode string) Option {
	return func(b *Buffer) {
		if mode != "" {
			b.mode = mode
		}
	}
}

// WithPoint sets the initial cursor offset, clamped to the text.
func WithPoint(offset int) Option {
	return func(b *Buffer) {
		b.point = b.clamp(offset)
	}
}

// WithRegion sets the mark and activates the region.
func WithRegion(mark int) Option {
	return func(b *Buffer) {
		b.mark = b.clamp(mark)
		b.markActive = true
	}
}

// WithAnalysis attaches an analysis service.
func WithAnalysis(s *analysis.Service) Option {
	return func(b *Buffer) {
		b.analysis = s
	}
}

// WithReadOnly makes Replace fail with ErrReadOnly.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.readOnly = true
	}
}
