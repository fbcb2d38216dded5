package gli

// Option configures an allocating texture constructor.
//
// Example:
//
//	// Default: heap allocation, zero-filled
//	t, err := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 256, Height: 256}, 1)
//
//	// Pooled memory, contents left as the allocator returns them
//	pool := gli.NewPoolAllocator(4)
//	t, err := gli.NewTexture2D(gli.FormatRGBA8Unorm, gli.Extent2D{Width: 256, Height: 256}, 1,
//		gli.WithAllocator(pool), gli.WithoutZeroInit())
type Option func(*options)

// options holds optional configuration for texture construction.
type options struct {
	allocator Allocator
	zero      bool
	swizzles  Swizzles
}

// defaultOptions returns the default construction options.
func defaultOptions() options {
	return options{
		allocator: nil, // Will be set to DefaultAllocator() if nil
		zero:      true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = DefaultAllocator()
	}
	return o
}

// WithAllocator sets the allocator that provides, and later frees, the
// storage buffer.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithoutZeroInit skips zero-filling of the new storage.
// The buffer contents are whatever the allocator returns.
func WithoutZeroInit() Option {
	return func(o *options) {
		o.zero = false
	}
}

// WithSwizzles sets the initial swizzle override of the new texture.
// Components left as SwizzleNone inherit the format default.
func WithSwizzles(s Swizzles) Option {
	return func(o *options) {
		o.swizzles = s
	}
}
