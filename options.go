package segy

// Option configures Open or Create.
type Option func(*config)

type config struct {
	useMmap bool
}

// WithMmap requests the memory-mapped I/O substrate instead of the
// default sequential (buffered os.File) substrate. Selection happens
// once, at Open/Create time; it is never decided by a build tag.
func WithMmap() Option {
	return func(c *config) { c.useMmap = true }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
