package ordered

// Option configures a Map or a Set.
type Option func(*options)

type options struct {
	maxNodes int
	logger   Logger
}

func defaultOptions() options {
	return options{logger: DefaultLogger{}}
}

// WithMaxNodes bounds the number of entries the container may hold. Once
// reached, Insert fails with ErrArenaFull until an entry is deleted. Zero
// or a negative n means unbounded, which is the default.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxNodes = n
	}
}

// WithLogger sets the logger used to report invariant violations in
// builds with the invariants tag. Defaults to DefaultLogger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func makeOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
