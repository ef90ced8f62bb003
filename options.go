package hyperloglog

// Option is a functional option for configuring a sketch.
type Option func(*config)

type config struct {
	precision uint8
	hash      Hash32
}

func defaultConfig() *config {
	return &config{
		precision: 10, // 1024 registers; use WithPrecision to tune
		hash:      HashString,
	}
}

// WithPrecision sets the precision. Valid values are MinPrecision through
// MaxPrecision; New rejects anything outside that range.
func WithPrecision(p uint8) Option {
	return func(c *config) {
		c.precision = p
	}
}

// WithHash sets the hash capability used for every insertion. The function
// must map equal inputs to equal outputs and should distribute its output
// bits near-uniformly; estimate quality degrades with hash bias.
func WithHash(h Hash32) Option {
	return func(c *config) {
		c.hash = h
	}
}
