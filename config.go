package pixl

// The default canvas geometry and onion-skin settings.
const (
	DefaultWidth       = 32
	DefaultHeight      = 32
	DefaultMaxFrames   = 24
	DefaultOnionFactor = 0.3
)

// Config holds the construction time settings of a document. The zero
// value is usable: empty fields fall back to the defaults above.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int
	// MaxFrames is the fixed number of timeline slots per layer.
	MaxFrames int
	// OnionFactor is the translucency applied to the previous frame
	// ghost when onion skinning is enabled.
	OnionFactor float64
}

// withDefaults fills the unset fields with the default settings.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = DefaultMaxFrames
	}
	if c.OnionFactor <= 0 || c.OnionFactor > 1 {
		c.OnionFactor = DefaultOnionFactor
	}
	return c
}
