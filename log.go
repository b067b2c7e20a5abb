package ranges

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used for capability resolution traces and
// Inspect taps. The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("src", "ranges").Logger()
}
