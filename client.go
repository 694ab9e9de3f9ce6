package ninep

import "io"

// Options configures a Session constructed by NewWithOptions. The zero
// value selects the same defaults as New.
type Options struct {
	// MaxSize is the maximum size of a single 9P message this client
	// will offer during version negotiation. A remote server is free
	// to choose a smaller value; it may never choose a larger one.
	// Zero selects DefaultMsize.
	MaxSize uint32

	// MaxFids caps how many fids this Session can have open at once.
	// Zero selects a small built-in default sized for interactive use.
	MaxFids int
}

// NewWithOptions returns a Session like New, configured by opts.
func NewWithOptions(r io.Reader, w io.Writer, opts Options) *Session {
	msize := opts.MaxSize
	if msize == 0 {
		msize = DefaultMsize
	}
	return NewSize(r, w, msize, opts.MaxFids)
}
