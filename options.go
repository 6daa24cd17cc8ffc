package lexicon

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// CheckInvariants validates the whole tree when an operation starts and,
	// for mutators, when it ends. Each check walks every node.
	CheckInvariants bool

	// Logger receives invariant reports. The global zerolog logger is used
	// when nil.
	Logger *zerolog.Logger
}

var DefaultOptions = Options{
	CheckInvariants: false,
}

func (l *lexicon) logger() *zerolog.Logger {
	if l.opts.Logger != nil {
		return l.opts.Logger
	}
	return &log.Logger
}
