package own

import "github.com/rs/zerolog"

// GroupOption configures a [Group] during construction.
type GroupOption func(*Group)

// WithName labels the group in its log output.
func WithName(name string) GroupOption {
	return func(g *Group) {
		g.name = name
	}
}

// WithLogger sets the logger the group reports closes and failures to. The
// default is the package logger installed with [SetLogger].
func WithLogger(l zerolog.Logger) GroupOption {
	return func(g *Group) {
		g.log = l
	}
}
