package internal

import (
	"io"

	"github.com/hartmannw/navigate/internal/resolve"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config      *Config
	configPath  string
	request     resolve.Request
	input       io.Reader
	msgs        io.Writer
	resolveOpts []resolve.Option
}

// WithConfig sets the application configuration, skipping the on-disk
// config lookup.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithConfigPath sets the path of the configuration file to load.
func WithConfigPath(path string) Option {
	return func(a *application) {
		a.configPath = path
	}
}

// WithRequest sets the parsed invocation to resolve.
func WithRequest(req resolve.Request) Option {
	return func(a *application) {
		a.request = req
	}
}

// WithInput sets the stream menu selections are read from.
func WithInput(r io.Reader) Option {
	return func(a *application) {
		a.input = r
	}
}

// WithMessages sets the stream notices, listings and logs are written to.
func WithMessages(w io.Writer) Option {
	return func(a *application) {
		a.msgs = w
	}
}

// WithResolveOptions forwards options to the resolution engine.
func WithResolveOptions(opts ...resolve.Option) Option {
	return func(a *application) {
		a.resolveOpts = opts
	}
}
