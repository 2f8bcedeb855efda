package schema

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches catalog documents. The implementation lives in
// internal/loader and is exposed through formkit.NewSchemaLoader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures source resolution. HTTP stays disabled unless a
// client is injected or the fallback is enabled.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
	// MaxBytes caps remote payloads; zero means the default of 8 MiB.
	MaxBytes int64
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem resolves SourceFromFS entries against files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources through a default client with the
// given timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxBytes caps the size of remote documents.
func WithMaxBytes(n int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxBytes = n
	}
}

// NewLoaderOptions applies options over the zero configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
