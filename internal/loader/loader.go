// Package loader reads schema catalog documents from disk, an fs.FS or HTTP.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formkit/pkg/schema"
)

const defaultMaxBytes = 8 << 20

// Loader implements schema.Loader by delegating to file, fs.FS or HTTP
// strategies.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options schema.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTPFallback:
		client = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &Loader{
		fs:       options.FileSystem,
		http:     client,
		timeout:  timeout,
		maxBytes: maxBytes,
	}
}

// Load fetches the document behind src.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schema loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = readFile(src.Location())
	case schema.SourceKindFS:
		data, err = readFS(l.fs, src.Location())
	case schema.SourceKindURL:
		if l.http == nil {
			return schema.Document{}, errors.New("schema loader: http support disabled")
		}
		data, err = fetch(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("schema loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, err
	}
	return schema.NewDocument(src, data)
}
