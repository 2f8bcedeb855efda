package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source identifies where a catalog document came from, so loaders can read
// files, fs.FS entries or URLs through one entry point.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindURL    SourceKind = "url"
	SourceKindInline SourceKind = "inline"
)

type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }
func (s source) Location() string { return s.location }

// SourceFromFile points at a catalog document on disk.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS points at an entry inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL parses raw and panics when it is not a request URI, surfacing
// configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}

// SourceInline labels a document built in memory, e.g. read from stdin.
func SourceInline(name string) Source {
	if name == "" {
		name = "inline"
	}
	return source{kind: SourceKindInline, location: name}
}
