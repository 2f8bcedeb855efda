package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-formkit"
	"github.com/goliatone/go-formkit/internal/prompt"
	"github.com/goliatone/go-formkit/pkg/scaffold"
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/schema/sqlite"
)

// tableLister is implemented by catalogs that can enumerate their tables.
type tableLister interface {
	TableNames(ctx context.Context) ([]string, error)
}

type listedTables struct {
	schema.Tables
}

func (l listedTables) TableNames(context.Context) ([]string, error) {
	return l.Names(), nil
}

func openCatalog(ctx context.Context, cfg Config) (schema.Catalog, io.Closer, error) {
	if cfg.SQLite != "" {
		db, err := sqlite.Open(cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLite, err)
		}
		return sqlite.New(db), db, nil
	}

	tables, err := formkit.LoadCatalog(ctx, parseSource(cfg.Schema), schema.WithHTTPFallback(30*time.Second))
	if err != nil {
		return nil, nil, err
	}
	return listedTables{tables}, nil, nil
}

func parseSource(raw string) schema.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.SourceFromURL(path)
	}
	return schema.SourceFromFile(path)
}

// run generates every controller in cfg. Controllers without an output are
// written to stdout.
func run(ctx context.Context, cfg Config, driver prompt.Driver, stdout io.Writer) error {
	catalog, closer, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	if driver != nil {
		if len(cfg.Controllers) == 0 {
			cfg.Controllers = []ControllerSpec{{}}
		}
		var tables []string
		if lister, ok := catalog.(tableLister); ok {
			if tables, err = lister.TableNames(ctx); err != nil {
				return err
			}
		}
		wizard := prompt.NewWizard(driver)
		for i, spec := range cfg.Controllers {
			req, err := wizard.Request(ctx, catalog, tables, spec.request())
			if err != nil {
				return err
			}
			cfg.Controllers[i] = spec.withRequest(req)
		}
	}

	gen := scaffold.New(catalog,
		scaffold.WithPackage(cfg.Package),
		scaffold.WithImportPath(cfg.ImportPath),
	)
	for _, spec := range cfg.Controllers {
		src, err := gen.BuildController(ctx, spec.request())
		if err != nil {
			return err
		}
		if spec.Output == "" {
			if _, err := io.WriteString(stdout, src); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(spec.Output), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(spec.Output, []byte(src), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Controller written to %s\n", spec.Output)
	}
	return nil
}

func (s ControllerSpec) request() scaffold.Request {
	return scaffold.Request{
		Model:        s.Model,
		Table:        s.Table,
		IndexColumns: s.Index,
		NewColumns:   s.New,
		ShowColumns:  s.Show,
		EditColumns:  s.Edit,
	}
}

func (s ControllerSpec) withRequest(req scaffold.Request) ControllerSpec {
	s.Model = req.Model
	s.Table = req.Table
	s.Index = req.IndexColumns
	s.New = req.NewColumns
	s.Show = req.ShowColumns
	s.Edit = req.EditColumns
	return s
}
