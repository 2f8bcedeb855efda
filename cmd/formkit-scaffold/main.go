package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-formkit/internal/prompt"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	schemaPath := flag.String("schema", "", "catalog document path or URL (YAML catalog or OpenAPI)")
	sqliteDSN := flag.String("sqlite", "", "SQLite database to read tables from")
	model := flag.String("model", "", "singular model name, e.g. coltype")
	table := flag.String("table", "", "table name (default: pluralised model)")
	index := flag.String("index", "", "comma separated columns for the index page (default: all)")
	newCols := flag.String("new", "", "comma separated columns for the new page (default: all)")
	show := flag.String("show", "", "comma separated columns for the show page (default: all)")
	edit := flag.String("edit", "", "comma separated columns for the edit page (default: all)")
	pkg := flag.String("package", "", "package name of the generated file (default: controllers)")
	importPath := flag.String("import-path", "", "module path providing pkg/crud and pkg/markup")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "ask for the model and columns")
	flag.Parse()

	var cfg Config
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	if *schemaPath != "" {
		cfg.Schema, cfg.SQLite = *schemaPath, ""
	}
	if *sqliteDSN != "" {
		cfg.SQLite, cfg.Schema = *sqliteDSN, ""
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	if *importPath != "" {
		cfg.ImportPath = *importPath
	}
	if *model != "" || *table != "" || *output != "" || *index != "" || *newCols != "" || *show != "" || *edit != "" {
		cfg.Controllers = []ControllerSpec{{
			Model:  *model,
			Table:  *table,
			Output: *output,
			Index:  splitColumns(*index),
			New:    splitColumns(*newCols),
			Show:   splitColumns(*show),
			Edit:   splitColumns(*edit),
		}}
	}

	if err := cfg.validate(*interactive); err != nil {
		fmt.Fprintf(os.Stderr, "formkit-scaffold: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var driver prompt.Driver
	if *interactive {
		driver = prompt.NewSurveyDriver()
	}
	if err := run(ctx, cfg, driver, os.Stdout); err != nil {
		log.Fatalf("Failed to generate controller: %v", err)
	}
}
