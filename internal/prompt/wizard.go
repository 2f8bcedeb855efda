package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-formkit/pkg/scaffold"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// Wizard walks the user through building a scaffold.Request.
type Wizard struct {
	driver Driver
}

// NewWizard returns a Wizard asking through driver.
func NewWizard(driver Driver) *Wizard {
	return &Wizard{driver: driver}
}

var pages = []struct {
	name     string
	writable bool
}{
	{"index", false},
	{"new", true},
	{"show", false},
	{"edit", true},
}

// Request asks for a table, then for the columns of each page. tables lists
// the choices; when empty the model name is typed instead. seed carries
// answers already given on the command line and is returned completed.
func (w *Wizard) Request(ctx context.Context, catalog schema.Catalog, tables []string, seed scaffold.Request) (scaffold.Request, error) {
	if w.driver == nil {
		return seed, errors.New("prompt: driver is required")
	}
	req := seed

	if req.Model == "" {
		model, table, err := w.askModel(ctx, tables)
		if err != nil {
			return req, err
		}
		req.Model = model
		if req.Table == "" {
			req.Table = table
		}
	}

	table, err := catalog.Table(ctx, req.TableName())
	if err != nil {
		return req, fmt.Errorf("prompt: %w", err)
	}
	if err := w.driver.Info(ctx, fmt.Sprintf("%s: %d columns", table.Name, len(table.Columns))); err != nil {
		return req, err
	}

	all, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Show every column on every page?",
		Default: true,
	})
	if err != nil {
		return req, err
	}
	if all {
		return req, nil
	}

	names := table.ColumnNames()
	pk, _ := table.PrimaryKey()
	targets := []*[]string{&req.IndexColumns, &req.NewColumns, &req.ShowColumns, &req.EditColumns}
	for i, page := range pages {
		if *targets[i] != nil {
			continue
		}
		picked, err := w.driver.MultiSelect(ctx, SelectConfig{
			Message:  fmt.Sprintf("Columns for the %s page", page.name),
			Options:  names,
			Defaults: defaultColumns(names, pk.Name, page.writable),
		})
		if err != nil {
			return req, err
		}
		selected := make([]string, 0, len(picked))
		for _, idx := range picked {
			selected = append(selected, names[idx])
		}
		*targets[i] = selected
	}
	return req, nil
}

// askModel returns the model name and, when picked from a list, the table.
func (w *Wizard) askModel(ctx context.Context, tables []string) (string, string, error) {
	if len(tables) == 0 {
		model, err := w.driver.Input(ctx, InputConfig{
			Message: "Model name (singular)",
			Validator: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("model is required")
				}
				return nil
			},
		})
		return strings.TrimSpace(model), "", err
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "Table",
		Options: tables,
	})
	if err != nil {
		return "", "", err
	}
	if idx < 0 || idx >= len(tables) {
		return "", "", errors.New("prompt: no table selected")
	}
	return inflect.Singularize(tables[idx]), tables[idx], nil
}

// defaultColumns preselects every column, leaving the primary key and the
// managed timestamps off the writable pages.
func defaultColumns(names []string, pk string, writable bool) []int {
	out := make([]int, 0, len(names))
	for i, name := range names {
		if writable && (name == pk || name == "created_at" || name == "updated_at") {
			continue
		}
		out = append(out, i)
	}
	return out
}
