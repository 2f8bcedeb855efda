// Package scaffold generates development CRUD controllers. Given a model
// name and the columns each page should show, BuildController reads the
// table from a schema.Catalog, classifies every column (Describe) and walks
// a token template to emit gofmt'ed Go source. The emitted controller renders
// its pages with pkg/markup, persists through pkg/crud and mounts on a chi
// router under "/{model}".
//
// Generated controllers have no access control. Mount them only in
// development builds.
package scaffold
