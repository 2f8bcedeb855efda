// Package formkit bundles the request-facing helpers of the module: forms
// that pick up flashed validation errors from the request context, catalog
// loading for code generation and the controller scaffolder.
//
//	r := chi.NewRouter()
//	r.Use(flash.Middleware())
//	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
//		form, err := formkit.FormFor(r.Context(), account, func(f *forms.Form) {
//			f.Text("Username", "username")
//			f.Password("Password", "password")
//			f.Submit("Login")
//		}, forms.WithMethod("post"), forms.WithAction("/login"))
//		...
//	})
package formkit
