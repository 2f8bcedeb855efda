package flash

import (
	"encoding/base64"
	"maps"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultCookieName names the cookie used by CookieStore.
const DefaultCookieName = "formkit_flash"

// CookieOption customises a CookieStore.
type CookieOption func(*cookieConfig)

type cookieConfig struct {
	name   string
	path   string
	secure bool
}

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) CookieOption {
	return func(cfg *cookieConfig) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithCookiePath scopes the cookie to path. Defaults to "/".
func WithCookiePath(path string) CookieOption {
	return func(cfg *cookieConfig) {
		if path != "" {
			cfg.path = path
		}
	}
}

// WithSecureCookie marks the cookie Secure.
func WithSecureCookie() CookieOption {
	return func(cfg *cookieConfig) {
		cfg.secure = true
	}
}

// CookieStore is a request-scoped Store persisted in a single cookie. Data
// read from the incoming request is consumed: the cookie is expired on the
// response unless Set writes new data.
type CookieStore struct {
	w        http.ResponseWriter
	cfg      cookieConfig
	incoming map[string]map[string]string
	outgoing map[string]map[string]string
	// cleared holds keys emptied during this request; they hide incoming data.
	cleared map[string]struct{}
}

// FromRequest decodes the flash cookie of r and returns a store that writes
// its changes to w. A missing or malformed cookie yields an empty store.
func FromRequest(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *CookieStore {
	cfg := cookieConfig{name: DefaultCookieName, path: "/"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	store := &CookieStore{
		w:        w,
		cfg:      cfg,
		outgoing: make(map[string]map[string]string),
		cleared:  make(map[string]struct{}),
	}

	cookie, err := r.Cookie(cfg.name)
	if err != nil {
		return store
	}
	store.incoming = decode(cookie.Value)
	store.write()
	return store
}

// Get returns the map set during this request, falling back to the one
// carried in by the request cookie unless the key was cleared.
func (s *CookieStore) Get(key string) map[string]string {
	if values, ok := s.outgoing[key]; ok {
		return maps.Clone(values)
	}
	if _, ok := s.cleared[key]; ok {
		return nil
	}
	return maps.Clone(s.incoming[key])
}

// Set stores values for the next request and rewrites the response cookie.
// A nil or empty map clears key for the rest of this request as well.
func (s *CookieStore) Set(key string, values map[string]string) {
	if len(values) == 0 {
		delete(s.outgoing, key)
		s.cleared[key] = struct{}{}
	} else {
		s.outgoing[key] = maps.Clone(values)
		delete(s.cleared, key)
	}
	s.write()
}

func (s *CookieStore) write() {
	if s.w == nil {
		return
	}
	dropSetCookie(s.w.Header(), s.cfg.name)

	cookie := &http.Cookie{
		Name:     s.cfg.name,
		Path:     s.cfg.path,
		HttpOnly: true,
		Secure:   s.cfg.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if len(s.outgoing) == 0 {
		cookie.MaxAge = -1
	} else {
		encoded, err := encode(s.outgoing)
		if err != nil {
			return
		}
		cookie.Value = encoded
	}
	http.SetCookie(s.w, cookie)
}

func encode(data map[string]map[string]string) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

func decode(value string) map[string]map[string]string {
	if value == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var data map[string]map[string]string
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil
	}
	return data
}

// dropSetCookie removes earlier Set-Cookie lines for name so the response
// carries only the latest state of the store.
func dropSetCookie(header http.Header, name string) {
	lines := header.Values("Set-Cookie")
	if len(lines) == 0 {
		return
	}
	prefix := name + "="
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
}

// Middleware attaches a CookieStore to each request context.
func Middleware(opts ...CookieOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := FromRequest(w, r, opts...)
			next.ServeHTTP(w, r.WithContext(WithStore(r.Context(), store)))
		})
	}
}
