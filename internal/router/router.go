// Package router parses hash-fragment style addresses into routes. The app
// keeps the fragment form so a location can be typed, shown, and restored as
// a single string.
package router

import (
	"net/url"
	"strings"
)

// Page names every addressable screen.
type Page string

const (
	PageHome     Page = "beranda"
	PageLearn    Page = "belajar"
	PageModule   Page = "modul"
	PageQuiz     Page = "kuis"
	PageSims     Page = "simulasi"
	PagePlanner  Page = "planner"
	PageSecurity Page = "keamanan"
	PageAbout    Page = "tentang"
	PageNotFound Page = "notfound"
)

var knownPages = map[Page]bool{
	PageHome:     true,
	PageLearn:    true,
	PageModule:   true,
	PageQuiz:     true,
	PageSims:     true,
	PagePlanner:  true,
	PageSecurity: true,
	PageAbout:    true,
}

// Route is a parsed location.
type Route struct {
	Page       Page
	ResourceID string
	Query      map[string]string
}

// Fragment renders the route back to its address form.
func (r Route) Fragment() string {
	var b strings.Builder
	b.WriteString("#/")
	b.WriteString(string(r.Page))
	if r.ResourceID != "" {
		b.WriteString("/")
		b.WriteString(url.PathEscape(r.ResourceID))
	}
	if len(r.Query) > 0 {
		vals := url.Values{}
		for k, v := range r.Query {
			vals.Set(k, v)
		}
		b.WriteString("?")
		b.WriteString(vals.Encode())
	}
	return b.String()
}

// NavPage returns the page whose navigation entry should appear active. A
// module detail belongs under the learning section.
func (r Route) NavPage() Page {
	if r.Page == PageModule {
		return PageLearn
	}
	return r.Page
}

// Parse reads a fragment of the form "#/<page>[/<id>][?k=v&...]". An empty
// or bare fragment resolves to the home page; an unrecognized page resolves
// to the not-found page so the caller can render it without a second check.
// Query keys repeat last-wins, a key without "=" gets an empty value, and
// both keys and values are percent-decoded.
func Parse(fragment string) Route {
	raw := strings.TrimPrefix(fragment, "#")
	raw = strings.TrimPrefix(raw, "/")

	var query string
	if i := strings.Index(raw, "?"); i >= 0 {
		raw, query = raw[:i], raw[i+1:]
	}

	route := Route{Page: PageHome, Query: parseQuery(query)}
	if raw == "" {
		return route
	}

	parts := strings.SplitN(raw, "/", 2)
	route.Page = Page(decode(parts[0]))
	if len(parts) == 2 {
		route.ResourceID = decode(parts[1])
	}
	if !knownPages[route.Page] {
		route.Page = PageNotFound
	}
	return route
}

func parseQuery(query string) map[string]string {
	out := map[string]string{}
	if query == "" {
		return out
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		out[decode(key)] = decode(value)
	}
	return out
}

// decode percent-decodes, keeping the raw text when the escape is malformed.
func decode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
