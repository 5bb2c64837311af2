// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var files embed.FS

const dateLayout = "2006-01-02"

var funcs = template.FuncMap{
	"date": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return "-"
			}
			return t.Format(dateLayout)
		case *time.Time:
			if t == nil || t.IsZero() {
				return "-"
			}
			return t.Format(dateLayout)
		}
		return "-"
	},
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	"short": func(ref string) string {
		if len(ref) > 8 {
			return ref[:8]
		}
		return ref
	},
	"add": func(a, b int) int {
		return a + b
	},
}

// Templates parses every page. Pages are rendered through "base", which
// picks the body from .Page.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
