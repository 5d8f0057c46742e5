package mdh

import (
	"sort"
	"strings"
)

// Theme provides a named stylesheet for standalone pages.
type Theme interface {
	Name() string
	CSS() string
}

type theme struct {
	name string
	css  string
}

func (t theme) Name() string { return t.name }
func (t theme) CSS() string  { return t.css }

// NewTheme returns a Theme from a stylesheet.
func NewTheme(name, css string) Theme {
	return theme{name: name, css: css}
}

const baseCSS = `body { max-width: 46em; margin: 2em auto; padding: 0 1em; line-height: 1.5; }
pre { padding: 0.8em; overflow-x: auto; }
code { font-family: ui-monospace, monospace; }
img { max-width: 100%; }
`

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", css: baseCSS + `body { font-family: system-ui, sans-serif; color: #1a1a1a; background: #ffffff; }
pre, code { background: #f2f2f2; }
a { color: #0b57d0; }
`},
	"dark": theme{name: "dark", css: baseCSS + `body { font-family: system-ui, sans-serif; color: #d8dee9; background: #14171c; }
pre, code { background: #1f242c; }
a { color: #7aa2f7; }
`},
	"paper": theme{name: "paper", css: baseCSS + `body { font-family: Georgia, serif; color: #262220; background: #faf6ee; }
pre, code { background: #efe9db; }
a { color: #7a4a21; }
`},
	"terminal": theme{name: "terminal", css: baseCSS + `body { font-family: ui-monospace, monospace; color: #c6f1c6; background: #0b0f0b; }
pre, code { background: #142214; }
a { color: #7fffd4; }
`},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
