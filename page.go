package mdh

import "strings"

// PageConfig configures Page.
type PageConfig struct {
	Title string
	Theme Theme
}

// Page wraps a rendered HTML fragment into a complete standalone document
// with the theme's stylesheet inlined. The title is escaped like any other
// text.
func Page(body string, cfg PageConfig) string {
	th := cfg.Theme
	if th == nil {
		th = DefaultTheme()
	}
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = "Document"
	}
	var b strings.Builder
	b.Grow(len(body) + len(th.CSS()) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\" />\n<title>")
	escapeTo(&b, title)
	b.WriteString("</title>\n<style>\n")
	b.WriteString(th.CSS())
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") && body != "" {
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
