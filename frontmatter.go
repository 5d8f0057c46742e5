package mdh

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Metadata holds decoded front matter fields.
type Metadata map[string]any

// Title returns the title field as a string, if present.
func (m Metadata) Title() string {
	if m == nil {
		return ""
	}
	if title, ok := m["title"].(string); ok {
		return strings.TrimSpace(title)
	}
	return ""
}

// SplitFrontMatter splits YAML or TOML front matter from a markdown source
// and returns the decoded metadata and the remaining body. Sources without
// front matter come back unchanged with nil metadata.
func SplitFrontMatter(source string) (Metadata, string, error) {
	meta := Metadata{}
	rest, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return nil, source, fmt.Errorf("front matter: %w", err)
	}
	if len(meta) == 0 {
		meta = nil
	}
	return meta, string(rest), nil
}

// stripFrontMatter is the parse-path variant: malformed front matter stays
// in the body as literal text rather than failing the parse.
func stripFrontMatter(source string) (Metadata, string) {
	meta, body, err := SplitFrontMatter(source)
	if err != nil {
		return nil, source
	}
	return meta, body
}
