package mdh

import (
	"fmt"
	"io"
)

// ParseAndRender converts a full markdown source into a complete HTML
// fragment. Every input produces some output; the only failures are input
// validation and the resource ceilings (ErrInvalidUTF8, ErrBinaryInput,
// ErrInputTooLarge, ErrNestingTooDeep). A failed call returns no partial
// result.
func ParseAndRender(source string, opts ...Option) (string, error) {
	doc, err := Parse(source, opts...)
	if err != nil {
		return "", err
	}
	return RenderHTML(doc), nil
}

// Parse parses a markdown source into a document tree. The tree is built
// fresh on every call and shares no state with other invocations.
func Parse(source string, opts ...Option) (Document, error) {
	cfg := newConfig(opts)
	if cfg.maxInput > 0 && len(source) > cfg.maxInput {
		return Document{}, fmt.Errorf("parse: input is %d bytes, limit %d: %w", len(source), cfg.maxInput, ErrInputTooLarge)
	}
	if err := ValidateString(source); err != nil {
		return Document{}, fmt.Errorf("parse: %w", err)
	}
	body := source
	if cfg.frontMatter {
		_, body = stripFrontMatter(source)
	}
	doc, err := parseBlocks(body, cfg.maxDepth)
	if err != nil {
		return Document{}, fmt.Errorf("parse: %w", err)
	}
	return doc, nil
}

// ExportRaw returns the original source unchanged, byte for byte. The raw
// export path performs no transformation; persistence belongs to the caller.
func ExportRaw(source string) string {
	return source
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Render reads a markdown source from a reader and writes the rendered HTML
// fragment to a writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newConfig(req.Options)
	source, err := readSource(req.Reader, cfg.maxInput)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	out, err := ParseAndRender(source, req.Options...)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// readSource reads everything up to the input ceiling; anything beyond it is
// a whole-call failure, not a truncated render.
func readSource(r io.Reader, maxInput int) (string, error) {
	if maxInput <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(maxInput)+1))
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if len(data) > maxInput {
		return "", fmt.Errorf("input exceeds %d bytes: %w", maxInput, ErrInputTooLarge)
	}
	return string(data), nil
}
