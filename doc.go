// Package mdh converts Markdown to HTML.
//
// The package parses a markdown source into a document tree and renders the
// tree as an escaped, well-formed HTML fragment. Parsing never rejects
// malformed markdown: unrecognized or unterminated markup degrades to
// literal text, so every input produces some output. The only failures are
// input validation (UTF-8, binary detection) and resource ceilings on input
// size and nesting depth.
//
// Each call builds its own tree and shares no state with other calls, so the
// pipeline is safe to invoke from any goroutine and fast enough to run on
// every text-change event of a live editor.
//
// Example:
//
//	html, err := mdh.ParseAndRender("# Hello\n\nMarkdown in, *HTML* out.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(html)
//
// Rendering can be customized with Options such as WithMaxNestingDepth, and
// the rendered fragment can be wrapped into a full themed page with Page.
package mdh
