// Package pagegen renders a front-matter-annotated Markdown document into
// a final HTML page.
//
// # Quick Start
//
// Create a service and render a document:
//
//	svc := pagegen.New()
//
//	page, err := svc.Render(ctx, pagegen.Input{
//	    Source: "---\nlayout: default\ntitle: Hello\n---\n# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(page.HTML), 0644)
//
// The result carries the final HTML (page.HTML) and the parsed front
// matter (page.Metadata).
//
// # Rendering Pipeline
//
// A render follows these stages:
//
//  1. Front matter split (metadata block + body)
//  2. Body preprocessing (line normalization, blank-line compression)
//  3. Markdown to HTML via goldmark (GFM, footnotes)
//  4. Layout composition ({{ content }} slot, parent layout chains)
//
// Fenced code blocks in the body are opaque text: they are copied into the
// output without interpretation, and without tokenization unless
// Input.Highlight is set.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	loader, err := pagegen.NewLayoutLoader("./layouts")
//	svc := pagegen.New(
//	    pagegen.WithLayoutLoader(loader),
//	    pagegen.WithDefaultLayout("post"),
//	)
//
// The layout used for a document is resolved in order: Input.Layout, the
// document's "layout" metadata key, then the service default.
package pagegen
