/*
cssdump is a tiny debugging CLI embedding the full pipeline: it parses a
stylesheet given on the command line, runs it against a small hard-coded
DOM fixture (HTML parsing is out of scope, spec.md §1), and dumps the
resulting fragment tree to stdout. It is a debugging aid, not part of the
core library.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"corebrowser/css/cascade"
	"corebrowser/css/syntax"
	"corebrowser/document"
	"corebrowser/dom"
	"corebrowser/fragment"
	"corebrowser/platform"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'corebrowser.cssdump'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.cssdump")
}

func main() {
	cssFile := flag.String("css", "", "path to a CSS stylesheet (author origin)")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	viewportW := flag.Float64("width", 800, "viewport width in px")
	viewportH := flag.Float64("height", 600, "viewport height in px")
	flag.Parse()

	setupTracing(*tlevel)

	var css string
	if *cssFile != "" {
		b, err := os.ReadFile(*cssFile)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		css = string(b)
	}

	sheet := cascade.Sheet{Stylesheet: syntax.Parse(css), Origin: cascade.OriginAuthor, Index: 0}
	root := toyFixture()

	doc := document.New(root, []cascade.Sheet{sheet}, platform.MonospaceFont{}, 16, *viewportW, *viewportH)
	result := doc.Render()

	pterm.Info.Printfln("document %s rendered at %gx%g", doc.ID, *viewportW, *viewportH)
	dumpFragment(result, 0)
}

// toyFixture builds the hard-coded <html><body><h1>…</h1><p>…</p></body>
// fixture cssdump renders, in place of a real HTML parser (spec.md §1's
// Non-goals exclude HTML parsing/DOM construction).
func toyFixture() dom.Node {
	root := dom.NewDocument()
	html := dom.NewElement("html", "", nil)
	dom.AppendChild(root, html)
	body := dom.NewElement("body", "", nil)
	dom.AppendChild(html, body)

	h1 := dom.NewElement("h1", "", nil)
	dom.AppendChild(h1, dom.NewText("My First Heading"))
	dom.AppendChild(body, h1)

	p := dom.NewElement("p", "", nil)
	dom.AppendChild(p, dom.NewText("My first paragraph."))
	dom.AppendChild(body, p)

	return root
}

func dumpFragment(f fragment.Fragment, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch f.Kind {
	case fragment.TextKind:
		pterm.Printfln("%s\"%s\" @ %v", indent, f.Text, f.Area)
	case fragment.BoxKind:
		name := "<anonymous>"
		if f.Node != nil {
			name = f.Node.LocalName()
		}
		pterm.Printfln("%s%s content=%v padding=%v border=%v margin=%v", indent, name,
			f.ContentArea, f.PaddingArea, f.BorderArea, f.MarginArea)
		for _, child := range f.Children {
			dumpFragment(child, depth+1)
		}
	}
}

func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.corebrowser.cssdump": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.LevelInfo)
}
