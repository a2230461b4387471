// Command domtree builds a small sample DOM tree via the dom package's
// public API and prints its tree-order and shadow-including walks. It is a
// debugging aid, not a parser front-end.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oinseo/ywdom/dom"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	shadow := flag.Bool("shadow", true, "append an element with an attached shadow root to body (its shadow tree appears in the shadow-including walk)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Builds a sample DOM tree and prints its tree-order and shadow-including walks.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	doc, err := buildSampleTree(*shadow)
	if err != nil {
		return err
	}

	fmt.Println("tree order:")
	printWalk(dom.Node(doc), func(n dom.Node, visit func(dom.Node) bool) bool {
		return dom.InclusiveDescendants(n, visit)
	})

	fmt.Println("shadow-including order:")
	printWalk(dom.Node(doc), func(n dom.Node, visit func(dom.Node) bool) bool {
		return dom.ShadowIncludingInclusiveDescendants(n, visit)
	})

	return nil
}

func buildSampleTree(attachShadow bool) (*dom.Document, error) {
	doc := dom.NewDocument("doc", dom.HTMLDocument, "text/html")

	html, exc := doc.CreateElement("html")
	if exc != nil {
		return nil, exc
	}
	if _, exc := dom.Append(html, doc); exc != nil {
		return nil, exc
	}

	head, exc := doc.CreateElement("head")
	if exc != nil {
		return nil, exc
	}
	if _, exc := dom.Append(head, html); exc != nil {
		return nil, exc
	}

	body, exc := doc.CreateElement("body")
	if exc != nil {
		return nil, exc
	}
	if _, exc := dom.Append(body, html); exc != nil {
		return nil, exc
	}

	if attachShadow {
		widget, exc := doc.CreateElement("my-widget")
		if exc != nil {
			return nil, exc
		}
		if _, exc := dom.Append(widget, body); exc != nil {
			return nil, exc
		}

		shadowRoot := dom.NewShadowRoot("shadow", doc)
		widget.AttachShadow(shadowRoot)

		slotted := dom.NewText("slotted-text", "hello from the shadow tree", doc)
		if _, exc := dom.Append(slotted, shadowRoot); exc != nil {
			return nil, exc
		}
	}

	return doc, nil
}

func printWalk(root dom.Node, walk func(dom.Node, func(dom.Node) bool) bool) {
	walk(root, func(n dom.Node) bool {
		fmt.Printf("%s%s (%s)\n", strings.Repeat("  ", n.Index()), n.DebugName(), n.Kind())
		return true
	})
}
