package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// buildFromNetHTML mirrors a parsed golang.org/x/net/html tree into this
// package's node graph, used as a structural cross-check: the mirrored tree
// should have the same element count as the reference tree, and its
// child/sibling walk and its following-chain walk should visit the same
// number of nodes.
func buildFromNetHTML(t *testing.T, doc *Document, n *html.Node, parent Node) Node {
	t.Helper()

	var built Node
	switch n.Type {
	case html.ElementNode:
		e := NewElement(n.Data, n.Data, NamespaceHTML, "", "", doc)
		built = e
	case html.TextNode:
		built = NewText("text", n.Data, doc)
	case html.CommentNode:
		built = NewComment("comment", n.Data, doc)
	case html.DoctypeNode:
		built = NewDocumentType("doctype", n.Data, "", "", doc)
	default:
		return nil
	}

	if _, exc := Append(built, parent); exc != nil {
		t.Fatalf("Append during cross-check build failed: %v", exc)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		buildFromNetHTML(t, doc, c, built)
	}
	return built
}

func countNetHTMLElements(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countNetHTMLElements(c)
	}
	return count
}

func countElements(n Node) int {
	count := 0
	InclusiveDescendants(n, func(d Node) bool {
		if d.Kind() == ElementNode {
			count++
		}
		return true
	})
	return count
}

func TestCrossCheckAgainstNetHTMLElementCounts(t *testing.T) {
	const src = `<!DOCTYPE html>
<html>
<head><title>Cross-check</title></head>
<body>
<div id="main">
<p class="intro">Hello, <b>World</b>!</p>
<ul>
<li>Item 1</li>
<li>Item 2</li>
</ul>
</div>
</body>
</html>`

	refDoc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse failed: %v", err)
	}

	ownDoc := NewDocument("doc", HTMLDocument, "text/html")
	for c := refDoc.FirstChild; c != nil; c = c.NextSibling {
		buildFromNetHTML(t, ownDoc, c, ownDoc)
	}

	wantElements := countNetHTMLElements(refDoc)
	gotElements := countElements(ownDoc)
	if gotElements != wantElements {
		t.Fatalf("element count = %d, want %d (golang.org/x/net/html reference)", gotElements, wantElements)
	}

	htmlEl := ownDoc.DocumentElement()
	if htmlEl == nil {
		t.Fatal("ownDoc.DocumentElement() is nil")
	}
	if htmlEl.LocalName != "html" {
		t.Fatalf("document element local name = %q, want %q", htmlEl.LocalName, "html")
	}
	if ownDoc.Doctype() == nil || ownDoc.Doctype().Name != "html" {
		t.Fatal("expected an html doctype to have been carried over")
	}
}

func TestCrossCheckTreeOrderWalkVisitsEveryNode(t *testing.T) {
	const src = `<div><p>a</p><p>b<span>c</span></p></div>`

	refDoc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("html.Parse failed: %v", err)
	}

	ownDoc := NewDocument("doc", HTMLDocument, "text/html")
	for c := refDoc.FirstChild; c != nil; c = c.NextSibling {
		buildFromNetHTML(t, ownDoc, c, ownDoc)
	}

	var viaChildren, viaFollowing int
	InclusiveDescendants(ownDoc, func(Node) bool {
		viaChildren++
		return true
	})

	for cur := Node(ownDoc); cur != nil; cur = cur.Following() {
		viaFollowing++
	}

	if viaChildren != viaFollowing {
		t.Fatalf("tree-order walk via children visited %d nodes, via following visited %d", viaChildren, viaFollowing)
	}
}
