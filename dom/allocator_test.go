package dom

import "testing"

func TestNodeAllocatorElements(t *testing.T) {
	alloc := NewNodeAllocator()

	el := alloc.NewElement("div", "div", NamespaceHTML, "", "", nil)
	if el.LocalName != "div" {
		t.Fatalf("LocalName = %q, want %q", el.LocalName, "div")
	}
	if el.Namespace != NamespaceHTML {
		t.Fatalf("Namespace = %q, want %q", el.Namespace, NamespaceHTML)
	}
	if el.CustomElementState() != Uncustomized {
		t.Fatalf("CustomElementState = %v, want Uncustomized", el.CustomElementState())
	}

	elNS := alloc.NewElement("foreignObject", "foreignObject", NamespaceSVG, "", "", nil)
	if elNS.LocalName != "foreignObject" {
		t.Fatalf("LocalName = %q, want %q", elNS.LocalName, "foreignObject")
	}
	if elNS.Namespace != NamespaceSVG {
		t.Fatalf("Namespace = %q, want %q", elNS.Namespace, NamespaceSVG)
	}

	if el == (*Element)(nil) || elNS == (*Element)(nil) {
		t.Fatal("allocator should never hand back a nil element")
	}
	if el.ShadowRoot() != nil || elNS.ShadowRoot() != nil {
		t.Fatal("freshly allocated elements should have no shadow root")
	}
}

func TestNodeAllocatorTextComment(t *testing.T) {
	alloc := NewNodeAllocator()

	txt := alloc.NewText("text", "hello", nil)
	if txt.Data != "hello" {
		t.Fatalf("Data = %q, want %q", txt.Data, "hello")
	}
	if txt.Parent() != nil {
		t.Fatal("Text parent should be nil")
	}

	comment := alloc.NewComment("comment", "note", nil)
	if comment.Data != "note" {
		t.Fatalf("Data = %q, want %q", comment.Data, "note")
	}
	if comment.Parent() != nil {
		t.Fatal("Comment parent should be nil")
	}
}

func TestNodeAllocatorDocumentType(t *testing.T) {
	alloc := NewNodeAllocator()

	dt := alloc.NewDocumentType("doctype", "html", "pub", "sys", nil)
	if dt.Name != "html" || dt.PublicID != "pub" || dt.SystemID != "sys" {
		t.Fatalf("doctype fields mismatch: %+v", dt)
	}
	if dt.Parent() != nil {
		t.Fatal("DocumentType parent should be nil")
	}
}

func TestNodeAllocatorDocumentAndFragment(t *testing.T) {
	alloc := NewNodeAllocator()

	doc := alloc.NewDocument("doc", HTMLDocument, "text/html")
	el := alloc.NewElement("html", "html", NamespaceHTML, "", "", doc)
	appendChild(doc, el)
	if el.Parent() != doc {
		t.Fatal("element parent should be document")
	}

	frag := alloc.NewDocumentFragment("frag", doc)
	child := alloc.NewElement("span", "span", NamespaceHTML, "", "", doc)
	appendChild(frag, child)
	if child.Parent() != frag {
		t.Fatal("element parent should be fragment")
	}
}

func TestNodeAllocatorShadowRoot(t *testing.T) {
	alloc := NewNodeAllocator()

	doc := alloc.NewDocument("doc", HTMLDocument, "text/html")
	host := alloc.NewElement("host", "my-widget", NamespaceHTML, "", "", doc)
	sr := alloc.NewShadowRoot("shadow", doc)
	host.AttachShadow(sr)

	if !host.IsShadowHost() {
		t.Fatal("host should report IsShadowHost after AttachShadow")
	}
	if sr.Host() != host {
		t.Fatalf("sr.Host() = %v, want %v", sr.Host(), host)
	}
}

func TestNodeAllocatorStartsFreshChunkWhenFull(t *testing.T) {
	alloc := NewNodeAllocator()

	first := alloc.nextElement()
	for i := 0; i < elementChunkSize-1; i++ {
		alloc.nextElement()
	}
	// The chunk is now exhausted; the next allocation starts a fresh chunk
	// and must not alias the first one.
	next := alloc.nextElement()
	if first == next {
		t.Fatal("allocator handed out the same pointer across chunk boundary")
	}
}
