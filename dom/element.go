package dom

import "strings"

// CustomElementState is an element's position in the web-components custom
// element lifecycle.
type CustomElementState int

// Custom element states.
const (
	Undefined CustomElementState = iota
	Failed
	Uncustomized
	Precustomized
	Custom
)

// Element is a Node with kind ElementNode.
type Element struct {
	node

	// Namespace is the element's namespace URI, or "" if it has none.
	Namespace string

	// NamespacePrefix is the element's namespace prefix, or "" if it has
	// none.
	NamespacePrefix string

	// LocalName is the element's local name, e.g. "div" or "svg:rect"'s
	// "rect".
	LocalName string

	// Is holds the element's `is` value for customized built-in elements,
	// or "" if unset.
	Is string

	customElementState CustomElementState
	shadowRoot         *ShadowRoot
}

// NewElement creates a detached Element with the given local name,
// namespace, namespace prefix and `is` value, and custom element state
// Uncustomized. Use Document.CreateElement or Document.createElementConcept
// to construct an element via the full "create an element" algorithm.
func NewElement(debugName, localName, namespace, prefix, is string, doc *Document) *Element {
	e := &Element{
		Namespace:           namespace,
		NamespacePrefix:     prefix,
		LocalName:           localName,
		Is:                  is,
		customElementState: Uncustomized,
	}
	e.node.init(e, ElementNode, debugName, doc)
	return e
}

// ShadowRoot returns the element's attached shadow root, or nil.
func (e *Element) ShadowRoot() *ShadowRoot {
	return e.shadowRoot
}

// IsShadowHost reports whether e has an attached shadow root.
func (e *Element) IsShadowHost() bool {
	return e.shadowRoot != nil
}

// AttachShadow attaches sr as e's shadow root and sets sr's host back to e,
// satisfying invariant 8 (a ShadowRoot's host, if set, points to an Element
// whose shadow root points back to it).
func (e *Element) AttachShadow(sr *ShadowRoot) {
	e.shadowRoot = sr
	sr.setHost(e)
}

// CustomElementState returns e's position in the custom element lifecycle.
func (e *Element) CustomElementState() CustomElementState {
	return e.customElementState
}

// IsCustom reports whether e's custom element state is Custom.
func (e *Element) IsCustom() bool {
	return e.customElementState == Custom
}

// QualifiedName returns "prefix:local" if e has a namespace prefix, else
// just the local name.
// https://dom.spec.whatwg.org/#concept-element-qualified-name
func (e *Element) QualifiedName() string {
	if e.NamespacePrefix != "" {
		return e.NamespacePrefix + ":" + e.LocalName
	}
	return e.LocalName
}

// HTMLUppercasedQualifiedName returns the qualified name, uppercased
// (ASCII case-fold) iff e is in the HTML namespace and e's node document is
// an HTML document.
// https://dom.spec.whatwg.org/#concept-element-html-uppercased-qualified-name
func (e *Element) HTMLUppercasedQualifiedName() string {
	qn := e.QualifiedName()
	doc := e.NodeDocument()
	if e.Namespace == NamespaceHTML && doc != nil && doc.Type == HTMLDocument {
		return strings.ToUpper(qn)
	}
	return qn
}

// TagName is a synonym for HTMLUppercasedQualifiedName.
func (e *Element) TagName() string {
	return e.HTMLUppercasedQualifiedName()
}
