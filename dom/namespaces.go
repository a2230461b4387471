package dom

// Namespace URIs recognized by the DOM and Infra specifications.
// See: https://infra.spec.whatwg.org/#namespaces
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)
