package dom

// InclusiveDescendants visits n, then recurses left-to-right over its
// children, in tree order. visit returns a continue/stop flag; returning
// false aborts the whole walk (its own return value is also false).
func InclusiveDescendants(n Node, visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if !InclusiveDescendants(child, visit) {
			return false
		}
	}
	return true
}

// Descendants visits n's descendants, excluding n itself, in tree order.
func Descendants(n Node, visit func(Node) bool) bool {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if !InclusiveDescendants(child, visit) {
			return false
		}
	}
	return true
}

// ShadowIncludingInclusiveDescendants visits n, then n's shadow-including
// descendants. When a visited node is a shadow host, its shadow root (and
// the shadow root's own shadow-including descendants) is recursed into
// before the host's ordinary light-DOM children, per the shadow-including
// tree order.
func ShadowIncludingInclusiveDescendants(n Node, visit func(Node) bool) bool {
	if !visit(n) {
		return false
	}
	return ShadowIncludingDescendants(n, visit)
}

// CollectShadowIncludingInclusiveDescendants returns n and its
// shadow-including descendants as a tree-order slice.
func CollectShadowIncludingInclusiveDescendants(n Node) []Node {
	var result []Node
	ShadowIncludingInclusiveDescendants(n, func(d Node) bool {
		result = append(result, d)
		return true
	})
	return result
}

// ShadowIncludingDescendants visits n's shadow-including descendants,
// excluding n itself.
func ShadowIncludingDescendants(n Node, visit func(Node) bool) bool {
	if e, ok := n.(*Element); ok {
		if sr := e.ShadowRoot(); sr != nil {
			if !ShadowIncludingInclusiveDescendants(sr, visit) {
				return false
			}
		}
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if !ShadowIncludingInclusiveDescendants(child, visit) {
			return false
		}
	}
	return true
}
