package ast

// Walk calls fn for node and then for every node in its subtree, depth
// first, in source order. Walk stops descending into a subtree when fn
// returns false for its root.
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}
