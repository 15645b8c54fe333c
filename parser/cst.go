// Package parser implements a recursive-descent LL(k≤3) parser that turns a
// token.Token stream into a concrete syntax tree (spec.md §4.2 / component
// C3). The CST is transient: the ast package lifts it into typed pipeline
// stages and nothing downstream holds onto it.
package parser

import "github.com/viant/splfield/token"

// Node is a tagged CST node. Tag is the grammar rule name ("pipeline",
// "command", "evalCommand", ...). Children is keyed by grammar label
// ("optionName", "optionValue", "lhs", "rhs", ...) so the lifter can look
// values up by name instead of positionally.
type Node struct {
	Tag      string
	Token    *token.Token // set for leaf nodes that wrap a single token
	Children map[string][]Item
	Span     token.Span
}

// Item is either a child Node or a leaf Token; exactly one of the two is
// set. Grammar labels index into Node.Children as []Item because a label
// like "optionName" can repeat (one per option in a command).
type Item struct {
	Node  *Node
	Token *token.Token
}

func nodeItem(n *Node) Item   { return Item{Node: n} }
func tokenItem(t token.Token) Item { return Item{Token: &t} }

// Add appends an Item under label.
func (n *Node) Add(label string, it Item) {
	if n.Children == nil {
		n.Children = map[string][]Item{}
	}
	n.Children[label] = append(n.Children[label], it)
}

// First returns the first item under label, or nil if absent.
func (n *Node) First(label string) *Item {
	items := n.Children[label]
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// All returns every item under label.
func (n *Node) All(label string) []Item {
	return n.Children[label]
}

// TokenText returns the literal text of a single-token label, or "".
func (n *Node) TokenText(label string) string {
	it := n.First(label)
	if it == nil {
		return ""
	}
	if it.Token != nil {
		return it.Token.Text
	}
	return ""
}
