package scrub

import "github.com/hajimehoshi/ebiten/v2"

// NodeKind distinguishes drawing behavior for a Node.
type NodeKind uint8

const (
	KindContainer NodeKind = iota // group node with no visual output
	KindBox                       // solid color rectangle of Width x Height
	KindText                      // debug-font text, optionally with a highlight sweep
	KindRing                      // orbital ring: dotted circle with rotating satellites
)

// Node is the fundamental screen element. A single flat struct is used for
// all node kinds to avoid interface dispatch on the hot path. Animated
// properties (OffsetX, OffsetY, Alpha, Rotation, ScaleX, ScaleY, FillPos)
// are plain float64 fields so timeline tracks can write them through
// pointers.
type Node struct {
	// Identity
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout (local, relative to parent)
	X, Y          float64
	Width, Height float64

	// Animated offset applied on top of X/Y. Kept separate so a timeline
	// can slide a node without losing its layout position.
	OffsetX, OffsetY float64

	// Visual properties
	Alpha    float64
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64
	Color    Color
	Visible  bool

	// Text fields (KindText)
	Text      string
	TextScale float64
	textImage *ebiten.Image // lazily created render cache

	// Highlight fields (KindText with Highlight set): a two-stop
	// background sweep. FillPos is the swept fraction in [0, 1].
	Highlight     bool
	FillPos       float64
	HighlightBase Color
	HighlightFill Color

	// Ring fields (KindRing)
	Radius     float64
	Satellites int

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.Alpha = 1
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.TextScale = 1
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Kind: KindContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid color rectangle node.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Kind: KindBox, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewText creates a text node rendered with the debug font.
func NewText(name, content string, scale float64) *Node {
	n := &Node{Name: name, Kind: KindText, Text: content}
	nodeDefaults(n)
	if scale > 0 {
		n.TextScale = scale
	}
	return n
}

// NewRing creates an orbital ring node: a dotted circle with a few
// satellite dots whose angular position follows Rotation.
func NewRing(name string, radius float64, satellites int) *Node {
	n := &Node{Name: name, Kind: KindRing, Radius: radius, Satellites: satellites}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scrub: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("scrub: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scrub: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Timelines observing a
// disposed target stop writing to it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	if n.textImage != nil {
		n.textImage.Deallocate()
		n.textImage = nil
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
