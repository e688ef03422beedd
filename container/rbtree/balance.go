package rbtree

// rebalance restores the red-black properties after n was linked into the tree
// as a red node. Each call applies exactly one of the cases below; only the
// recoloring case continues, from the grandparent of n.
func (t *Tree[T]) rebalance(n *node[T]) {
	p := n.parent

	// n is the root.
	if p == nil {
		n.color = Black
		return
	}

	// A black parent accepts a red child.
	if p.color == Black {
		return
	}

	// Erase does not recolor and may leave a red root, which is painted black
	// like a red node reaching the root.
	g := p.parent
	if g == nil {
		p.color = Black
		return
	}

	aunt := g.right
	if p == g.right {
		aunt = g.left
	}

	// Red aunt: push the red up to the grandparent and start over from there.
	if aunt != nil && aunt.color == Red {
		p.color = Black
		aunt.color = Black
		g.color = Red
		t.rebalance(g)
		return
	}

	// Black or missing aunt: rotate so that the middle value of n, p and g
	// takes the place of g. The link must be looked up before g moves.
	link, top := t.slot(g), g.parent

	switch {
	case p == g.left && n == p.left:
		g.attachLeft(p.right)
		p.attachRight(g)
		promote(link, top, p, g)

	case p == g.right && n == p.right:
		g.attachRight(p.left)
		p.attachLeft(g)
		promote(link, top, p, g)

	case p == g.left && n == p.right:
		g.attachLeft(n.right)
		p.attachRight(n.left)
		n.attachLeft(p)
		n.attachRight(g)
		promote(link, top, n, g)

	default:
		g.attachRight(n.left)
		p.attachLeft(n.right)
		n.attachLeft(g)
		n.attachRight(p)
		promote(link, top, n, g)
	}
}

// promote installs m in the link previously held by g, under parent top, and
// paints the rotated pair.
func promote[T any](link **node[T], top, m, g *node[T]) {
	*link = m
	m.parent = top
	m.color = Black
	g.color = Red
}
