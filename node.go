package lexicon

import "bytes"

func (n *node) compare(key Key) int {
	return bytes.Compare(n.key, key)
}

func (n *node) hasPrefix(prefix Key) bool {
	return bytes.HasPrefix(n.key, prefix)
}

// find the leftmost node under n
func (n *node) minimum() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// attach places child under parent on the side its key belongs to.
func (n *node) attach(child *node) {
	if bytes.Compare(child.key, n.key) < 0 {
		n.left = child
	} else {
		n.right = child
	}
}

// consumePrefix walks the subtree in order, skipping the branches that
// cannot hold a key starting with prefix.
func (n *node) consumePrefix(prefix Key, sink func(Key)) {
	if n.left != nil && n.compare(prefix) > 0 {
		n.left.consumePrefix(prefix, sink)
	}

	match := n.hasPrefix(prefix)
	if match {
		sink(n.key.clone())
	}

	if n.right != nil && (match || n.compare(prefix) < 0) {
		n.right.consumePrefix(prefix, sink)
	}
}

// copyInto writes the subtree's keys into buf from index i on and returns
// the next free index.
func (n *node) copyInto(buf []Key, i int) int {
	if n == nil {
		return i
	}
	i = n.left.copyInto(buf, i)
	buf[i] = n.key.clone()
	i++
	return n.right.copyInto(buf, i)
}
