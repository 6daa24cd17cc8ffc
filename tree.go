package lexicon

func (l *lexicon) Size() int {
	l.assertWellFormed("Size", stageStart)
	return l.size
}

func (l *lexicon) GetMin() Key {
	l.assertWellFormed("GetMin", stageStart)
	if l.root == nil {
		return nil
	}
	return l.root.minimum().key.clone()
}

func (l *lexicon) Contains(key Key) bool {
	l.assertWellFormed("Contains", stageStart)
	if key == nil {
		return false
	}

	n := l.root
	for n != nil {
		switch c := n.compare(key); {
		case c == 0:
			return true
		case c > 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// GetNext returns the least key strictly greater than key, or nil when
// there is none. key need not be in the lexicon.
func (l *lexicon) GetNext(key Key) (Key, error) {
	l.assertWellFormed("GetNext", stageStart)
	if key == nil {
		return nil, nullArg("GetNext", "key")
	}

	var result Key
	for n := l.root; n != nil; {
		if n.compare(key) <= 0 {
			n = n.right
		} else {
			result = n.key
			n = n.left
		}
	}
	return result.clone(), nil
}

func (l *lexicon) ConsumeAll(sink func(Key)) error {
	return l.consumeAllWithPrefix("ConsumeAll", sink, Key{})
}

// ConsumeAllWithPrefix calls sink once for every key starting with prefix,
// in ascending order. An empty prefix matches every key. Each key passed
// to sink is a copy.
func (l *lexicon) ConsumeAllWithPrefix(sink func(Key), prefix Key) error {
	return l.consumeAllWithPrefix("ConsumeAllWithPrefix", sink, prefix)
}

func (l *lexicon) consumeAllWithPrefix(op string, sink func(Key), prefix Key) error {
	l.assertWellFormed(op, stageStart)
	if sink == nil {
		return nullArg(op, "sink")
	}
	if prefix == nil {
		return nullArg(op, "prefix")
	}

	if l.root != nil {
		l.root.consumePrefix(prefix, sink)
	}
	return nil
}

func (l *lexicon) KeysWithPrefix(prefix Key) []Key {
	if prefix == nil {
		prefix = Key{}
	}
	l.assertWellFormed("KeysWithPrefix", stageStart)
	keys := make([]Key, 0)
	if l.root != nil {
		l.root.consumePrefix(prefix, func(k Key) {
			keys = append(keys, k)
		})
	}
	return keys
}

// Add inserts key and reports whether it was not already present.
func (l *lexicon) Add(key Key) (bool, error) {
	l.assertWellFormed("Add", stageStart)
	if key == nil {
		return false, nullArg("Add", "key")
	}

	var lag *node
	n := l.root
	for n != nil {
		c := n.compare(key)
		if c == 0 {
			return false, nil
		}
		lag = n
		if c < 0 {
			n = n.right
		} else {
			n = n.left
		}
	}

	n = newNode(key)
	if lag == nil {
		l.root = n
	} else {
		lag.attach(n)
	}
	l.size++

	l.assertWellFormed("Add", stageEnd)
	return true, nil
}

// AddAll adds keys[lo:hi] middle element first, then the lower and upper
// halves the same way, so that sorted input yields a balanced tree. It
// returns the number of keys actually added.
func (l *lexicon) AddAll(keys []Key, lo, hi int) (int, error) {
	l.assertWellFormed("AddAll", stageStart)
	if keys == nil {
		return 0, nullArg("AddAll", "keys")
	}
	if lo == hi {
		return 0, nil
	}
	if lo < 0 || hi < lo || hi > len(keys) {
		return 0, &ArgError{Op: "AddAll", Arg: "range", Err: ErrIndexRange}
	}

	added, err := l.addRange(keys, lo, hi)

	l.assertWellFormed("AddAll", stageEnd)
	return added, err
}

func (l *lexicon) addRange(keys []Key, lo, hi int) (int, error) {
	if lo == hi {
		return 0, nil
	}

	mid := lo + (hi-lo)/2
	added := 0
	ok, err := l.Add(keys[mid])
	if err != nil {
		return added, err
	}
	if ok {
		added++
	}

	n, err := l.addRange(keys, lo, mid)
	added += n
	if err != nil {
		return added, err
	}

	n, err = l.addRange(keys, mid+1, hi)
	added += n
	return added, err
}

// ToArray returns copies of the keys in order. buf is filled and returned
// when it can hold them all; its elements past Size() are left as they were.
func (l *lexicon) ToArray(buf []Key) []Key {
	l.assertWellFormed("ToArray", stageStart)
	if buf == nil || len(buf) < l.size {
		buf = make([]Key, l.size)
	}
	l.root.copyInto(buf, 0)
	return buf
}

func (l *lexicon) Iterator() Iterator {
	l.assertWellFormed("Iterator", stageStart)
	it := &iterator{}
	it.pushLeft(l.root)
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator) Next() (Key, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreKeys
	}
	top := len(it.stack) - 1
	cur := it.stack[top]
	it.stack = it.stack[:top]
	it.pushLeft(cur.right)
	return cur.key.clone(), nil
}

func (it *iterator) pushLeft(n *node) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
