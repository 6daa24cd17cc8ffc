package lexicon

// Lexicon is a set of strings kept in lexicographic order.
type Lexicon interface {
	Size() int
	GetMin() Key
	Contains(key Key) bool
	GetNext(key Key) (Key, error)

	ConsumeAll(sink func(Key)) error
	ConsumeAllWithPrefix(sink func(Key), prefix Key) error
	KeysWithPrefix(prefix Key) []Key

	Add(key Key) (bool, error)
	AddAll(keys []Key, lo, hi int) (int, error)

	ToArray(buf []Key) []Key
	Iterator() Iterator
}

type Iterator interface {
	HasNext() bool
	Next() (Key, error)
}

func New() Lexicon {
	return NewWithOptions(DefaultOptions)
}

func NewWithOptions(opts Options) Lexicon {
	return &lexicon{opts: opts}
}
