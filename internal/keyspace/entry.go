package keyspace

import "container/list"

// Kind discriminates the four value shapes a key can hold. A key never
// changes Kind in place — see entry, below.
type Kind int

const (
	KindString Kind = iota + 1
	KindList
	KindSet
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// entry is the tagged variant stored per key. Exactly one of the
// payload fields is populated, selected by Kind. List is backed by a
// doubly-linked list so push/pop at either end is O(1); Set and Hash
// use the obvious map representations.
type entry struct {
	kind Kind

	str  string
	list *list.List
	set  map[string]struct{}
	hash map[string]string
}

func newStringEntry(v string) *entry {
	return &entry{kind: KindString, str: v}
}

func newListEntry() *entry {
	return &entry{kind: KindList, list: list.New()}
}

func newSetEntry() *entry {
	return &entry{kind: KindSet, set: make(map[string]struct{})}
}

func newHashEntry() *entry {
	return &entry{kind: KindHash, hash: make(map[string]string)}
}

// empty reports whether a collection-kind entry has no elements left.
// String entries are never considered empty by this check — SET always
// creates a populated string.
func (e *entry) empty() bool {
	switch e.kind {
	case KindList:
		return e.list.Len() == 0
	case KindSet:
		return len(e.set) == 0
	case KindHash:
		return len(e.hash) == 0
	default:
		return false
	}
}
