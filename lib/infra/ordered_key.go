package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the new key.
//  1. i == j (i-j == 0, return 0)
//  2. i > j (i-j > 0, return 1), turn to right part.
//  3. i < j (i-j < 0, return -1), turn to left part.
type OrderedKeyComparator[K OrderedKey] func(i, j K) int64

// LessFunc is a strict weak ordering over K.
// Two keys are equivalent when neither is less than the other.
type LessFunc[K any] func(i, j K) bool

func OrderedLess[K OrderedKey](i, j K) bool {
	return i < j
}

func OrderedCompare[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

// ReverseLess flips the ordering, i.e. descending order.
func ReverseLess[K any](less LessFunc[K]) LessFunc[K] {
	return func(i, j K) bool {
		return less(j, i)
	}
}

// LessFromComparator adapts a three-way comparator into a strict less-than.
func LessFromComparator[K OrderedKey](cmp OrderedKeyComparator[K]) LessFunc[K] {
	return func(i, j K) bool {
		return cmp(i, j) < 0
	}
}
