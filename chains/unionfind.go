package chains

// UnionFind tracks a partition of values into disjoint sets.
type UnionFind[T comparable] struct {
	parent map[T]T
	sets   int
}

func NewUnionFind[T comparable](values []T) *UnionFind[T] {
	uf := &UnionFind[T]{
		parent: make(map[T]T, len(values)),
	}

	for _, value := range values {
		if _, ok := uf.parent[value]; !ok {
			uf.parent[value] = value
			uf.sets++
		}
	}

	return uf
}

func (uf *UnionFind[T]) Find(x T) T {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// compress the path
	for x != uf.parent[x] {
		parent := uf.parent[x]
		uf.parent[x] = root
		x = parent
	}

	return root
}

// Union merges the sets of x and y. It returns false if both
// were already in the same set.
func (uf *UnionFind[T]) Union(x, y T) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)

	if rootX == rootY {
		return false
	}

	uf.parent[rootY] = rootX
	uf.sets--
	return true
}

// Sets returns the number of disjoint sets.
func (uf *UnionFind[T]) Sets() int {
	return uf.sets
}
