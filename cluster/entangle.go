package cluster

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/pthm-cable/longhaul/actions"
	"github.com/pthm-cable/longhaul/model"
)

// unionFind is a bare path-compressing disjoint-set over slice
// indices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// classify reports which entanglement rule connects a and b, if any.
// It does not consider STALEMATE — that is layered on by the exported
// Classify, since stalemate is a property of the pair's
// mutual-exclusion outcome, not of reference overlap alone.
func classify(a, b model.Action, state model.WorldState) Classification {
	refsA, refsB := a.Refs(), b.Refs()
	if intersects(refsA, refsB) {
		return ClassSharedTarget
	}
	targetsA, targetsB := actions.Targets(a), actions.Targets(b)
	if contains(targetsB, a.EntityID) || contains(targetsA, b.EntityID) {
		return ClassActorTargetDuality
	}
	if chainEntangled(refsA, refsB, state) {
		return ClassContainmentChain
	}
	return ClassNone
}

func entangled(a, b model.Action, state model.WorldState) bool {
	return classify(a, b, state) != ClassNone
}

// chainEntangled fires when two distinct referenced ids, one from
// each action, share an ancestor in the combined parent ∪ weld-parent
// chain (one is an ancestor of the other, or they share a common
// ancestor).
func chainEntangled(refsA, refsB []string, state model.WorldState) bool {
	for _, iA := range refsA {
		chainA := append(actions.Ancestors(iA, state), iA)
		setA := toSet(chainA)
		for _, iB := range refsB {
			if iA == iB {
				continue
			}
			if setA[iB] {
				return true
			}
			for _, b := range actions.Ancestors(iB, state) {
				if setA[b] {
					return true
				}
			}
		}
	}
	return false
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func intersects(a, b []string) bool {
	set := toSet(a)
	for _, id := range b {
		if set[id] {
			return true
		}
	}
	return false
}

func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// partition groups a wave's actions into disjoint entanglement
// clusters via union-find over the transitive closure of entangled
// pairs, then returns the clusters in deterministic order (by the
// lowest original index each cluster contains), each cluster's
// actions kept in original wave order.
func partition(wave []model.Action, state model.WorldState) [][]model.Action {
	n := len(wave)
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if entangled(wave[i], wave[j], state) {
				uf.union(i, j)
			}
		}
	}

	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	roots := maps.Keys(groups)
	sort.Slice(roots, func(a, b int) bool { return groups[roots[a]][0] < groups[roots[b]][0] })

	out := make([][]model.Action, 0, len(roots))
	for _, root := range roots {
		idx := groups[root]
		sort.Ints(idx)
		cluster := make([]model.Action, 0, len(idx))
		for _, i := range idx {
			cluster = append(cluster, wave[i])
		}
		out = append(out, cluster)
	}
	return out
}
