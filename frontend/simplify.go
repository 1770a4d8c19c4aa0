package frontend

import (
	"slices"

	"github.com/cottand/nform/internal/log"
)

var simplifyLogger = log.DefaultLogger.With("section", "frontend.simplify")

// Simplify applies idempotence and absorption to the groups of a normal
// form. Since groups are sets, repeated literals are already gone; then
//   - groups are sorted with CompareGroups,
//   - a group equal to its predecessor is dropped (A s A = A),
//   - a group strictly containing another group is dropped (A s (A o B) = A).
//
// The result is sorted and groups is not modified.
func Simplify(groups []Group) []Group {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, CompareGroups)
	unique := slices.CompactFunc(sorted, Group.Equal)

	simplified := make([]Group, 0, len(unique))
	for i, g := range unique {
		absorbed := slices.ContainsFunc(unique, func(other Group) bool {
			return g.StrictSuperset(other)
		})
		if absorbed {
			simplifyLogger.Debug("absorbed group", "group", g.String(), "index", i)
			continue
		}
		simplified = append(simplified, g)
	}
	simplifyLogger.Debug("simplified groups", "in", len(groups), "unique", len(unique), "out", len(simplified))
	return simplified
}
