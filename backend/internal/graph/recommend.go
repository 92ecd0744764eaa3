package graph

// PotentialCustomers returns every node that is neither the company nor one
// of its direct successors, sorted by name. The caller must make sure the
// company is a node; see HasNode.
//
// This is a plain set difference. Edge weights and relation kinds are not
// used for ranking.
func PotentialCustomers(g *Graph, company string) []string {
	excluded := make(map[string]struct{})
	excluded[company] = struct{}{}
	for _, n := range g.Neighbors(company) {
		excluded[n] = struct{}{}
	}

	potential := make([]string, 0)
	for _, n := range g.Nodes() {
		if _, ok := excluded[n]; ok {
			continue
		}
		potential = append(potential, n)
	}
	return potential
}
