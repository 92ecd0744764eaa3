package graph

import (
	"reflect"
	"sort"
	"testing"

	"company-graph/backend/internal/records"
)

func buildDefault(t *testing.T) *Graph {
	t.Helper()
	return Build(records.NewDefaultStore())
}

func asSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func TestBuild_NodesAreSalesParticipants(t *testing.T) {
	store := records.NewDefaultStore()
	g := Build(store)

	for _, row := range store.Sales() {
		if !g.HasNode(row.Seller) {
			t.Errorf("seller %q missing from graph", row.Seller)
		}
		if !g.HasNode(row.Buyer) {
			t.Errorf("buyer %q missing from graph", row.Buyer)
		}
	}

	want := []string{
		"AgriTech Partners",
		"FinTech Global",
		"Green Energy Corp",
		"HealthWorks Ltd",
		"Retail Solutions LLC",
		"SmartHome Devices Co",
		"Tech Innovators Inc",
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestBuild_EdgeCounts(t *testing.T) {
	stats := buildDefault(t).Stats()

	if stats.Nodes != 7 {
		t.Errorf("expected 7 nodes, got %d", stats.Nodes)
	}
	if stats.Edges != 29 {
		t.Errorf("expected 29 edges, got %d", stats.Edges)
	}
	if stats.ByRelation[RelationSales] != 5 {
		t.Errorf("expected 5 sales edges, got %d", stats.ByRelation[RelationSales])
	}
	if stats.ByRelation[RelationESG] != 12 {
		t.Errorf("expected 12 ESG edges, got %d", stats.ByRelation[RelationESG])
	}
	if stats.ByRelation[RelationFinancial] != 12 {
		t.Errorf("expected 12 financial edges, got %d", stats.ByRelation[RelationFinancial])
	}
}

func TestBuild_KeepsParallelSelfLoops(t *testing.T) {
	g := buildDefault(t)

	loops := g.EdgesBetween("Tech Innovators Inc", "Tech Innovators Inc")
	if len(loops) != 6 {
		t.Fatalf("expected 6 self-loops, got %d", len(loops))
	}

	var esgWeights, financialWeights []float64
	for _, e := range loops {
		switch e.Relation {
		case RelationESG:
			esgWeights = append(esgWeights, e.Weight)
		case RelationFinancial:
			financialWeights = append(financialWeights, e.Weight)
		}
	}
	if !reflect.DeepEqual(esgWeights, []float64{75, 77, 80}) {
		t.Errorf("ESG weights = %v", esgWeights)
	}
	if !reflect.DeepEqual(financialWeights, []float64{50000, 70000, 80000}) {
		t.Errorf("financial weights = %v", financialWeights)
	}
}

func TestBuild_KeepsRepeatedTransactions(t *testing.T) {
	store := records.NewStore([]records.SalesRecord{
		{Seller: "A", Buyer: "B", Amount: 10},
		{Seller: "A", Buyer: "B", Amount: 20},
	}, nil, nil)
	g := Build(store)

	edges := g.EdgesBetween("A", "B")
	if len(edges) != 2 {
		t.Fatalf("expected 2 parallel edges, got %d", len(edges))
	}
	if edges[0].Weight != 10 || edges[1].Weight != 20 {
		t.Errorf("unexpected weights: %v", edges)
	}
	if got := g.Neighbors("A"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Neighbors(A) = %v, want [B]", got)
	}
}

func TestBuild_AddsIsolatedSelfLoopNodes(t *testing.T) {
	store := records.NewStore(
		[]records.SalesRecord{{Seller: "A", Buyer: "B", Amount: 1}},
		[]records.FinancialRecord{{Year: 2023, Company: "Solo", NetIncome: 5}},
		[]records.EsgRecord{{Year: 2023, Company: "Solo", OverallScore: 50}},
	)
	g := Build(store)

	if !g.HasNode("Solo") {
		t.Fatal("expected Solo to be added as a node")
	}
	if n := g.Neighbors("Solo"); len(n) != 0 {
		t.Errorf("expected Solo to have no neighbors, got %v", n)
	}
	if got := PotentialCustomers(g, "Solo"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("PotentialCustomers(Solo) = %v", got)
	}
	if got := PotentialCustomers(g, "A"); !reflect.DeepEqual(got, []string{"Solo"}) {
		t.Errorf("PotentialCustomers(A) = %v", got)
	}
}

func TestNeighbors_SuccessorsOnly(t *testing.T) {
	g := buildDefault(t)

	got := asSet(g.Neighbors("Tech Innovators Inc"))
	want := asSet([]string{"Retail Solutions LLC", "SmartHome Devices Co"})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(Tech Innovators Inc) = %v, want %v", got, want)
	}

	// Retail Solutions LLC only ever buys.
	if n := g.Neighbors("Retail Solutions LLC"); len(n) != 0 {
		t.Errorf("expected no successors for a pure buyer, got %v", n)
	}
}

func TestPotentialCustomers_Scenario(t *testing.T) {
	g := buildDefault(t)

	got := PotentialCustomers(g, "Tech Innovators Inc")
	want := []string{
		"AgriTech Partners",
		"FinTech Global",
		"Green Energy Corp",
		"HealthWorks Ltd",
	}
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PotentialCustomers = %v, want %v", got, want)
	}
}

func TestPotentialCustomers_PartitionsNodes(t *testing.T) {
	g := buildDefault(t)

	for _, company := range g.Nodes() {
		neighbors := asSet(g.Neighbors(company))
		potential := asSet(PotentialCustomers(g, company))

		if _, ok := potential[company]; ok {
			t.Errorf("%s: company listed as its own potential customer", company)
		}
		for n := range neighbors {
			if _, ok := potential[n]; ok {
				t.Errorf("%s: %s is both neighbor and potential customer", company, n)
			}
		}

		union := make(map[string]struct{})
		union[company] = struct{}{}
		for n := range neighbors {
			union[n] = struct{}{}
		}
		for p := range potential {
			union[p] = struct{}{}
		}
		if !reflect.DeepEqual(union, asSet(g.Nodes())) {
			t.Errorf("%s: neighbors, potential customers and self do not cover all nodes", company)
		}
	}
}

func TestPotentialCustomers_Idempotent(t *testing.T) {
	g := buildDefault(t)

	first := PotentialCustomers(g, "Green Energy Corp")
	second := PotentialCustomers(g, "Green Energy Corp")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between calls: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(Build(records.NewDefaultStore()).Edges(), g.Edges()) {
		t.Error("rebuilding from the same store produced different edges")
	}
}

func TestEdgesFrom_InsertionOrder(t *testing.T) {
	g := buildDefault(t)

	edges := g.EdgesFrom("Green Energy Corp")
	if len(edges) != 8 {
		t.Fatalf("expected 2 sales edges and 6 self-loops, got %d", len(edges))
	}
	if edges[0].Target != "HealthWorks Ltd" || edges[1].Target != "AgriTech Partners" {
		t.Errorf("sales edges out of order: %v", edges[:2])
	}
	for i, e := range edges {
		if e.IsSelfLoop() != (i >= 2) {
			t.Errorf("edge %d: IsSelfLoop() = %v for %v", i, e.IsSelfLoop(), e)
		}
	}
	if edges[2].Relation != RelationESG || edges[5].Relation != RelationFinancial {
		t.Errorf("self-loops out of order: %v", edges[2:])
	}

	if got := g.EdgesFrom("Nonexistent Co"); len(got) != 0 {
		t.Errorf("expected no edges for unknown company, got %v", got)
	}
}

func TestWeightedLine(t *testing.T) {
	g := New()
	g.AddEdge("A", "B", RelationSales, 42)

	lines := weightedLines(g.g.Lines(g.ids["A"], g.ids["B"]))
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Weight() != 42 || line.Relation != RelationSales {
		t.Errorf("unexpected line: %+v", line)
	}

	reversed := line.ReversedLine()
	if reversed.From().ID() != line.To().ID() || reversed.ID() != line.ID() {
		t.Errorf("ReversedLine() = %+v", reversed)
	}
}
