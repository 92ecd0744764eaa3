package graph

import (
	"company-graph/backend/internal/records"
)

// Build constructs the relationship graph from the record store.
//
// Nodes are every seller and buyer in the sales table. Each sales row adds a
// seller -> buyer edge weighted by amount; each ESG row adds a self-loop
// weighted by the overall score; each financial row adds a self-loop weighted
// by net income. Companies that only appear in the ESG or financial tables
// become isolated nodes carrying just their self-loops. Nothing is
// deduplicated.
func Build(store *records.Store) *Graph {
	g := New()

	sales := store.Sales()
	for _, row := range sales {
		g.AddNode(row.Seller)
		g.AddNode(row.Buyer)
	}
	for _, row := range sales {
		g.AddEdge(row.Seller, row.Buyer, RelationSales, row.Amount)
	}

	for _, row := range store.ESG() {
		g.AddEdge(row.Company, row.Company, RelationESG, row.OverallScore)
	}

	for _, row := range store.Financials() {
		g.AddEdge(row.Company, row.Company, RelationFinancial, row.NetIncome)
	}

	return g
}
