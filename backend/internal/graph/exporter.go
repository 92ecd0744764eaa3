package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"company-graph/backend/pkg/logger"
)

// ============================================================================
// Neo4j Export
// ============================================================================

// relationshipTypes maps relation kinds to Neo4j relationship types.
// Cypher cannot parameterize relationship types, so only these are ever
// interpolated into queries.
var relationshipTypes = map[Relation]string{
	RelationSales:     "SALES",
	RelationESG:       "ESG",
	RelationFinancial: "FINANCIAL",
}

// ExportResult reports what an export wrote
type ExportResult struct {
	Nodes      int              `json:"nodes"`
	ByRelation map[Relation]int `json:"by_relation"`
}

// Exporter mirrors a relationship graph into Neo4j
type Exporter struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *zap.Logger
}

// NewExporter creates a new Neo4j exporter. An empty database selects the
// server default.
func NewExporter(driver neo4j.DriverWithContext, database string) *Exporter {
	return &Exporter{
		driver:   driver,
		database: database,
		logger:   logger.Get(),
	}
}

func (e *Exporter) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return e.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: e.database,
	})
}

// EnsureConstraints creates the company name uniqueness constraint
func (e *Exporter) EnsureConstraints(ctx context.Context) error {
	session := e.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `CREATE CONSTRAINT company_name_unique IF NOT EXISTS
		FOR (c:Company) REQUIRE c.name IS UNIQUE`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return fmt.Errorf("failed to create constraint: %w", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("failed to create constraint: %w", err)
	}
	return nil
}

// Wipe removes every previously exported company and its relationships
func (e *Exporter) Wipe(ctx context.Context) error {
	session := e.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (c:Company) DETACH DELETE c", nil)
	if err != nil {
		return fmt.Errorf("failed to wipe companies: %w", err)
	}
	summary, err := result.Consume(ctx)
	if err != nil {
		return fmt.Errorf("failed to wipe companies: %w", err)
	}

	e.logger.Info("Wiped exported companies",
		zap.Int("nodes_deleted", summary.Counters().NodesDeleted()),
		zap.Int("relationships_deleted", summary.Counters().RelationshipsDeleted()),
	)
	return nil
}

// Export writes every node, then every edge. Edges are CREATEd with a fresh
// id so parallel edges stay distinct. Each relation kind is written in its
// own transaction, concurrently.
func (e *Exporter) Export(ctx context.Context, g *Graph) (*ExportResult, error) {
	nodes := g.Nodes()
	if err := e.writeNodes(ctx, nodes); err != nil {
		return nil, err
	}

	grouped := groupByRelation(g.Edges())
	result := &ExportResult{
		Nodes:      len(nodes),
		ByRelation: make(map[Relation]int, len(Relations)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, rel := range Relations {
		rel := rel
		edges := grouped[rel]
		result.ByRelation[rel] = len(edges)
		if len(edges) == 0 {
			continue
		}
		eg.Go(func() error {
			return e.writeEdges(egCtx, rel, edges)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("Graph exported",
		zap.Int("nodes", result.Nodes),
		zap.Int("sales_edges", result.ByRelation[RelationSales]),
		zap.Int("esg_edges", result.ByRelation[RelationESG]),
		zap.Int("financial_edges", result.ByRelation[RelationFinancial]),
	)
	return result, nil
}

func (e *Exporter) writeNodes(ctx context.Context, names []string) error {
	session := e.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		UNWIND $names AS name
		MERGE (:Company {name: name})
	`

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"names": names})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to write company nodes: %w", err)
	}
	return nil
}

func (e *Exporter) writeEdges(ctx context.Context, rel Relation, edges []Edge) error {
	relType, err := relationshipType(rel)
	if err != nil {
		return err
	}

	session := e.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		UNWIND $edges AS edge
		MATCH (s:Company {name: edge.source})
		MATCH (t:Company {name: edge.target})
		CREATE (s)-[:%s {id: edge.id, weight: edge.weight}]->(t)
	`, relType)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"edges": edgeParams(edges)})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s edges: %w", relType, err)
	}

	e.logger.Debug("Edges written", zap.String("relation", relType), zap.Int("count", len(edges)))
	return nil
}

// CountRelationships returns how many exported relationships exist per type
func (e *Exporter) CountRelationships(ctx context.Context) (map[string]int64, error) {
	session := e.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		MATCH (:Company)-[r]->(:Company)
		RETURN type(r) AS kind, count(r) AS total
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count relationships: %w", err)
	}

	counts := make(map[string]int64)
	for result.Next(ctx) {
		record := result.Record()
		counts[getStringFromRecord(record, "kind")] = getInt64FromRecord(record, "total")
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationship counts: %w", err)
	}
	return counts, nil
}

// ExcessRelationships compares exported relationship counts with the graph and
// returns every relationship type holding more relationships than the graph has
// edges of that kind. A non-empty result means an earlier export was not wiped.
func ExcessRelationships(g *Graph, counts map[string]int64) map[string]int64 {
	stats := g.Stats()
	excess := make(map[string]int64)
	for _, rel := range Relations {
		relType := relationshipTypes[rel]
		if extra := counts[relType] - int64(stats.ByRelation[rel]); extra > 0 {
			excess[relType] = extra
		}
	}
	return excess
}

func relationshipType(rel Relation) (string, error) {
	relType, ok := relationshipTypes[rel]
	if !ok {
		return "", fmt.Errorf("unknown relation: %q", rel)
	}
	return relType, nil
}

func groupByRelation(edges []Edge) map[Relation][]Edge {
	grouped := make(map[Relation][]Edge, len(Relations))
	for _, e := range edges {
		grouped[e.Relation] = append(grouped[e.Relation], e)
	}
	return grouped
}

func edgeParams(edges []Edge) []map[string]any {
	params := make([]map[string]any, 0, len(edges))
	for _, e := range edges {
		params = append(params, map[string]any{
			"id":     uuid.NewString(),
			"source": e.Source,
			"target": e.Target,
			"weight": e.Weight,
		})
	}
	return params
}
