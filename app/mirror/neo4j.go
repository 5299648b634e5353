package mirror

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/shborse/Task-Manager/app/models"
)

const (
	upsertTaskCypher = "MERGE (u:User {name: $owner}) " +
		"MERGE (t:Task {owner: $owner, id: $id}) " +
		"SET t.title = $title, t.due = $due, t.priority = $priority, t.status = $status, t.created_at = $created_at " +
		"MERGE (u)-[:OWNS]->(t)"

	removeTaskCypher = "MATCH (t:Task {owner: $owner, id: $id}) DETACH DELETE t"
)

// Neo4jMirror keeps a (User)-[:OWNS]->(Task) graph in step with the store.
type Neo4jMirror struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jMirror wraps an open driver. The mirror owns it from then on.
func NewNeo4jMirror(driver neo4j.DriverWithContext) *Neo4jMirror {
	return &Neo4jMirror{driver: driver}
}

// Record writes ev in its own transaction.
func (m *Neo4jMirror) Record(ctx context.Context, ev Event) error {
	query, params, err := statement(ev)
	if err != nil {
		return err
	}

	session := m.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j %s task #%d for %s: %w", ev.Action, ev.Task.ID, ev.Username, err)
	}
	return nil
}

// Close closes the underlying driver.
func (m *Neo4jMirror) Close(ctx context.Context) error {
	return m.driver.Close(ctx)
}

// statement builds the Cypher query and parameters for ev.
func statement(ev Event) (string, map[string]any, error) {
	switch ev.Action {
	case ActionUpsert:
		return upsertTaskCypher, map[string]any{
			"owner":      ev.Username,
			"id":         int64(ev.Task.ID),
			"title":      ev.Task.Title,
			"due":        ev.Task.Due.Format(models.DateLayout),
			"priority":   int64(ev.Task.Priority),
			"status":     ev.Task.Status,
			"created_at": ev.Task.CreatedAt.Format(models.TimeLayout),
		}, nil
	case ActionRemove:
		return removeTaskCypher, map[string]any{
			"owner": ev.Username,
			"id":    int64(ev.Task.ID),
		}, nil
	}
	return "", nil, fmt.Errorf("unknown mirror action %q", ev.Action)
}
