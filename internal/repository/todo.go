package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/model"
)

// todoTable is the SurrealDB table holding todo records.
const todoTable = "todo"

// TodoRepository is the storage gateway for todos. It is the only component
// that talks to the document store; callers get plain outcomes (records,
// nil-for-absent, affected counts) and decide protocol meaning themselves.
type TodoRepository struct {
	db database.Database
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db database.Database) *TodoRepository {
	return &TodoRepository{db: db}
}

// List retrieves every stored todo. Order is store-defined and not
// guaranteed stable across calls.
func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	query := `SELECT * FROM todo`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	todos := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		if todo := parseTodo(row); todo != nil {
			todos = append(todos, *todo)
		}
	}
	return todos, nil
}

// GetByID retrieves the todo matching the wire id, or nil when no such
// record exists. An id that does not parse as a todo record id cannot
// match any document, so it is a not-found outcome rather than an error.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	if !validTodoID(id) {
		return nil, nil
	}

	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	todo := parseTodo(result)
	if todo == nil {
		return nil, fmt.Errorf("%w: malformed todo record for %s", database.ErrQuery, id)
	}
	return todo, nil
}

// Insert persists a document with exactly {title, due, status} and a fresh
// store-assigned id, and returns the created todo including that id.
// Anything beyond those fields never reaches this method: the typed request
// already dropped it.
func (r *TodoRepository) Insert(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error) {
	query := `
		CREATE todo CONTENT {
			title: $title,
			due: $due,
			status: $status
		}
	`
	vars := map[string]interface{}{
		"title":  req.Title,
		"due":    req.Due,
		"status": req.Status,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	todo := parseTodo(result)
	if todo == nil {
		return nil, fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}
	return todo, nil
}

// Update merges the named fields into the existing document and reports how
// many documents were matched (0 or 1, ids are unique). The record id is
// never among the merged fields. Updating an unknown id matches zero
// documents; that is not an error at this layer.
func (r *TodoRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (int, error) {
	if !validTodoID(id) {
		return 0, nil
	}

	// id is immutable; refuse to merge it even if a caller slips it in
	delete(fields, "id")

	query := `UPDATE type::record($id) MERGE $fields RETURN AFTER`
	vars := map[string]interface{}{
		"id":     id,
		"fields": fields,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	rows, _ := extractQueryResults(result)
	return len(rows), nil
}

// Delete removes the document with the given id and reports how many
// documents were removed (0 or 1).
func (r *TodoRepository) Delete(ctx context.Context, id string) (int, error) {
	if !validTodoID(id) {
		return 0, nil
	}

	query := `DELETE type::record($id) RETURN BEFORE`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	rows, _ := extractQueryResults(result)
	return len(rows), nil
}
