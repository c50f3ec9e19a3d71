// Package repository implements the data access layer for the Todo API.
//
// The package owns every SurrealDB query in the application. TodoRepository
// is the storage gateway: other components never see the driver, the query
// language, or the store's identifier type.
//
// # Outcome Contract
//
// Repository methods return plain outcomes, never HTTP-shaped errors:
//
//   - GetByID returns (nil, nil) for an absent record, including wire ids
//     that do not parse as record ids at all
//   - Update and Delete return affected counts (0 or 1) and treat a missing
//     id as count zero, not as an error
//
// The handler layer decides what those outcomes mean at the protocol level.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax
//   - type::record() for safe ID handling
//   - CREATE ... CONTENT for inserts, UPDATE ... MERGE for partial updates
//   - RETURN AFTER / RETURN BEFORE to count affected documents
//
// # Example Usage
//
//	repo := repository.NewTodoRepository(db)
//	todo, err := repo.GetByID(ctx, "todo:abc123")
//	if err != nil {
//	    return err
//	}
//	if todo == nil {
//	    // not found
//	}
package repository
