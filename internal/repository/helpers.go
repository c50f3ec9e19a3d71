package repository

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/forgo/todos/api/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// recordKeyPattern matches the keys SurrealDB assigns to created records.
// A wire id whose key falls outside this alphabet cannot name a stored
// todo, so it is rejected before it ever reaches a query.
var recordKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// validTodoID reports whether the wire string parses as a todo record id.
func validTodoID(id string) bool {
	table, key, ok := strings.Cut(id, ":")
	return ok && table == todoTable && recordKeyPattern.MatchString(key)
}

// extractRecordID extracts a record id from a SurrealDB result value
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// extractQueryResults extracts the result rows from a SurrealDB response
func extractQueryResults(result interface{}) ([]interface{}, bool) {
	if results, ok := result.([]interface{}); ok {
		if len(results) > 0 {
			if firstResult, ok := results[0].(map[string]interface{}); ok {
				if resultArray, ok := firstResult["result"].([]interface{}); ok {
					return resultArray, true
				}
			}
			// Direct array format
			return results, true
		}
	}
	return nil, false
}

// parseTodo converts a SurrealDB row into a Todo. Returns nil when the row
// is not a record map.
func parseTodo(v interface{}) *model.Todo {
	data, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return &model.Todo{
		ID:     extractRecordID(data["id"]),
		Title:  getString(data, "title"),
		Due:    getString(data, "due"),
		Status: getInt(data, "status"),
	}
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map, tolerating the numeric types
// the CBOR decoder may produce
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}
