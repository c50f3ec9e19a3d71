package model

// Todo is the persisted resource exposed by the API.
//
// ID is assigned by the storage gateway at insert time and is immutable
// thereafter; its format is the store's record id rendered as a string
// (e.g. "todo:x7k2..."), so it round-trips through transport unchanged.
type Todo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Due    string `json:"due"`
	Status int    `json:"status"`
}

// CreateTodoRequest is the payload accepted by POST /todos.
//
// Due is an opaque caller-supplied date-like string; the server performs no
// date parsing. Status carries no enumerated constraint beyond being an
// integer. Fields outside this struct are silently dropped during decoding.
type CreateTodoRequest struct {
	Title  string `json:"title"`
	Due    string `json:"due"`
	Status int    `json:"status"`
}

// UpdateTodoRequest is the payload accepted by PUT /todos/{todoId}.
//
// All fields are optional; only the fields present in the request body are
// written, the rest keep their stored values. There is no way to change a
// todo's id through an update.
type UpdateTodoRequest struct {
	Title  *string `json:"title"`
	Due    *string `json:"due"`
	Status *int    `json:"status"`
}

// Fields returns the set of named fields the caller actually supplied,
// keyed by storage field name. An empty map means the update is a no-op
// write that still matches the record.
func (r UpdateTodoRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Due != nil {
		fields["due"] = *r.Due
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}

// DeleteResponse is the body returned by a successful DELETE /todos/{todoId}.
type DeleteResponse struct {
	Success bool `json:"success"`
}
