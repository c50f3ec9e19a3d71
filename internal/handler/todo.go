package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/forgo/todos/api/internal/model"
	"github.com/forgo/todos/api/internal/validation"
)

// TodoStore is the storage gateway surface the handlers consume.
type TodoStore interface {
	List(ctx context.Context) ([]model.Todo, error)
	GetByID(ctx context.Context, id string) (*model.Todo, error)
	Insert(ctx context.Context, req model.CreateTodoRequest) (*model.Todo, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (int, error)
	Delete(ctx context.Context, id string) (int, error)
}

// TodoHandler handles the /todos endpoints.
//
// Each request moves through the same stages: authenticated (by the Auth
// middleware, before the handler runs), validated where the route requires
// it, one or more storage calls, then exactly one status+body response.
// Handlers keep no cross-request state.
type TodoHandler struct {
	store TodoStore
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(store TodoStore) *TodoHandler {
	return &TodoHandler{store: store}
}

// List handles GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list todos", slog.String("error", err.Error()))
		model.NewInternalError("Failed to list todos").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

// Get handles GET /todos/{todoId}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("todoId")

	todo, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get todo", slog.String("id", id), slog.String("error", err.Error()))
		model.NewInternalError("Failed to get todo").WriteJSON(w)
		return
	}
	if todo == nil {
		model.NewNotFoundError("Todo").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

// Create handles POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTodoRequest
	if err := DecodeJSON(r, &req); err != nil {
		model.NewBadRequestError("invalid request body").WriteJSON(w)
		return
	}

	if violations := validation.ValidateCreate(req); len(violations) > 0 {
		model.NewValidationError(violations).WriteJSON(w)
		return
	}

	todo, err := h.store.Insert(r.Context(), req)
	if err != nil {
		slog.Error("failed to create todo", slog.String("error", err.Error()))
		model.NewInternalError("Failed to create todo").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

// Update handles PUT /todos/{todoId}.
//
// The store's update primitive silently matches nothing on a missing id,
// so existence is checked first to produce a correct 404. The window
// between that check and the update is not closed: a concurrent delete can
// make the update match zero documents, which surfaces as a 500. The final
// re-read returns the canonical persisted state rather than echoing the
// request body.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("todoId")

	var req model.UpdateTodoRequest
	if err := DecodeJSON(r, &req); err != nil {
		model.NewBadRequestError("invalid request body").WriteJSON(w)
		return
	}

	existing, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get todo", slog.String("id", id), slog.String("error", err.Error()))
		model.NewInternalError("Failed to update todo").WriteJSON(w)
		return
	}
	if existing == nil {
		model.NewNotFoundError("Todo").WriteJSON(w)
		return
	}

	matched, err := h.store.Update(r.Context(), id, req.Fields())
	if err != nil {
		slog.Error("failed to update todo", slog.String("id", id), slog.String("error", err.Error()))
		model.NewInternalError("Failed to update todo").WriteJSON(w)
		return
	}
	if matched == 0 {
		// existed a moment ago, gone now
		model.NewInternalError("Failed to update todo").WriteJSON(w)
		return
	}

	updated, err := h.store.GetByID(r.Context(), id)
	if err != nil || updated == nil {
		if err != nil {
			slog.Error("failed to reload todo", slog.String("id", id), slog.String("error", err.Error()))
		}
		model.NewInternalError("Failed to update todo").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /todos/{todoId}. Same read-before-write shape as
// Update, for the same reason.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("todoId")

	existing, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to get todo", slog.String("id", id), slog.String("error", err.Error()))
		model.NewInternalError("Failed to delete todo").WriteJSON(w)
		return
	}
	if existing == nil {
		model.NewNotFoundError("Todo").WriteJSON(w)
		return
	}

	removed, err := h.store.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete todo", slog.String("id", id), slog.String("error", err.Error()))
		model.NewInternalError("Failed to delete todo").WriteJSON(w)
		return
	}
	if removed == 0 {
		model.NewInternalError("Failed to delete todo").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, model.DeleteResponse{Success: true})
}
