package handler

import (
	"encoding/json"
	"net/http"
)

// DocsHandler serves the machine-readable API description at /api-docs.
//
// The OpenAPI document is assembled once at construction from the route
// and schema definitions below; it is derived documentation, not a second
// source of truth for behavior.
type DocsHandler struct {
	spec []byte
}

// NewDocsHandler creates a docs handler with the rendered OpenAPI document
func NewDocsHandler() (*DocsHandler, error) {
	spec, err := json.MarshalIndent(openAPIDocument(), "", "  ")
	if err != nil {
		return nil, err
	}
	return &DocsHandler{spec: spec}, nil
}

// UI handles GET /api-docs and renders a Swagger UI page
func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(swaggerUIPage))
}

// Spec handles GET /api-docs/openapi.json
func (h *DocsHandler) Spec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.spec)
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Todo API Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/api-docs/openapi.json",
      dom_id: "#swagger-ui",
    });
  </script>
</body>
</html>
`

func openAPIDocument() map[string]interface{} {
	todoRef := map[string]interface{}{"$ref": "#/components/schemas/Todo"}
	errorRef := map[string]interface{}{"$ref": "#/components/schemas/Error"}

	jsonBody := func(schema map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"content": map[string]interface{}{
				"application/json": map[string]interface{}{"schema": schema},
			},
		}
	}
	response := func(description string, schema map[string]interface{}) map[string]interface{} {
		r := map[string]interface{}{"description": description}
		if schema != nil {
			r["content"] = map[string]interface{}{
				"application/json": map[string]interface{}{"schema": schema},
			}
		}
		return r
	}
	idParam := map[string]interface{}{
		"name":     "todoId",
		"in":       "path",
		"required": true,
		"schema":   map[string]interface{}{"type": "string"},
	}

	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Todo API",
			"version":     "1.0.0",
			"description": "Todo API documentation",
		},
		"security": []map[string]interface{}{
			{"bearerAuth": []interface{}{}},
		},
		"paths": map[string]interface{}{
			"/todos": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "List all todos",
					"tags":    []string{"Todos"},
					"responses": map[string]interface{}{
						"200": response("A list of all todos", map[string]interface{}{
							"type":  "array",
							"items": todoRef,
						}),
						"401": response("Authentication failed", errorRef),
					},
				},
				"post": map[string]interface{}{
					"summary":     "Create a todo",
					"tags":        []string{"Todos"},
					"requestBody": jsonBody(map[string]interface{}{"$ref": "#/components/schemas/TodoInput"}),
					"responses": map[string]interface{}{
						"201": response("The created todo", todoRef),
						"401": response("Authentication failed", errorRef),
						"422": response("Validation failed", map[string]interface{}{"$ref": "#/components/schemas/ValidationError"}),
					},
				},
			},
			"/todos/{todoId}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":    "Get a todo by id",
					"tags":       []string{"Todos"},
					"parameters": []interface{}{idParam},
					"responses": map[string]interface{}{
						"200": response("The todo", todoRef),
						"401": response("Authentication failed", errorRef),
						"404": response("Todo not found", errorRef),
					},
				},
				"put": map[string]interface{}{
					"summary":     "Update a todo",
					"tags":        []string{"Todos"},
					"parameters":  []interface{}{idParam},
					"requestBody": jsonBody(map[string]interface{}{"$ref": "#/components/schemas/TodoInput"}),
					"responses": map[string]interface{}{
						"200": response("The updated todo", todoRef),
						"401": response("Authentication failed", errorRef),
						"404": response("Todo not found", errorRef),
						"500": response("Update failed", errorRef),
					},
				},
				"delete": map[string]interface{}{
					"summary":    "Delete a todo",
					"tags":       []string{"Todos"},
					"parameters": []interface{}{idParam},
					"responses": map[string]interface{}{
						"200": response("Deletion confirmation", map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"success": map[string]interface{}{"type": "boolean"},
							},
						}),
						"401": response("Authentication failed", errorRef),
						"404": response("Todo not found", errorRef),
						"500": response("Deletion failed", errorRef),
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Todo": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"id":     map[string]interface{}{"type": "string"},
						"title":  map[string]interface{}{"type": "string"},
						"due":    map[string]interface{}{"type": "string"},
						"status": map[string]interface{}{"type": "integer"},
					},
				},
				"TodoInput": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title":  map[string]interface{}{"type": "string", "minLength": 3},
						"due":    map[string]interface{}{"type": "string"},
						"status": map[string]interface{}{"type": "integer"},
					},
				},
				"Error": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"error": map[string]interface{}{"type": "string"},
					},
				},
				"ValidationError": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"errors": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"field":   map[string]interface{}{"type": "string"},
									"message": map[string]interface{}{"type": "string"},
								},
							},
						},
					},
				},
			},
			"securitySchemes": map[string]interface{}{
				"bearerAuth": map[string]interface{}{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
	}
}
