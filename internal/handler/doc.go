// Package handler provides HTTP request handlers for the Todo API.
//
// # Handler Pattern
//
//   - Constructor function (NewTodoHandler) accepts the storage gateway
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output
//   - Errors are written through the model error types, so every failure
//     path ends in an explicit status and JSON body
//
// # Request Flow
//
// The auth middleware runs before any handler; a handler can assume the
// request carries verified claims. Create payloads pass through the
// validation package before any storage call. Storage outcomes (nil
// record, affected counts) are translated to protocol responses here and
// nowhere else.
//
// # Status Mapping
//
//   - absent record: 404 {"error": "Todo not found"}
//   - invalid create payload: 422 with the full violation list
//   - mutation matching zero documents after an existence check: 500
//   - everything else: 200, or 201 for create
package handler
