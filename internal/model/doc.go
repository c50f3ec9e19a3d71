// Package model defines the domain types for the Todo API.
//
// It holds the Todo entity, the request payload shapes for create and
// update, and the error types that own the API's wire error bodies.
// Types here carry no behavior beyond serialization concerns; everything
// that touches storage or HTTP lives in repository and handler.
package model
