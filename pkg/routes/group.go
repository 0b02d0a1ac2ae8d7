// Package routes declares HTTP route groups with their OpenAPI metadata and
// registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/handnotes/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}
