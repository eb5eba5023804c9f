package core

import "net/http"

// Route maps one method and path to its handler
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Bundle groups the routes of one feature area
type Bundle interface {
	GetRoutes() []Route
}
