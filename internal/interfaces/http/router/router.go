// Package router assembles the gin engine and the API route table.
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Route binds one method and path, relative to its Resource, to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Resource is a set of routes sharing a path prefix, e.g. /customers
type Resource struct {
	Prefix     string
	Middleware []gin.HandlerFunc
	Routes     []Route
}

// API mounts resources under /api/<version>
type API struct {
	version    string
	middleware []gin.HandlerFunc
	resources  []Resource
}

// NewAPI returns an empty API for version, e.g. "v1"
func NewAPI(version string) *API {
	return &API{version: version}
}

// BasePath returns the prefix every resource is mounted under
func (a *API) BasePath() string {
	return "/api/" + a.version
}

// Use adds middleware that runs for API routes only
func (a *API) Use(middleware ...gin.HandlerFunc) *API {
	a.middleware = append(a.middleware, middleware...)
	return a
}

// Add appends resources to the route table
func (a *API) Add(resources ...Resource) *API {
	a.resources = append(a.resources, resources...)
	return a
}

// Mount registers the route table on r
func (a *API) Mount(r gin.IRouter) {
	api := r.Group(a.BasePath(), a.middleware...)
	for _, res := range a.resources {
		group := api.Group(res.Prefix, res.Middleware...)
		for _, route := range res.Routes {
			group.Handle(route.Method, route.Path, route.Handler)
		}
	}
}

// Routes lists the table as "METHOD /full/path" in registration order
func (a *API) Routes() []string {
	var out []string
	for _, res := range a.resources {
		for _, route := range res.Routes {
			full := path.Join(a.BasePath(), res.Prefix, route.Path)
			out = append(out, route.Method+" "+full)
		}
	}
	return out
}

func get(p string, h gin.HandlerFunc) Route    { return Route{http.MethodGet, p, h} }
func post(p string, h gin.HandlerFunc) Route   { return Route{http.MethodPost, p, h} }
func put(p string, h gin.HandlerFunc) Route    { return Route{http.MethodPut, p, h} }
func patch(p string, h gin.HandlerFunc) Route  { return Route{http.MethodPatch, p, h} }
func remove(p string, h gin.HandlerFunc) Route { return Route{http.MethodDelete, p, h} }
