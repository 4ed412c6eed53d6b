package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/organic-insights-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem da lista, o primeiro é o mais externo
}

type Router struct {
	router     *httprouter.Router
	registered []string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	r := &Router{
		router: httprouter.New(),
	}

	// Rotas inexistentes respondem no mesmo formato de erro da API
	r.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", req.URL.Path)
	})
	r.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", req.Method)
	})
	// preflight fica a cargo do middleware de CORS
	r.router.HandleOPTIONS = false

	for _, config := range configs {
		config(r)
	}

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered = append(r.registered, route.Method+" "+route.Path)
	}
}

// Routes lista as rotas registradas no formato "METHOD /path"
func (r *Router) Routes() []string {
	return append([]string{}, r.registered...)
}
