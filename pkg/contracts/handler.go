package contracts

import "github.com/gorilla/mux"

// Handler is anything that can mount its routes on the shared router.
type Handler interface {
	RegisterRoutes(*mux.Router)
}
