package routes

import (
	"encoding/json"
	"net/http"

	"evolution-connector/internal/infra/handlers"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux             *mux.Router
	SendListHandler *handlers.SendListHandlers
}

func NewRoutes(mux *mux.Router, sendListHandler *handlers.SendListHandlers) *Routes {
	return &Routes{mux, sendListHandler}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/execute/messages/sendList", r.SendListHandler.SendList).Methods(http.MethodPost)
	r.Mux.HandleFunc("/dispatches/{instanceName}", r.SendListHandler.Dispatches).Methods(http.MethodGet)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
