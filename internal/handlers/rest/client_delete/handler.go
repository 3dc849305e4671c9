package client_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/service/client"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteClient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrClientNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, client.ErrInvalidClientID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
