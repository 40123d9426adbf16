package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/utils"
	"github.com/isoron/habit-sync/models"
)

func (h *Handler) registerLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LinkRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		log.Err(err).Str("func", "*Handler.registerLink").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	link, err := h.services.LinkService.Register(ctx, request.SyncKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerLink").Msg("error registering link")
		writeError(w, err)
		return
	}

	h.metrics.LinksCreated.Inc()
	utils.WriteJSON(w, link, http.StatusOK)
}

func (h *Handler) getLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	link, err := h.services.LinkService.Get(ctx, chi.URLParam(r, idParam))
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getLink").Msg("link not available")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, link, http.StatusOK)
}
