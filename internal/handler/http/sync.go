// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/isoron/habit-sync/internal/logger"
	"github.com/isoron/habit-sync/internal/service"
	"github.com/isoron/habit-sync/internal/utils"
	"github.com/isoron/habit-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key, err := h.services.SyncService.Register(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error registering sync key")
		writeError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.register").Msg("sync key registered")
	utils.WriteJSON(w, models.RegisterResponse{Key: key}, http.StatusOK)
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := h.services.SyncService.Get(ctx, chi.URLParam(r, keyParam))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getData").Msg("error getting sync record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, data, http.StatusOK)
}

// putData answers an edit conflict with 409 and the record currently
// stored, so the client can rebase without another round trip.
func (h *Handler) putData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.SyncData
	if err := utils.DecodeJSON(r.Body, &data); err != nil {
		log.Err(err).Str("func", "*Handler.putData").Msg("invalid JSON was passed")
		writeError(w, err)
		return
	}

	err := h.services.SyncService.Put(ctx, chi.URLParam(r, keyParam), data)

	var conflict *service.ConflictError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.As(err, &conflict):
		log.Info().Str("func", "*Handler.putData").
			Int64("current_version", conflict.Current.Version).
			Int64("submitted_version", data.Version).
			Msg("edit conflict")
		utils.WriteJSON(w, conflict.Current, http.StatusConflict)
	default:
		log.Err(err).Str("func", "*Handler.putData").Msg("error storing sync record")
		writeError(w, err)
	}
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	version, err := h.services.SyncService.GetVersion(ctx, chi.URLParam(r, keyParam))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVersion").Msg("error getting sync record version")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}
