package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
)

func (s *Server) handleCreateRSVP(w http.ResponseWriter, r *http.Request) {
	var in models.CreateRSVPInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	rsvp, rerr := s.rsvps.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, rsvp)
}

func (s *Server) handleGetRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, rerr := s.rsvps.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, rsvp)
}

func (s *Server) handleUpdateRSVP(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateRSVPInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	rsvp, rerr := s.rsvps.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, rsvp)
}

func (s *Server) handleDeleteRSVP(w http.ResponseWriter, r *http.Request) {
	if rerr := s.rsvps.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
