package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, rerr := s.events.List(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, events)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var in models.CreateEventInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	event, rerr := s.events.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, event)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, rerr := s.events.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateEventInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	event, rerr := s.events.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if rerr := s.events.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, rerr := s.locations.List(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, locations)
}

func (s *Server) handleCreateLocation(w http.ResponseWriter, r *http.Request) {
	var in models.CreateLocationInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	location, rerr := s.locations.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, location)
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	location, rerr := s.locations.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, location)
}

func (s *Server) handleUpdateLocation(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateLocationInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	location, rerr := s.locations.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, location)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if rerr := s.locations.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
