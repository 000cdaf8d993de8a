package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
)

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, rerr := s.activities.List(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, activities)
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	var in models.CreateActivityInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	activity, rerr := s.activities.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, activity)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	activity, rerr := s.activities.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, activity)
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateActivityInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	activity, rerr := s.activities.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, activity)
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	if rerr := s.activities.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleActivityCost(w http.ResponseWriter, r *http.Request) {
	cost, rerr := s.activities.Cost(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, cost)
}

func (s *Server) handleListActivityRSVPs(w http.ResponseWriter, r *http.Request) {
	rsvps, rerr := s.rsvps.ListByActivity(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, rsvps)
}
