package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
)

func (s *Server) handleListAccommodations(w http.ResponseWriter, r *http.Request) {
	accommodations, rerr := s.accommodations.List(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, accommodations)
}

func (s *Server) handleCreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var in models.CreateAccommodationInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	accommodation, rerr := s.accommodations.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, accommodation)
}

func (s *Server) handleGetAccommodation(w http.ResponseWriter, r *http.Request) {
	accommodation, rerr := s.accommodations.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, accommodation)
}

func (s *Server) handleUpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateAccommodationInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	accommodation, rerr := s.accommodations.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, accommodation)
}

func (s *Server) handleDeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	if rerr := s.accommodations.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, rerr := s.accommodations.ListRoomTypes(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, roomTypes)
}

func (s *Server) handleCreateRoomType(w http.ResponseWriter, r *http.Request) {
	var in models.CreateRoomTypeInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	in.AccommodationID = chi.URLParam(r, "id")
	roomType, rerr := s.accommodations.CreateRoomType(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, roomType)
}

func (s *Server) handleDeleteRoomType(w http.ResponseWriter, r *http.Request) {
	if rerr := s.accommodations.DeleteRoomType(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleListRoomAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, rerr := s.accommodations.ListRoomAssignments(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, assignments)
}

func (s *Server) handleAssignRoom(w http.ResponseWriter, r *http.Request) {
	var in models.CreateRoomAssignmentInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	in.RoomTypeID = chi.URLParam(r, "id")
	assignment, rerr := s.accommodations.AssignRoom(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, assignment)
}

func (s *Server) handleUnassignRoom(w http.ResponseWriter, r *http.Request) {
	if rerr := s.accommodations.UnassignRoom(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleRoomCost(w http.ResponseWriter, r *http.Request) {
	var in models.RoomCostInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	in.RoomTypeID = chi.URLParam(r, "id")
	cost, rerr := s.accommodations.CalculateRoomCost(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, cost)
}
