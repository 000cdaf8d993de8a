package server

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
)

func (s *Server) handleListGuests(w http.ResponseWriter, r *http.Request) {
	guests, rerr := s.guests.List(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, guests)
}

func (s *Server) handleCreateGuest(w http.ResponseWriter, r *http.Request) {
	var in models.CreateGuestInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	guest, rerr := s.guests.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, guest)
}

func (s *Server) handleGetGuest(w http.ResponseWriter, r *http.Request) {
	guest, rerr := s.guests.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, guest)
}

func (s *Server) handleUpdateGuest(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateGuestInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	guest, rerr := s.guests.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, guest)
}

func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	if rerr := s.guests.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleExportGuests(w http.ResponseWriter, r *http.Request) {
	csv, rerr := s.guests.ExportCSV(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="guests.csv"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, csv)
}

// handleImportGuests accepts the raw CSV document as the request body.
func (s *Server) handleImportGuests(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, result.Validation("Failed to read request body", nil))
		return
	}
	summary, rerr := s.guests.ImportCSV(r.Context(), string(body))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, summary)
}
