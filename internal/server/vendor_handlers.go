package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmorales/wedplan/internal/models"
)

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.VendorFilter{
		Category:      models.VendorCategory(q.Get("category")),
		PricingModel:  models.PricingModel(q.Get("pricingModel")),
		PaymentStatus: models.PaymentStatus(q.Get("paymentStatus")),
	}
	vendors, rerr := s.vendors.List(r.Context(), filter)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, vendors)
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var in models.CreateVendorInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	vendor, rerr := s.vendors.Create(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusCreated, vendor)
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	vendor, rerr := s.vendors.Get(r.Context(), chi.URLParam(r, "id"))
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, vendor)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateVendorInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	vendor, rerr := s.vendors.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, vendor)
}

func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	if rerr := s.vendors.Delete(r.Context(), chi.URLParam(r, "id")); rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var in models.RecordPaymentInput
	if rerr := decodeJSON(r, &in); rerr != nil {
		writeError(w, rerr)
		return
	}
	in.VendorID = chi.URLParam(r, "id")
	info, rerr := s.vendors.RecordPayment(r.Context(), &in)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, info)
}
