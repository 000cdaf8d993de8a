package server

import (
	"fmt"
	"net/http"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/report"
	"github.com/hmorales/wedplan/internal/result"
)

func (s *Server) handleCalculateBudget(w http.ResponseWriter, r *http.Request) {
	var options models.BudgetOptions
	if r.ContentLength > 0 {
		if rerr := decodeJSON(r, &options); rerr != nil {
			writeError(w, rerr)
			return
		}
	}
	breakdown, rerr := s.budget.CalculateTotal(r.Context(), options)
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, breakdown)
}

func (s *Server) handleBudgetSummary(w http.ResponseWriter, r *http.Request) {
	summary, rerr := s.budget.Summary(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, summary)
}

func (s *Server) handlePaymentStatusReport(w http.ResponseWriter, r *http.Request) {
	statusReport, rerr := s.budget.PaymentStatusReport(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, statusReport)
}

func (s *Server) handleSubsidyTracking(w http.ResponseWriter, r *http.Request) {
	tracking, rerr := s.budget.TrackSubsidies(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	writeData(w, http.StatusOK, tracking)
}

func (s *Server) handleBudgetXLSX(w http.ResponseWriter, r *http.Request) {
	breakdown, rerr := s.budget.CalculateTotal(r.Context(), models.BudgetOptions{})
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	data, err := report.BuildBudgetXLSX(breakdown)
	if err != nil {
		s.logger.Error("Budget workbook generation failed", "error", err)
		writeError(w, result.Unknown(fmt.Sprintf("failed to build workbook: %v", err)))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="budget.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handlePaymentStatusPDF(w http.ResponseWriter, r *http.Request) {
	statusReport, rerr := s.budget.PaymentStatusReport(r.Context())
	if rerr != nil {
		writeError(w, rerr)
		return
	}
	data, err := report.BuildPaymentStatusPDF(statusReport)
	if err != nil {
		s.logger.Error("Payment status PDF generation failed", "error", err)
		writeError(w, result.Unknown(fmt.Sprintf("failed to build PDF: %v", err)))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payment-status.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
