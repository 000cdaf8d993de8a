package server

import (
	"errors"
	"net/http"

	"github.com/hmorales/wedplan/internal/auth"
	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/result"
)

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if rerr := decodeJSON(r, &req); rerr != nil {
		writeError(w, rerr)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, result.Validation("Email and password are required", nil))
		return
	}

	user, err := s.authenticator.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWeakPassword):
			writeError(w, result.Validation(err.Error(), nil))
		case errors.Is(err, auth.ErrEmailExists):
			writeError(w, result.Conflict(err.Error()))
		default:
			s.logger.Error("Registration failed", "email", req.Email, "error", err)
			writeError(w, result.Database(err))
		}
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Token generation failed", "user_id", user.ID, "error", err)
		writeError(w, result.Unknown(err.Error()))
		return
	}

	s.logger.Info("Planner registered", "user_id", user.ID, "email", user.Email)
	writeData(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if rerr := decodeJSON(r, &req); rerr != nil {
		writeError(w, rerr)
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, envelope{
			Success: false,
			Error:   &result.Error{Code: "UNAUTHORIZED", Message: auth.ErrInvalidCredentials.Error()},
		})
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Token generation failed", "user_id", user.ID, "error", err)
		writeError(w, result.Unknown(err.Error()))
		return
	}

	writeData(w, http.StatusOK, authResponse{Token: token, User: user})
}
