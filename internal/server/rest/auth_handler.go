package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todolist/internal/common"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			respondMessage(w, http.StatusBadRequest, "username, email and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			respondMessage(w, http.StatusConflict, "username already exists")
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	s.metrics.RecordSignup()
	respondJSON(w, http.StatusCreated, authResponse{
		Message: "Signup successful",
		Token:   outcome.Token,
		UserID:  outcome.UserID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			respondMessage(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, common.ErrorUnauthorized):
			respondMessage(w, http.StatusUnauthorized, "invalid credentials")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	s.metrics.RecordLogin()
	respondJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   outcome.Token,
		UserID:  outcome.UserID,
	})
}
