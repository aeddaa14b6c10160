package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todolist/internal/common"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type taskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type createTaskRequest struct {
	Title string `json:"title"`
}

type updateTaskRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toTaskResponse(task *models.Task) taskResponse {
	return taskResponse{ID: task.ID, Title: task.Title, Completed: task.Completed}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	list, err := s.tasks.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "listing tasks failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// always an array, never null
	result := make([]taskResponse, 0, len(list))
	for _, task := range list {
		result = append(result, toTaskResponse(task))
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			respondMessage(w, http.StatusBadRequest, "title is required")
			return
		}
		s.logger.Error(r.Context(), "creating task failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), userID, id, req.Title, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			respondMessage(w, http.StatusBadRequest, "title is required")
		case errors.Is(err, common.ErrorNotFound):
			respondMessage(w, http.StatusNotFound, "todo not found")
		default:
			s.logger.Error(r.Context(), "updating task failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, toTaskResponse(task))
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := s.tasks.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondJSON(w, http.StatusNotFound, deleteResponse{Success: false, Message: "todo not found"})
			return
		}
		s.logger.Error(r.Context(), "deleting task failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, deleteResponse{Success: false, Message: "internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "Todo deleted"})
}
