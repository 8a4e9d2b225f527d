package category

import (
	"errors"
	"fmt"
	"net/http"

	"methakadai-be/internal/httpx"
	"methakadai-be/internal/logger"

	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.svc.Add(r.Context(), req.Name); err != nil {
		switch {
		case errors.Is(err, ErrCategoryExists):
			httpx.WriteError(w, http.StatusBadRequest, "Category already exists.")
		case errors.Is(err, ErrNameRequired):
			httpx.WriteError(w, http.StatusBadRequest, "Category name is required.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteMessage(w, http.StatusCreated, "Category added.")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	moved, err := h.svc.Delete(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Category not found.")
		case errors.Is(err, ErrProtectedCategory):
			httpx.WriteError(w, http.StatusBadRequest, "The General category cannot be deleted.")
		case errors.Is(err, ErrNameRequired):
			httpx.WriteError(w, http.StatusBadRequest, "Category name is required.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK,
		fmt.Sprintf("Category deleted. %d products moved to General.", moved))
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("category handler error", zap.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "Error")
}
