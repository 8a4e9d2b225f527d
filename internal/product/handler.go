package product

import (
	"errors"
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

type productResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		h.serverError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input NewProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if isValidationError(err) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, productResponse{Message: "Added", Product: p})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var input NewProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.svc.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		if isValidationError(err) {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, productResponse{Message: "Updated", Product: p})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		h.serverError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Deleted")
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.svc.SeedDefaults(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if seeded {
		httpx.WriteMessage(w, http.StatusOK, "Seeded")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Skipped")
}

// isValidationError separates rejected input from database failures, which go
// through serverError instead of echoing driver text to the client.
func isValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrMissingID)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("product handler error", zap.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "Error")
}
