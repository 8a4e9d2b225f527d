package order

import (
	"errors"
	"net/http"

	"methakadai-be/internal/httpx"
	"methakadai-be/internal/logger"
	"methakadai-be/internal/middleware"

	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type statusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	var input CreateOrderInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	o, err := h.svc.Create(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrTotalMismatch):
			httpx.WriteError(w, http.StatusBadRequest, "Total amount does not match the cart.")
		case errors.Is(err, ErrEmptyOrder):
			httpx.WriteError(w, http.StatusBadRequest, "Cart is empty.")
		case errors.Is(err, ErrMissingTransaction):
			httpx.WriteError(w, http.StatusBadRequest, "Transaction ID is required for UPI payment.")
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidPayment), errors.Is(err, ErrInvalidItem):
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, orderResponse{Message: "Ordered", Order: o})
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	orders, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Not Found")
		case errors.Is(err, ErrInvalidTransition):
			httpx.WriteError(w, http.StatusBadRequest, "Status transition not allowed.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	o, err := h.svc.Cancel(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Not Found")
		case errors.Is(err, ErrNotOwner):
			httpx.WriteError(w, http.StatusForbidden, "You can only cancel your own orders.")
		case errors.Is(err, ErrAlreadyCancelled):
			httpx.WriteError(w, http.StatusBadRequest, "Order is already cancelled.")
		case errors.Is(err, ErrCannotCancel):
			httpx.WriteError(w, http.StatusBadRequest, "Cannot cancel after shipment.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, orderResponse{Message: "Cancelled", Order: o})
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("order handler error", zap.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "Error")
}
