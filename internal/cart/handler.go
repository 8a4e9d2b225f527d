package cart

import (
	"errors"
	"net/http"

	"methakadai-be/internal/httpx"
	"methakadai-be/internal/middleware"
)

// Handler exposes the session cart over REST. Every route sits behind
// RequireAuth, which is what surfaces the original "login first" prompt.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())
	httpx.WriteJSON(w, http.StatusOK, h.store.Cart(userID))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	var item Item
	if err := httpx.DecodeJSON(r, &item); err != nil || item.ProductID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.store.AddToCart(userID, item))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	var req quantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	items, err := h.store.UpdateQuantity(userID, r.PathValue("productID"), req.Quantity)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Item not in cart.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	items, err := h.store.RemoveFromCart(userID, r.PathValue("productID"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Item not in cart.")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())
	h.store.ClearCart(userID)
	httpx.WriteMessage(w, http.StatusOK, "Cart cleared.")
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())
	httpx.WriteJSON(w, http.StatusOK, h.store.Wishlist(userID))
}

func (h *Handler) AddWishItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	var item WishItem
	if err := httpx.DecodeJSON(r, &item); err != nil || item.ProductID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if !h.store.AddToWishlist(userID, item) {
		httpx.WriteMessage(w, http.StatusOK, "Already in wishlist.")
		return
	}
	httpx.WriteMessage(w, http.StatusCreated, "Added to wishlist.")
}

func (h *Handler) RemoveWishItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFrom(r.Context())

	items, err := h.store.RemoveFromWishlist(userID, r.PathValue("productID"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "Item not in wishlist.")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}
