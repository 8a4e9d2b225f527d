package user

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

type otpRequest struct {
	Email string `json:"email"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

type resetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required.")
		return
	}

	if err := h.svc.SendSignupOTP(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrEmailExists) {
			httpx.WriteError(w, http.StatusBadRequest, "An account with this email already exists.")
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Verification code sent.")
}

func (h *Handler) SendForgetOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required.")
		return
	}

	if err := h.svc.SendResetOTP(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "No account found with this email.")
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "OTP sent to your email.")
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, u, err := h.svc.Signup(r.Context(), req.Username, req.Email, req.Password, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid verification code.")
		case errors.Is(err, ErrEmailExists):
			httpx.WriteError(w, http.StatusBadRequest, "An account with this email already exists.")
		case errors.Is(err, ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "Username already taken.")
		case errors.Is(err, ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Username, email and password are required.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authResponse{
		Message:  "Account created.",
		Username: u.Username,
		Email:    u.Email,
		Token:    token,
	})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Email, req.Password, req.OTP); err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid verification code.")
		case errors.Is(err, ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, ErrEmptyPassword):
			httpx.WriteError(w, http.StatusBadRequest, "Password is required.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Password updated successfully.")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid credentials.")
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse{
		Message:  "Login successful.",
		Username: u.Username,
		Email:    u.Email,
		Token:    token,
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if !h.canAccess(r, username) {
		httpx.WriteError(w, http.StatusForbidden, "You can only view your own profile.")
		return
	}

	u, err := h.svc.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if !h.canAccess(r, username) {
		httpx.WriteError(w, http.StatusForbidden, "You can only edit your own profile.")
		return
	}

	var params UpdateProfileParams
	if err := httpx.DecodeJSON(r, &params); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), username, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "Username already taken.")
		case errors.Is(err, ErrEmptyUsername):
			httpx.WriteError(w, http.StatusBadRequest, "Username cannot be empty.")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, u)
}

// canAccess allows the profile owner or an admin.
func (h *Handler) canAccess(r *http.Request, username string) bool {
	return middleware.UsernameFrom(r.Context()) == username || middleware.IsAdmin(r.Context())
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("user handler error", zap.Error(err))
	httpx.WriteError(w, http.StatusInternalServerError, "Error")
}
