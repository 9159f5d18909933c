package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/server/services"
)

type loginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    services.UserView `json:"user"`
}

type userResponse struct {
	Success bool              `json:"success"`
	User    services.UserView `json:"user"`
}

type cropsResponse struct {
	Success bool                `json:"success"`
	Crops   []services.CropView `json:"crops"`
}

type cropResponse struct {
	Success bool              `json:"success"`
	Crop    services.CropView `json:"crop"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.log, http.StatusOK, messageResponse{Success: true, Message: "ok"})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	u, err := h.users.Register(r.Context(), req)
	if err != nil {
		h.logFailure(r, "register failed", err)
		writeError(w, r, h.log, err)
		return
	}

	h.log.Info(r.Context(), "user registered", "user_id", u.ID)
	writeJSON(w, r, h.log, http.StatusCreated, messageResponse{Success: true, Message: "User registered"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.users.Login(r.Context(), req)
	if err != nil {
		h.logFailure(r, "login failed", err)
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, loginResponse{Success: true, Token: res.Token, User: res.User})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Me(r.Context(), h.userID(r))
	if err != nil {
		h.logFailure(r, "me failed", err)
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, userResponse{Success: true, User: *u})
}

func (h *Handler) handleListCrops(w http.ResponseWriter, r *http.Request) {
	list, err := h.crops.List(r.Context(), h.userID(r))
	if err != nil {
		h.logFailure(r, "list crops failed", err)
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, cropsResponse{Success: true, Crops: list})
}

func (h *Handler) handleCreateCrop(w http.ResponseWriter, r *http.Request) {
	var req services.CropRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	c, err := h.crops.Create(r.Context(), h.userID(r), req)
	if err != nil {
		h.logFailure(r, "create crop failed", err)
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusCreated, cropResponse{Success: true, Crop: *c})
}

func (h *Handler) handleDeleteCrop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.crops.Delete(r.Context(), h.userID(r), id); err != nil {
		h.logFailure(r, "delete crop failed", err)
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(r *http.Request) string {
	id, _ := UserIDFromContext(r.Context())
	return id
}

// logFailure logs unexpected errors at error level and client mistakes at
// debug level.
func (h *Handler) logFailure(r *http.Request, msg string, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		h.log.Debug(r.Context(), msg, "error", err)
		return
	}
	h.log.Error(r.Context(), msg, "error", err)
}
