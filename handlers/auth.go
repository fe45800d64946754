package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}

	user, err := h.us.RegisterRequest(req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			WriteValidationErrors(w, http.StatusBadRequest, verrs)
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "User created",
		"user":    user,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}

	token, err := h.us.LoginRequest(creds)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			WriteValidationErrors(w, http.StatusBadRequest, verrs)
			return
		}
		if errors.Is(err, models.ErrUnauthorized) {
			WriteJSON(w, http.StatusUnauthorized, map[string]any{
				"status":  "error",
				"message": "Invalid email or password",
			})
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{"token": token},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	err := h.us.LogoutRequest(token)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Token deleted",
	})
}
