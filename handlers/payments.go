package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	page, err := h.pys.ListPayments(listParams(r))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "Payments retrieved",
		"payments": page,
	})
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	payment, err := h.pys.CreatePayment(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": "Payment created",
		"payment": payment,
	})
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	payment, err := h.pys.GetPayment(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Payment")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"payment": payment,
	})
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.PaymentRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	payment, err := h.pys.UpdatePayment(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Payment")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Payment updated",
		"payment": payment,
	})
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.pys.DeletePayment(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Payment")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Payment deleted",
	})
}
