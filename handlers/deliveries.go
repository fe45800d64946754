package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	page, err := h.ds.ListDeliveries(listParams(r))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"message":    "Deliveries retrieved",
		"deliveries": page,
	})
}

func (h *Handler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req models.DeliveryRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	delivery, err := h.ds.CreateDelivery(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"message":  "Delivery created",
		"delivery": delivery,
	})
}

func (h *Handler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	delivery, err := h.ds.GetDelivery(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Delivery")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"delivery": delivery,
	})
}

func (h *Handler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.DeliveryRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	delivery, err := h.ds.UpdateDelivery(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Delivery")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "Delivery updated",
		"delivery": delivery,
	})
}

func (h *Handler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.ds.DeleteDelivery(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Delivery")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Delivery deleted",
	})
}
