package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	page, err := h.ors.ListOrders(listParams(r))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Orders retrieved",
		"orders":  page,
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	order, err := h.ors.CreateOrder(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": "Order created",
		"order":   order,
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	order, err := h.ors.GetOrder(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Order")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"order":  order,
	})
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.OrderRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	order, err := h.ors.UpdateOrder(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Order")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Order updated",
		"order":   order,
	})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.ors.DeleteOrder(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Order")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Order deleted",
	})
}
