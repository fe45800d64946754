package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) GetBrands(w http.ResponseWriter, r *http.Request) {
	page, err := h.bs.ListBrands(listParams(r))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Brands retrieved",
		"brands":  page,
	})
}

func (h *Handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req models.BrandRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	brand, err := h.bs.CreateBrand(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"message": "Brand created",
		"brand":   brand,
	})
}

func (h *Handler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	brand, err := h.bs.GetBrand(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Brand")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"brand":  brand,
	})
}

func (h *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.BrandRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	brand, err := h.bs.UpdateBrand(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Brand")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Brand updated",
		"brand":   brand,
	})
}

func (h *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.bs.DeleteBrand(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Brand")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Brand deleted",
	})
}
