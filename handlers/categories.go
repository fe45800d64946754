package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketstore/models"
)

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.cs.ListCategories(listParams(r))
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"message":    "Categories retrieved",
		"categories": page,
	})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cat, err := h.cs.CreateCategory(req)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"message":  "Category created",
		"category": cat,
	})
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cat, err := h.cs.GetCategory(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Category")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"category": cat,
	})
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	var req models.CategoryRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		log.Printf("Unmarshal err: %v", err)
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	cat, err := h.cs.UpdateCategory(id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Category")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"message":  "Category updated",
		"category": cat,
	})
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		WriteErrorResponse(w, models.ErrBadRequest)
		return
	}
	err = h.cs.DeleteCategory(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteNotFound(w, "Category")
			return
		}
		WriteErrorResponse(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Category deleted",
	})
}
