package handler

import (
	"net/http"

	"github.com/DioGolang/GoCheckout/internal/application/usecase/customer"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Customer struct {
	CreateUseCase customer.CreateUseCase
	FindUseCase   customer.FindUseCase
	ListUseCase   customer.ListUseCase
	UpdateUseCase customer.UpdateUseCase
	Logger        logger.Logger
}

func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	var input customer.CreateInput
	if !decode(w, r, &input) {
		return
	}
	output, err := h.CreateUseCase.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Customer) Find(w http.ResponseWriter, r *http.Request) {
	output, err := h.FindUseCase.Execute(r.Context(), customer.FindInput{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListUseCase.Execute(r.Context(), customer.ListInput{})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Customer) Update(w http.ResponseWriter, r *http.Request) {
	var input customer.UpdateInput
	if !decode(w, r, &input) {
		return
	}
	input.ID = chi.URLParam(r, "id")
	output, err := h.UpdateUseCase.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
