package handler

import (
	"net/http"

	"github.com/DioGolang/GoCheckout/internal/application/usecase/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Product struct {
	CreateUseCase         product.CreateUseCase
	FindUseCase           product.FindUseCase
	ListUseCase           product.ListUseCase
	UpdateUseCase         product.UpdateUseCase
	IncreasePricesUseCase product.IncreasePricesUseCase
	Logger                logger.Logger
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var input product.CreateInput
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

func (h *Product) Find(w http.ResponseWriter, r *http.Request) {
	output, err := h.FindUseCase.Execute(r.Context(), product.FindInput{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListUseCase.Execute(r.Context(), product.ListInput{})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	var input product.UpdateInput
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

func (h *Product) IncreasePrices(w http.ResponseWriter, r *http.Request) {
	var input product.IncreasePricesInput
	if !decode(w, r, &input) {
		return
	}
	output, err := h.IncreasePricesUseCase.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
