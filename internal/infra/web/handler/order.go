package handler

import (
	"net/http"

	"github.com/DioGolang/GoCheckout/internal/application/usecase/order"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Order struct {
	PlaceUseCase  order.PlaceUseCase
	FindUseCase   order.FindUseCase
	ListUseCase   order.ListUseCase
	UpdateUseCase order.UpdateUseCase
	Logger        logger.Logger
}

func (h *Order) Place(w http.ResponseWriter, r *http.Request) {
	var input order.PlaceInput
	if !decode(w, r, &input) {
		return
	}
	output, err := h.PlaceUseCase.Execute(r.Context(), input)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

func (h *Order) Find(w http.ResponseWriter, r *http.Request) {
	output, err := h.FindUseCase.Execute(r.Context(), order.FindInput{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Order) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.ListUseCase.Execute(r.Context(), order.ListInput{})
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Order) Update(w http.ResponseWriter, r *http.Request) {
	var input order.UpdateInput
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
