package handler

import (
	"errors"
	"net/http"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var notFoundErrors = []error{
	customer.ErrCustomerNotFound,
	product.ErrProductNotFound,
	checkout.ErrOrderNotFound,
}

var validationErrors = []error{
	customer.ErrIDIsRequired,
	customer.ErrNameIsRequired,
	customer.ErrAddressIsMandatory,
	customer.ErrRewardPoints,
	customer.ErrStreetRequired,
	customer.ErrNumberRequired,
	customer.ErrZipRequired,
	customer.ErrCityRequired,
	product.ErrIDIsRequired,
	product.ErrNameIsRequired,
	product.ErrPriceMustBePositive,
	product.ErrUnsupportedType,
	checkout.ErrIDIsRequired,
	checkout.ErrCustomerIDIsRequired,
	checkout.ErrProductIDIsRequired,
	checkout.ErrItemsAreRequired,
	checkout.ErrQuantityMustBePositive,
	checkout.ErrPriceMustBePositive,
	checkout.ErrOrderMustHaveItems,
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.WithError(err),
		)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// decode reads the JSON body into dst and answers 400 when it cannot.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
