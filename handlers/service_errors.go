package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services"
	"github.com/codessneha/synthia/services/providers"
	"github.com/codessneha/synthia/utils"
)

// WriteServiceError maps a core failure to a uniform JSON error response.
// The core never produces HTTP-shaped errors; this is the single place where
// its taxonomy meets status codes.
func WriteServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Type {
		case services.ErrorTypeConfiguration:
			logger.Error("request failed on configuration", zap.Error(err))
			_ = utils.WriteServiceUnavailable(w, domainErr.Message)
			return
		case services.ErrorTypeValidation:
			_ = utils.WriteBadRequest(w, domainErr.Message, domainErr.Details)
			return
		case services.ErrorTypeProvider:
			logger.Error("upstream provider failed", zap.Error(err))
			_ = utils.WriteJSON(w, http.StatusBadGateway, utils.ErrorResponse{
				Error:   "provider_error",
				Message: domainErr.Message,
			})
			return
		}
	}

	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		logger.Error("upstream provider failed", zap.Error(err))
		_ = utils.WriteJSON(w, http.StatusBadGateway, utils.ErrorResponse{
			Error:   "provider_error",
			Message: provErr.Message,
		})
		return
	}

	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		_ = utils.WriteBadRequest(w, validationErr.Message, validationErr.FieldDetails())
		return
	}

	logger.Error("request failed", zap.Error(err))
	_ = utils.WriteInternalError(w, "")
}
