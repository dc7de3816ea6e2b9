package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.CourierRegister
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	registration := entities.CourierRegistration{
		UserID:      registerDTO.UserID,
		Vehicle:     entities.CourierVehicleType(registerDTO.Vehicle),
		PlateNumber: registerDTO.PlateNumber,
		IDCardURL:   registerDTO.IDCardURL,
		SelfieURL:   registerDTO.SelfieURL,
	}

	courierEntity, err := h.service.RegisterCourier(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidUserID),
			errors.Is(err, courier.ErrInvalidVehicle):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromCourier(courierEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
