package controllers

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TreatmentController struct {
	Log              *zap.Logger
	TreatmentUsecase contracts.TreatmentUsecase
}

func NewTreatmentController(logger *zap.Logger, treatmentUsecase contracts.TreatmentUsecase) *TreatmentController {
	return &TreatmentController{
		Log:              logger,
		TreatmentUsecase: treatmentUsecase,
	}
}

func (ctrl *TreatmentController) FindAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("TreatmentController.FindAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	date := r.URL.Query().Get("date")
	if _, err := time.Parse(constvars.AppointmentDateLayout, date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctrl.Log.Info("TreatmentController.FindAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TreatmentUsecase.AvailableSlotsForAllTreatments(ctx, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTreatmentsSuccessMessage, response)
}

func (ctrl *TreatmentController) FindSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("TreatmentController.FindSlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	name := chi.URLParam(r, "name")
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(constvars.AppointmentDateLayout, date); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctrl.Log.Info("TreatmentController.FindSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, name),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TreatmentUsecase.AvailableSlots(ctx, name, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTreatmentsSuccessMessage, response)
}

func (ctrl *TreatmentController) FindSpecialties(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("TreatmentController.FindSpecialties requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("TreatmentController.FindSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TreatmentUsecase.FindSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialtiesSuccessMessage, response)
}

func (ctrl *TreatmentController) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("TreatmentController.CreateTreatment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateTreatment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctrl.Log.Info("TreatmentController.CreateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Name),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TreatmentUsecase.CreateTreatment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTreatmentSuccessMessage, response)
}
