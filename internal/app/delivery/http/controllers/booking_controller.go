package controllers

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.SubmitBooking requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	tokenEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)

	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// A patient can only book for themselves.
	if request.Email != tokenEmail {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEmailMismatch(fmt.Errorf("booking email does not match token subject")))
		return
	}

	ctrl.Log.Info("BookingController.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.SubmitBooking(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	code := constvars.StatusCreated
	if !response.Acknowledged {
		code = constvars.StatusOK
	}
	utils.BuildSuccessResponse(w, code, constvars.CreateBookingSuccessMessage, response)
}

func (ctrl *BookingController) FindBookings(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.FindBookings requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	tokenEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)

	email := r.URL.Query().Get("email")
	if email != tokenEmail {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEmailMismatch(fmt.Errorf("query email does not match token subject")))
		return
	}

	ctrl.Log.Info("BookingController.FindBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, email),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindBookingsByPatient(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, response)
}

func (ctrl *BookingController) FindBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("BookingController.FindBookingByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "id"))
		return
	}

	ctrl.Log.Info("BookingController.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindBookingByID(ctx, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	tokenEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	if response.Email != tokenEmail {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEmailMismatch(fmt.Errorf("booking belongs to another patient")))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, response)
}
