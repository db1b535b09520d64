package controllers

import (
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/scheduling"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamUserID))
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamUserID))
		return
	}

	availability, err := ctrl.AvailabilityUsecase.GetAvailability(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, availability)
}

// SaveAvailability replaces the viewer's whole week. Every validation problem
// is returned at once.
func (ctrl *AvailabilityController) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	var availability scheduling.WeeklyAvailability
	if err := utils.ParseJSONBody(r, &availability); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	saved, err := ctrl.AvailabilityUsecase.SaveAvailability(r.Context(), utils.GetViewerID(r.Context()), availability)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) AddSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := ctrl.dayParam(w, r)
	if !ok {
		return
	}
	slot, ok := ctrl.slotBody(w, r)
	if !ok {
		return
	}

	saved, err := ctrl.AvailabilityUsecase.AddSlot(r.Context(), utils.GetViewerID(r.Context()), day, slot)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := ctrl.dayParam(w, r)
	if !ok {
		return
	}
	index, err := utils.ParseSlotIndex(chi.URLParam(r, constvars.URLParamIndex))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScheduling(err))
		return
	}
	slot, ok := ctrl.slotBody(w, r)
	if !ok {
		return
	}

	saved, err := ctrl.AvailabilityUsecase.UpdateSlot(r.Context(), utils.GetViewerID(r.Context()), day, index, slot)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := ctrl.dayParam(w, r)
	if !ok {
		return
	}
	index, err := utils.ParseSlotIndex(chi.URLParam(r, constvars.URLParamIndex))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScheduling(err))
		return
	}

	saved, err := ctrl.AvailabilityUsecase.RemoveSlot(r.Context(), utils.GetViewerID(r.Context()), day, index)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) CopyDay(w http.ResponseWriter, r *http.Request) {
	source, ok := ctrl.dayParam(w, r)
	if !ok {
		return
	}
	request := new(requests.CopyDay)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}

	targets := make([]time.Weekday, 0, len(request.Targets))
	for _, raw := range request.Targets {
		day, err := scheduling.ParseWeekday(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScheduling(err))
			return
		}
		targets = append(targets, day)
	}

	saved, err := ctrl.AvailabilityUsecase.CopyDay(r.Context(), utils.GetViewerID(r.Context()), source, targets...)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) SetDayAvailable(w http.ResponseWriter, r *http.Request) {
	day, ok := ctrl.dayParam(w, r)
	if !ok {
		return
	}
	request := new(requests.SetDayAvailable)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}

	saved, err := ctrl.AvailabilityUsecase.SetDayAvailable(r.Context(), utils.GetViewerID(r.Context()), day, *request.IsAvailable)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

func (ctrl *AvailabilityController) SetTimeGap(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetTimeGap)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}

	saved, err := ctrl.AvailabilityUsecase.SetTimeGap(r.Context(), utils.GetViewerID(r.Context()), *request.TimeGap)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, saved)
}

// CheckBooking answers whether the host could take the proposed booking. Every
// outcome, including a conflict, is a 200 with the decision.
func (ctrl *AvailabilityController) CheckBooking(w http.ResponseWriter, r *http.Request) {
	hostID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamUserID))
	request := new(requests.Booking)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	booking, err := scheduling.NormalizeBooking(request.ToRaw())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScheduling(err))
		return
	}

	decision, err := ctrl.AvailabilityUsecase.CheckBooking(r.Context(), hostID, booking)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckBookingSuccessMessage, decision)
}

// GetOpenings lists free windows between from and to, defaulting to the next
// seven days.
func (ctrl *AvailabilityController) GetOpenings(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamUserID))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	from, err := utils.ParseDateQuery(r, constvars.QueryParamFrom, today)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamFrom))
		return
	}
	to, err := utils.ParseDateQuery(r, constvars.QueryParamTo, from.AddDate(0, 0, 6))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamTo))
		return
	}

	openings, err := ctrl.AvailabilityUsecase.ListOpenings(r.Context(), userID, from, to)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOpeningsSuccessMessage, openings)
}

func (ctrl *AvailabilityController) dayParam(w http.ResponseWriter, r *http.Request) (time.Weekday, bool) {
	day, err := scheduling.ParseWeekday(chi.URLParam(r, constvars.URLParamDay))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDay))
		return 0, false
	}
	return day, true
}

func (ctrl *AvailabilityController) slotBody(w http.ResponseWriter, r *http.Request) (scheduling.Interval, bool) {
	request := new(requests.Slot)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return scheduling.Interval{}, false
	}
	slot, err := scheduling.ParseInterval(request.Start, request.End)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScheduling(err))
		return scheduling.Interval{}, false
	}
	return slot, true
}
