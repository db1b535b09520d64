package controllers

import (
	"context"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MeetingController struct {
	Log            *zap.Logger
	MeetingUsecase contracts.MeetingUsecase
	now            func() time.Time
}

func NewMeetingController(logger *zap.Logger, meetingUsecase contracts.MeetingUsecase) *MeetingController {
	return &MeetingController{
		Log:            logger,
		MeetingUsecase: meetingUsecase,
		now:            time.Now,
	}
}

func (ctrl *MeetingController) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMeeting)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}

	created, err := ctrl.MeetingUsecase.CreateMeeting(r.Context(), utils.GetViewerID(r.Context()), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMeetingSuccessMessage, created)
}

func (ctrl *MeetingController) ListMeetings(w http.ResponseWriter, r *http.Request) {
	buckets, err := ctrl.MeetingUsecase.ListMeetings(r.Context(), utils.GetViewerID(r.Context()), ctrl.now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeetingsSuccessMessage, buckets)
}

func (ctrl *MeetingController) AcceptMeeting(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, ctrl.MeetingUsecase.AcceptMeeting, constvars.AcceptMeetingSuccessMessage)
}

func (ctrl *MeetingController) RejectMeeting(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, ctrl.MeetingUsecase.RejectMeeting, constvars.RejectMeetingSuccessMessage)
}

func (ctrl *MeetingController) CancelMeeting(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, ctrl.MeetingUsecase.CancelMeeting, constvars.CancelMeetingSuccessMessage)
}

func (ctrl *MeetingController) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	export, err := ctrl.MeetingUsecase.ExportCalendar(r.Context(), utils.GetViewerID(r.Context()), ctrl.now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportCalendarSuccessMessage, export)
}

type meetingAction func(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error)

func (ctrl *MeetingController) respond(w http.ResponseWriter, r *http.Request, action meetingAction, message string) {
	meetingID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamMeetingID))
	if meetingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamMeetingID))
		return
	}

	meeting, err := action(r.Context(), meetingID, utils.GetViewerID(r.Context()))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, meeting)
}
