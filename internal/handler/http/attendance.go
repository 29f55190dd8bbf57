package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetSitePeriod(w http.ResponseWriter, r *http.Request)
	GetSitesOverview(w http.ResponseWriter, r *http.Request)
	GetEmployeeCounts(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// GetSitePeriod implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSitePeriod(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.SitePeriodRequest{
		SiteID:    chi.URLParam(r, "siteId"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if includeDays := query.Get("include_days"); includeDays != "" {
		v, err := strconv.ParseBool(includeDays)
		if err != nil {
			response.BadRequest(w, "include_days must be true or false", nil)
			return
		}
		req.IncludeDays = v
	}

	result, err := h.attendanceService.GetSitePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSitesOverview implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetSitesOverview(w http.ResponseWriter, r *http.Request) {
	req := attendance.SitesOverviewRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if req.StartDate == "" || req.EndDate == "" {
		response.BadRequest(w, "start_date and end_date are required", nil)
		return
	}

	result, err := h.attendanceService.GetSitesOverview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeCounts implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeCounts(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.attendanceService.GetEmployeeCounts(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
