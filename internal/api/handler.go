package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/shinebright/schedule/internal/entity"
)

// @title Schedule API
// @version 1.0
// @description Read access to client schedules and internal resync triggers
// @BasePath /schedule/api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	ClientSchedule(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error)
	ResyncClient(ctx context.Context, clientID uuid.UUID) (entity.SyncResult, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type JobResponse struct {
	ID                   uuid.UUID       `json:"id"`
	ClientID             uuid.UUID       `json:"clientId"`
	ClientName           string          `json:"clientName"`
	Address              string          `json:"address"`
	ScheduledDate        string          `json:"scheduledDate"`
	Status               string          `json:"status"`
	AssignedEmployeeID   *uuid.UUID      `json:"assignedEmployeeId,omitempty"`
	AssignedEmployeeName string          `json:"assignedEmployeeName,omitempty"`
	Origin               string          `json:"origin"`
	Price                decimal.Decimal `json:"price"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

type ClientScheduleResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// ClientSchedule godoc
// @Summary Client schedule in a date range
// @Param client_id path string true "client ID"
// @Param from query string false "range start, YYYY-MM-DD, defaults to today"
// @Param to query string false "range end, YYYY-MM-DD, defaults to from+31d"
// @Success 200 {object} ClientScheduleResponse
// @Router /schedule/jobs/{client_id} [get]
func (h *Handler) ClientSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid client id")
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid date range")
		return
	}

	jobs, err := h.s.ClientSchedule(ctx, clientID, from, to)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid date range")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "get client schedule")

		return
	}

	resp := ClientScheduleResponse{
		Jobs: make([]JobResponse, 0, len(jobs)),
	}

	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, JobResponse{
			ID:                   j.ID,
			ClientID:             j.ClientID,
			ClientName:           j.ClientName,
			Address:              j.Address,
			ScheduledDate:        j.ScheduledDate.Format(time.DateOnly),
			Status:               j.Status.String(),
			AssignedEmployeeID:   j.AssignedEmployeeID,
			AssignedEmployeeName: j.AssignedEmployeeName,
			Origin:               j.Origin.String(),
			Price:                j.Price,
			CreatedAt:            j.CreatedAt,
			UpdatedAt:            j.UpdatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type ResyncResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// ResyncClient godoc
// @Summary Force a schedule resync for one client
// @Security ApiKeyAuth
// @Param client_id path string true "client ID"
// @Success 200 {object} ResyncResponse
// @Router /internal/schedule/resync/{client_id} [post]
func (h *Handler) ResyncClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid client id")
		return
	}

	res, err := h.s.ResyncClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "client not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "resync client schedule")

		return
	}

	SendJSON(ctx, w, http.StatusOK, ResyncResponse{
		Created: res.Created,
		Updated: res.Updated,
		Deleted: res.Deleted,
	})
}

// HealthHandler godoc
// @Summary Service liveness
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func parseDateRange(r *http.Request) (from, to time.Time, err error) {
	const defaultRangeDays = 31

	now := time.Now().UTC()
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.ParseInLocation(time.DateOnly, v, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse from: %w", err)
		}
	}

	to = from.AddDate(0, 0, defaultRangeDays)

	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.ParseInLocation(time.DateOnly, v, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse to: %w", err)
		}
	}

	return from, to, nil
}
