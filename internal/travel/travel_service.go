package travel

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"
	travelerrors "go-hrms/internal/travel/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=travel_service.go -destination=mock/travel_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListTravelRequestsRequest) ([]TravelResponse, int64, error)
	GetByID(ctx context.Context, id string) (TravelResponse, error)
	Create(ctx context.Context, req TravelRequestInput) (TravelResponse, error)
	Update(ctx context.Context, id string, req TravelRequestInput) (TravelResponse, error)
	Approve(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error)
	Decline(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error)
	Acknowledge(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error)
	Cancel(ctx context.Context, id string) (TravelResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("travel.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("travel.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) GetAll(ctx context.Context, req ListTravelRequestsRequest) ([]TravelResponse, int64, error) {
	req.Params = req.Params.Normalize()

	requests, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]TravelResponse, len(requests))
	for i, t := range requests {
		resp[i] = mapToResponse(t)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TravelResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TravelResponse{}, travelerrors.ErrInvalidTravelID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Create(ctx context.Context, req TravelRequestInput) (TravelResponse, error) {
	t := &TravelRequest{
		ID:        uuid.New(),
		Status:    StatusPending,
		CreatedBy: actorID(ctx),
	}
	if err := apply(t, req); err != nil {
		return TravelResponse{}, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("travel request created",
		zap.String("travel_request_id", t.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("destination", t.Destination),
	)
	return s.reload(ctx, t)
}

func (s *service) Update(ctx context.Context, id string, req TravelRequestInput) (TravelResponse, error) {
	return s.mutate(ctx, id, func(t *TravelRequest) error {
		if t.Status != StatusPending {
			return travelerrors.ErrOnlyPending
		}
		return apply(t, req)
	})
}

func (s *service) Approve(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error) {
	on, err := s.decisionDate(req.Date)
	if err != nil {
		return TravelResponse{}, err
	}

	return s.mutate(ctx, id, func(t *TravelRequest) error {
		if t.Status != StatusPending {
			return travelerrors.ErrOnlyPending
		}
		t.Status = StatusApproved
		t.SupervisorApproved = true
		t.SupervisorApprovedDate = &on
		appendRemarks(t, req.Remarks)
		return nil
	})
}

func (s *service) Decline(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error) {
	return s.mutate(ctx, id, func(t *TravelRequest) error {
		if t.Status != StatusPending {
			return travelerrors.ErrOnlyPending
		}
		t.Status = StatusDeclined
		t.SupervisorApproved = false
		t.SupervisorApprovedDate = nil
		appendRemarks(t, req.Remarks)
		return nil
	})
}

// Acknowledge records HR's acknowledgement of an approved request, which
// closes it as completed.
func (s *service) Acknowledge(ctx context.Context, id string, req DecisionRequest) (TravelResponse, error) {
	on, err := s.decisionDate(req.Date)
	if err != nil {
		return TravelResponse{}, err
	}

	return s.mutate(ctx, id, func(t *TravelRequest) error {
		if t.Status != StatusApproved {
			return travelerrors.ErrNotApproved
		}
		t.Status = StatusCompleted
		t.HRAcknowledged = true
		t.HRAcknowledgementDate = &on
		appendRemarks(t, req.Remarks)
		return nil
	})
}

func (s *service) Cancel(ctx context.Context, id string) (TravelResponse, error) {
	return s.mutate(ctx, id, func(t *TravelRequest) error {
		if t.Status != StatusPending && t.Status != StatusApproved {
			return travelerrors.ErrCannotCancel
		}
		t.Status = StatusCancelled
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return travelerrors.ErrInvalidTravelID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.LockByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if t.Status == StatusApproved || t.Status == StatusCompleted {
		return travelerrors.ErrCannotDelete
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func (s *service) mutate(ctx context.Context, id string, fn func(t *TravelRequest) error) (TravelResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TravelResponse{}, travelerrors.ErrInvalidTravelID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TravelResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.LockByID(ctx, id)
	if err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}
	if err := fn(t); err != nil {
		return TravelResponse{}, err
	}
	if err := qtx.Update(ctx, t); err != nil {
		return TravelResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TravelResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("travel request updated",
		zap.String("travel_request_id", id),
		zap.String("status", t.Status),
	)
	return s.reload(ctx, t)
}

// reload reads the request back with its references for the response.
func (s *service) reload(ctx context.Context, t *TravelRequest) (TravelResponse, error) {
	fresh, err := s.repo.FindByID(ctx, t.ID.String())
	if err != nil {
		return mapToResponse(*t), nil
	}
	return mapToResponse(*fresh), nil
}

func (s *service) decisionDate(v *string) (time.Time, error) {
	if v == nil || *v == "" {
		return dateutil.Truncate(s.now()), nil
	}
	t, err := dateutil.Parse(*v)
	if err != nil {
		return time.Time{}, travelerrors.ErrInvalidDate
	}
	return t, nil
}

func apply(t *TravelRequest, req TravelRequestInput) error {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return travelerrors.ErrEmployeeNotFound
	}
	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		return travelerrors.ErrInvalidDate
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		return travelerrors.ErrInvalidDate
	}
	if end.Before(start) {
		return travelerrors.ErrInvalidDateRange
	}
	requestBy, err := dateutil.ParseOptional(req.RequestByDate)
	if err != nil {
		return travelerrors.ErrInvalidDate
	}

	if req.Transportation == TransportationOther && strings.TrimSpace(req.TransportationOther) == "" {
		return travelerrors.ErrOtherDetailNeeded
	}
	if req.Accommodation == AccommodationOther && strings.TrimSpace(req.AccommodationOther) == "" {
		return travelerrors.ErrOtherStayNeeded
	}

	t.EmployeeID = employeeID
	t.DepartmentID = parseOptionalID(req.DepartmentID)
	t.PositionID = parseOptionalID(req.PositionID)
	t.GrantID = parseOptionalID(req.GrantID)
	t.Destination = strings.TrimSpace(req.Destination)
	t.StartDate = start
	t.EndDate = end
	t.Purpose = strings.TrimSpace(req.Purpose)
	t.Transportation = req.Transportation
	t.TransportationOther = ""
	if req.Transportation == TransportationOther {
		t.TransportationOther = strings.TrimSpace(req.TransportationOther)
	}
	t.Accommodation = req.Accommodation
	t.AccommodationOther = ""
	if req.Accommodation == AccommodationOther {
		t.AccommodationOther = strings.TrimSpace(req.AccommodationOther)
	}
	t.RequestByDate = requestBy
	t.Remarks = strings.TrimSpace(req.Remarks)
	return nil
}

func appendRemarks(t *TravelRequest, remarks string) {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return
	}
	if t.Remarks == "" {
		t.Remarks = remarks
		return
	}
	t.Remarks += "\n" + remarks
}

func parseOptionalID(v *string) *uuid.UUID {
	if v == nil || *v == "" {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func actorID(ctx context.Context) *uuid.UUID {
	id, err := uuid.Parse(contextutil.GetUserID(ctx))
	if err != nil {
		return nil
	}
	return &id
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(t TravelRequest) TravelResponse {
	resp := TravelResponse{
		ID:                     t.ID.String(),
		EmployeeID:             t.EmployeeID.String(),
		DepartmentID:           idString(t.DepartmentID),
		PositionID:             idString(t.PositionID),
		Destination:            t.Destination,
		StartDate:              dateutil.Format(t.StartDate),
		EndDate:                dateutil.Format(t.EndDate),
		Purpose:                t.Purpose,
		GrantID:                idString(t.GrantID),
		Transportation:         t.Transportation,
		TransportationOther:    t.TransportationOther,
		Accommodation:          t.Accommodation,
		AccommodationOther:     t.AccommodationOther,
		RequestByDate:          dateutil.FormatPtr(t.RequestByDate),
		SupervisorApproved:     t.SupervisorApproved,
		SupervisorApprovedDate: dateutil.FormatPtr(t.SupervisorApprovedDate),
		HRAcknowledged:         t.HRAcknowledged,
		HRAcknowledgementDate:  dateutil.FormatPtr(t.HRAcknowledgementDate),
		Remarks:                t.Remarks,
		Status:                 t.Status,
		CreatedAt:              t.CreatedAt.Format(time.RFC3339),
	}
	if t.Employee != nil {
		resp.StaffID = t.Employee.StaffID
		resp.EmployeeName = t.Employee.FullName()
	}
	if t.Department != nil {
		resp.DepartmentName = t.Department.Name
	}
	if t.Position != nil {
		resp.PositionTitle = t.Position.Title
	}
	if t.Grant != nil {
		resp.GrantCode = t.Grant.Code
	}
	return resp
}
