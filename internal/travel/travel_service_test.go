package travel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/travel"
	travelerrors "go-hrms/internal/travel/errors"
	travelMock "go-hrms/internal/travel/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *travelMock.MockRepository
	service travel.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := travelMock.NewMockRepository(ctrl)
	return &serviceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		service: travel.NewService(db, repo),
	}
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func ptr(s string) *string { return &s }

func validInput() travel.TravelRequestInput {
	return travel.TravelRequestInput{
		EmployeeID:     uuid.NewString(),
		Destination:    " Mae Sot ",
		StartDate:      "2025-04-02",
		EndDate:        "2025-04-04",
		Purpose:        "Field visit",
		Transportation: travel.TransportationOfficeVehicle,
		Accommodation:  travel.AccommodationOffice,
	}
}

func pendingRequest() *travel.TravelRequest {
	return &travel.TravelRequest{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		Destination:    "Mae Sot",
		StartDate:      day("2025-04-02"),
		EndDate:        day("2025-04-04"),
		Transportation: travel.TransportationAir,
		Accommodation:  travel.AccommodationSelf,
		Status:         travel.StatusPending,
	}
}

// expectMutate wires one locked read-modify-write cycle on t.
func (d *serviceDeps) expectMutate(t *travel.TravelRequest, commit bool) {
	d.sqlMock.ExpectBegin()
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().LockByID(gomock.Any(), t.ID.String()).Return(t, nil)
	if commit {
		d.repo.EXPECT().Update(gomock.Any(), t).Return(nil)
		d.sqlMock.ExpectCommit()
		d.repo.EXPECT().FindByID(gomock.Any(), t.ID.String()).Return(t, nil)
		return
	}
	d.sqlMock.ExpectRollback()
}

func TestTravelService_Create(t *testing.T) {
	t.Run("created and reloaded with references", func(t *testing.T) {
		d := setupServiceTest(t)
		in := validInput()

		var created *travel.TravelRequest
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *travel.TravelRequest) error {
				created = tr
				assert.Equal(t, travel.StatusPending, tr.Status)
				assert.Equal(t, "Mae Sot", tr.Destination)
				assert.Equal(t, day("2025-04-04"), tr.EndDate)
				return nil
			})
		d.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (*travel.TravelRequest, error) {
				fresh := *created
				fresh.Employee = &travel.TravelEmployee{StaffID: "0042", FirstNameEN: "Naw", LastNameEN: "Htoo"}
				return &fresh, nil
			})

		resp, err := d.service.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "0042", resp.StaffID)
		assert.Equal(t, "Naw Htoo", resp.EmployeeName)
		assert.Equal(t, "2025-04-02", resp.StartDate)
		assert.Nil(t, resp.SupervisorApprovedDate)
	})

	t.Run("other transportation needs detail", func(t *testing.T) {
		d := setupServiceTest(t)
		in := validInput()
		in.Transportation = travel.TransportationOther

		_, err := d.service.Create(context.Background(), in)

		assert.ErrorIs(t, err, travelerrors.ErrOtherDetailNeeded)
	})

	t.Run("other accommodation needs detail", func(t *testing.T) {
		d := setupServiceTest(t)
		in := validInput()
		in.Accommodation = travel.AccommodationOther
		in.AccommodationOther = "  "

		_, err := d.service.Create(context.Background(), in)

		assert.ErrorIs(t, err, travelerrors.ErrOtherStayNeeded)
	})

	t.Run("end before start", func(t *testing.T) {
		d := setupServiceTest(t)
		in := validInput()
		in.EndDate = "2025-04-01"

		_, err := d.service.Create(context.Background(), in)

		assert.ErrorIs(t, err, travelerrors.ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		d := setupServiceTest(t)
		in := validInput()
		in.StartDate = "02/04/2025"

		_, err := d.service.Create(context.Background(), in)

		assert.ErrorIs(t, err, travelerrors.ErrInvalidDate)
	})
}

func TestTravelService_Update(t *testing.T) {
	t.Run("pending request rewritten", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		d.expectMutate(tr, true)

		in := validInput()
		in.Transportation = travel.TransportationOther
		in.TransportationOther = "Boat"
		resp, err := d.service.Update(context.Background(), tr.ID.String(), in)

		require.NoError(t, err)
		assert.Equal(t, "Boat", resp.TransportationOther)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("approved request is frozen", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusApproved
		d.expectMutate(tr, false)

		_, err := d.service.Update(context.Background(), tr.ID.String(), validInput())

		assert.ErrorIs(t, err, travelerrors.ErrOnlyPending)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestTravelService_Approve(t *testing.T) {
	t.Run("pending approved on given date", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Remarks = "Needs car"
		d.expectMutate(tr, true)

		resp, err := d.service.Approve(context.Background(), tr.ID.String(), travel.DecisionRequest{
			Date:    ptr("2025-03-28"),
			Remarks: "OK by supervisor",
		})

		require.NoError(t, err)
		assert.Equal(t, travel.StatusApproved, resp.Status)
		assert.True(t, resp.SupervisorApproved)
		assert.Equal(t, "2025-03-28", *resp.SupervisorApprovedDate)
		assert.Equal(t, "Needs car\nOK by supervisor", resp.Remarks)
	})

	t.Run("declined request cannot be approved", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusDeclined
		d.expectMutate(tr, false)

		_, err := d.service.Approve(context.Background(), tr.ID.String(), travel.DecisionRequest{})

		assert.ErrorIs(t, err, travelerrors.ErrOnlyPending)
	})

	t.Run("bad decision date", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Approve(context.Background(), uuid.NewString(), travel.DecisionRequest{Date: ptr("yesterday")})

		assert.ErrorIs(t, err, travelerrors.ErrInvalidDate)
	})

	t.Run("invalid id", func(t *testing.T) {
		d := setupServiceTest(t)

		_, err := d.service.Approve(context.Background(), "abc", travel.DecisionRequest{})

		assert.ErrorIs(t, err, travelerrors.ErrInvalidTravelID)
	})
}

func TestTravelService_Acknowledge(t *testing.T) {
	t.Run("approved moves to completed", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusApproved
		d.expectMutate(tr, true)

		resp, err := d.service.Acknowledge(context.Background(), tr.ID.String(), travel.DecisionRequest{Date: ptr("2025-03-30")})

		require.NoError(t, err)
		assert.Equal(t, travel.StatusCompleted, resp.Status)
		assert.True(t, resp.HRAcknowledged)
		assert.Equal(t, "2025-03-30", *resp.HRAcknowledgementDate)
	})

	t.Run("pending not acknowledged", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		d.expectMutate(tr, false)

		_, err := d.service.Acknowledge(context.Background(), tr.ID.String(), travel.DecisionRequest{})

		assert.ErrorIs(t, err, travelerrors.ErrNotApproved)
	})
}

func TestTravelService_Cancel(t *testing.T) {
	t.Run("approved can be cancelled", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusApproved
		d.expectMutate(tr, true)

		resp, err := d.service.Cancel(context.Background(), tr.ID.String())

		require.NoError(t, err)
		assert.Equal(t, travel.StatusCancelled, resp.Status)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusCompleted
		d.expectMutate(tr, false)

		_, err := d.service.Cancel(context.Background(), tr.ID.String())

		assert.ErrorIs(t, err, travelerrors.ErrCannotCancel)
	})
}

func TestTravelService_Delete(t *testing.T) {
	t.Run("approved kept", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusApproved

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), tr.ID.String()).Return(tr, nil)
		d.sqlMock.ExpectRollback()

		err := d.service.Delete(context.Background(), tr.ID.String())

		assert.ErrorIs(t, err, travelerrors.ErrCannotDelete)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("declined removed", func(t *testing.T) {
		d := setupServiceTest(t)
		tr := pendingRequest()
		tr.Status = travel.StatusDeclined

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), tr.ID.String()).Return(tr, nil)
		d.repo.EXPECT().Delete(gomock.Any(), tr.ID.String()).Return(nil)
		d.sqlMock.ExpectCommit()

		err := d.service.Delete(context.Background(), tr.ID.String())

		require.NoError(t, err)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		d := setupServiceTest(t)
		id := uuid.NewString()

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
		d.sqlMock.ExpectRollback()

		err := d.service.Delete(context.Background(), id)

		assert.ErrorIs(t, err, travelerrors.ErrTravelNotFound)
	})
}

func TestTravelService_GetAll(t *testing.T) {
	d := setupServiceTest(t)

	d.repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	_, _, err := d.service.GetAll(context.Background(), travel.ListTravelRequestsRequest{})

	assert.EqualError(t, err, "db down")
}
