package interview_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/interview"
	interviewerrors "go-hrms/internal/interview/errors"
	interviewMock "go-hrms/internal/interview/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*interviewMock.MockRepository, interview.Service) {
	ctrl := gomock.NewController(t)
	repo := interviewMock.NewMockRepository(ctrl)
	return repo, interview.NewService(repo)
}

func intp(v int) *int { return &v }

func validRequest() interview.InterviewRequest {
	return interview.InterviewRequest{
		CandidateName:  " Mya Thida ",
		JobPosition:    "Research Nurse",
		InterviewDate:  "2025-05-12",
		StartTime:      "09:30",
		EndTime:        "10:15",
		InterviewMode:  interview.ModeOnline,
		TechnicalScore: intp(8),
	}
}

func TestInterviewService_Create(t *testing.T) {
	t.Run("scheduled with score totals", func(t *testing.T) {
		repo, svc := setupService(t)
		req := validRequest()
		req.CommunicationScore = intp(6)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i *interview.Interview) error {
				assert.Equal(t, "Mya Thida", i.CandidateName)
				assert.Equal(t, interview.StatusScheduled, i.InterviewStatus)
				assert.Equal(t, interview.HiredPending, i.HiredStatus)
				return nil
			})

		resp, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 14, resp.TotalScore)
		assert.InDelta(t, 7.0, resp.AverageScore, 0.0001)
		assert.Equal(t, "2025-05-12", resp.InterviewDate)
	})

	t.Run("end before start", func(t *testing.T) {
		_, svc := setupService(t)
		req := validRequest()
		req.EndTime = "09:00"

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, interviewerrors.ErrInvalidTimeRange)
	})

	t.Run("bad date", func(t *testing.T) {
		_, svc := setupService(t)
		req := validRequest()
		req.InterviewDate = "12/05/2025"

		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, interviewerrors.ErrInvalidDateFormat)
	})
}

func TestInterviewService_Update(t *testing.T) {
	t.Run("hired status and scores rewritten", func(t *testing.T) {
		repo, svc := setupService(t)
		id := uuid.New()
		existing := &interview.Interview{
			ID:              id,
			InterviewStatus: interview.StatusScheduled,
			HiredStatus:     interview.HiredPending,
			TechnicalScore:  intp(3),
			TotalScore:      3,
			AverageScore:    3,
		}

		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

		req := validRequest()
		req.InterviewStatus = interview.StatusCompleted
		req.HiredStatus = interview.HiredHired
		req.TechnicalScore = nil
		req.CulturalFitScore = intp(9)
		resp, err := svc.Update(context.Background(), id.String(), req)

		require.NoError(t, err)
		assert.Equal(t, interview.StatusCompleted, resp.InterviewStatus)
		assert.Equal(t, interview.HiredHired, resp.HiredStatus)
		assert.Nil(t, resp.TechnicalScore)
		assert.Equal(t, 9, resp.TotalScore)
	})

	t.Run("missing", func(t *testing.T) {
		repo, svc := setupService(t)
		id := uuid.NewString()

		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(context.Background(), id, validRequest())

		assert.ErrorIs(t, err, interviewerrors.ErrInterviewNotFound)
	})
}

func TestInterviewService_GetByCandidate(t *testing.T) {
	t.Run("history returned", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().FindByCandidate(gomock.Any(), "Mya Thida").Return([]interview.Interview{
			{ID: uuid.New(), CandidateName: "Mya Thida", InterviewDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), CandidateName: "mya thida", InterviewDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

		resp, err := svc.GetByCandidate(context.Background(), "  Mya Thida ")

		require.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "2025-05-12", resp[0].InterviewDate)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().FindByCandidate(gomock.Any(), "Nobody").Return(nil, nil)

		_, err := svc.GetByCandidate(context.Background(), "Nobody")

		assert.ErrorIs(t, err, interviewerrors.ErrCandidateNotFound)
	})
}

func TestInterviewService_GetAll_BadFilterDate(t *testing.T) {
	_, svc := setupService(t)

	_, _, err := svc.GetAll(context.Background(), interview.ListInterviewsRequest{From: "May 1"})

	assert.ErrorIs(t, err, interviewerrors.ErrInvalidFilterDate)
}

func TestInterviewService_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupService(t)
		assert.ErrorIs(t, svc.Delete(context.Background(), "x"), interviewerrors.ErrInvalidInterviewID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, svc := setupService(t)
		id := uuid.NewString()

		repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), interviewerrors.ErrInterviewNotFound)
	})
}
