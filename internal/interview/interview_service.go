package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	interviewerrors "go-hrms/internal/interview/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interview_service.go -destination=mock/interview_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListInterviewsRequest) ([]InterviewResponse, int64, error)
	GetByCandidate(ctx context.Context, name string) ([]InterviewResponse, error)
	GetByID(ctx context.Context, id string) (InterviewResponse, error)
	Create(ctx context.Context, req InterviewRequest) (InterviewResponse, error)
	Update(ctx context.Context, id string, req InterviewRequest) (InterviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("interview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, req ListInterviewsRequest) ([]InterviewResponse, int64, error) {
	req.Params = req.Params.Normalize()

	from, err := dateutil.ParseOptional(&req.From)
	if err != nil {
		return nil, 0, interviewerrors.ErrInvalidFilterDate
	}
	to, err := dateutil.ParseOptional(&req.To)
	if err != nil {
		return nil, 0, interviewerrors.ErrInvalidFilterDate
	}

	interviews, total, err := s.repo.FindAll(ctx, req, from, to)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(interviews), total, nil
}

func (s *service) GetByCandidate(ctx context.Context, name string) ([]InterviewResponse, error) {
	interviews, err := s.repo.FindByCandidate(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if len(interviews) == 0 {
		return nil, interviewerrors.ErrCandidateNotFound
	}
	return mapToListResponse(interviews), nil
}

func (s *service) GetByID(ctx context.Context, id string) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}

	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InterviewResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*i), nil
}

func (s *service) Create(ctx context.Context, req InterviewRequest) (InterviewResponse, error) {
	i := &Interview{
		ID:              uuid.New(),
		InterviewStatus: StatusScheduled,
		HiredStatus:     HiredPending,
	}
	if id, err := uuid.Parse(contextutil.GetUserID(ctx)); err == nil {
		i.CreatedBy = &id
	}
	if err := apply(i, req); err != nil {
		return InterviewResponse{}, err
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return InterviewResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("interview scheduled",
		zap.String("interview_id", i.ID.String()),
		zap.String("job_position", i.JobPosition),
	)
	return mapToResponse(*i), nil
}

func (s *service) Update(ctx context.Context, id string, req InterviewRequest) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}

	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return InterviewResponse{}, mapRepositoryError(err)
	}
	if err := apply(i, req); err != nil {
		return InterviewResponse{}, err
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return InterviewResponse{}, err
	}
	return mapToResponse(*i), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return interviewerrors.ErrInvalidInterviewID
	}
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func apply(i *Interview, req InterviewRequest) error {
	date, err := dateutil.Parse(req.InterviewDate)
	if err != nil {
		return interviewerrors.ErrInvalidDateFormat
	}
	// HH:MM compares correctly as text
	if req.StartTime != "" && req.EndTime != "" && req.EndTime <= req.StartTime {
		return interviewerrors.ErrInvalidTimeRange
	}

	i.CandidateName = strings.TrimSpace(req.CandidateName)
	i.Phone = strings.TrimSpace(req.Phone)
	i.JobPosition = strings.TrimSpace(req.JobPosition)
	i.InterviewerNames = strings.TrimSpace(req.InterviewerNames)
	i.InterviewDate = date
	i.StartTime = req.StartTime
	i.EndTime = req.EndTime
	i.InterviewMode = req.InterviewMode
	if req.InterviewStatus != "" {
		i.InterviewStatus = req.InterviewStatus
	}
	i.TechnicalScore = req.TechnicalScore
	i.CommunicationScore = req.CommunicationScore
	i.ProblemSolvingScore = req.ProblemSolvingScore
	i.CulturalFitScore = req.CulturalFitScore
	if req.HiredStatus != "" {
		i.HiredStatus = req.HiredStatus
	}
	i.ReferenceInfo = strings.TrimSpace(req.ReferenceInfo)
	i.Notes = strings.TrimSpace(req.Notes)
	i.score()
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return interviewerrors.ErrInterviewNotFound
	}
	return err
}

func mapToResponse(i Interview) InterviewResponse {
	resp := InterviewResponse{
		ID:                  i.ID.String(),
		CandidateName:       i.CandidateName,
		Phone:               i.Phone,
		JobPosition:         i.JobPosition,
		InterviewerNames:    i.InterviewerNames,
		InterviewDate:       dateutil.Format(i.InterviewDate),
		StartTime:           i.StartTime,
		EndTime:             i.EndTime,
		InterviewMode:       i.InterviewMode,
		InterviewStatus:     i.InterviewStatus,
		TechnicalScore:      i.TechnicalScore,
		CommunicationScore:  i.CommunicationScore,
		ProblemSolvingScore: i.ProblemSolvingScore,
		CulturalFitScore:    i.CulturalFitScore,
		TotalScore:          i.TotalScore,
		AverageScore:        i.AverageScore,
		HiredStatus:         i.HiredStatus,
		ReferenceInfo:       i.ReferenceInfo,
		Notes:               i.Notes,
	}
	if !i.CreatedAt.IsZero() {
		resp.CreatedAt = i.CreatedAt.Format(time.RFC3339)
	}
	if !i.UpdatedAt.IsZero() {
		resp.UpdatedAt = i.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(interviews []Interview) []InterviewResponse {
	res := make([]InterviewResponse, len(interviews))
	for i, iv := range interviews {
		res[i] = mapToResponse(iv)
	}
	return res
}
