package importexport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	importexporterrors "go-hrms/internal/importexport/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/realtime"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MaxUploadSize = 10 << 20

	// progressEvery is how many rows pass between progress updates.
	progressEvery = 25
)

//go:generate mockgen -source=import_service.go -destination=mock/import_service_mock.go -package=mock
type ImportService interface {
	RequestEmployeeImport(ctx context.Context, fileName string, size int64, r io.Reader) (ImportJobResponse, error)
	GetJob(ctx context.Context, id string) (ImportJobResponse, error)
	ProcessImport(ctx context.Context, jobID string) error
	EmployeeTemplate(ctx context.Context) ([]byte, string, error)
}

// EmployeeImporter is satisfied by employee.Service.
type EmployeeImporter interface {
	StaffIDExists(ctx context.Context, staffID string) (bool, error)
	CreateImported(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
}

// Notifier is satisfied by notification.Service.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []string, in notification.Input) error
}

type importService struct {
	db          *sql.DB
	repo        Repository
	store       FileStore
	employees   EmployeeImporter
	outbox      kafka.OutboxRepository
	broadcaster realtime.Broadcaster
	notifier    Notifier
	validate    *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

func NewImportService(
	db *sql.DB,
	repo Repository,
	store FileStore,
	employees EmployeeImporter,
	outboxRepo kafka.OutboxRepository,
	broadcaster realtime.Broadcaster,
	notifier Notifier,
	logger ...*zap.Logger,
) ImportService {
	l := zap.L().Named("importexport.import")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("importexport.import")
	}

	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(apperror.FieldName)

	return &importService{
		db:          db,
		repo:        repo,
		store:       store,
		employees:   employees,
		outbox:      outboxRepo,
		broadcaster: broadcaster,
		notifier:    notifier,
		validate:    v,
		logger:      l,
		now:         time.Now,
	}
}

// RequestEmployeeImport stores the upload and queues a job for the consumer.
// The stored file is removed again if the job cannot be queued.
func (s *importService) RequestEmployeeImport(ctx context.Context, fileName string, size int64, r io.Reader) (ImportJobResponse, error) {
	if r == nil || size == 0 {
		return ImportJobResponse{}, importexporterrors.ErrFileRequired
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return ImportJobResponse{}, importexporterrors.ErrUnsupportedFile
	}
	if size > MaxUploadSize {
		return ImportJobResponse{}, importexporterrors.ErrFileTooLarge
	}

	job := &ImportJob{
		ID:          uuid.New(),
		Type:        JobTypeEmployees,
		FileName:    filepath.Base(fileName),
		Status:      JobStatusQueued,
		Errors:      []RowError{},
		RequestedBy: actorID(ctx),
	}

	path, err := s.store.Save(ctx, filepath.Join("imports", job.ID.String()+".xlsx"), r)
	if err != nil {
		return ImportJobResponse{}, err
	}
	job.FilePath = path

	if err := s.queue(ctx, job); err != nil {
		if rmErr := s.store.Remove(ctx, path); rmErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("path", path), zap.Error(rmErr))
		}
		return ImportJobResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("employee import queued",
		zap.String("job_id", job.ID.String()),
		zap.String("file_name", job.FileName),
		zap.Int64("size", size),
	)
	return mapJob(*job), nil
}

func (s *importService) queue(ctx context.Context, job *ImportJob) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, job); err != nil {
		return err
	}

	event := events.EmployeeImportRequestedEvent{
		EventType:   "import.employees.requested",
		JobID:       job.ID.String(),
		RequestedBy: contextutil.GetUserID(ctx),
		OccurredAt:  s.now().UTC(),
	}
	row, err := kafka.NewEvent(ctx, "import_job", event.JobID, event.EventType, events.EmployeeImportRequestedTopic, event)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *importService) GetJob(ctx context.Context, id string) (ImportJobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ImportJobResponse{}, importexporterrors.ErrInvalidJobID
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ImportJobResponse{}, mapJobError(err)
	}
	return mapJob(*job), nil
}

// ProcessImport runs a queued employee import. Rows are created one by one;
// a bad row is recorded on the job and the run carries on. Rows whose
// staff_id already exists, in the database or earlier in the file, are
// skipped. A redelivered job that already finished is ignored.
func (s *importService) ProcessImport(ctx context.Context, jobID string) error {
	l := s.logger.With(zap.String("job_id", jobID))

	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return mapJobError(err)
	}
	if job.finished() {
		l.Info("import already finished, skipping")
		return nil
	}

	started := s.now()
	job.Status = JobStatusProcessing
	job.StartedAt = &started
	job.ProcessedRows, job.CreatedRows, job.SkippedRows, job.FailedRows = 0, 0, 0, 0
	job.Errors = []RowError{}
	job.FailureReason = ""

	rows, err := s.load(ctx, job.FilePath)
	if err != nil {
		// A file that cannot be imported will not get better on redelivery.
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			return err
		}
		l.Warn("import file rejected", zap.Error(err))
		return s.fail(ctx, job, err)
	}
	job.TotalRows = len(rows)
	if err := s.repo.Update(ctx, job); err != nil {
		return err
	}
	s.broadcast(ctx, *job, realtime.EventImportProgress)

	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.importRow(ctx, job, row, seen)
		job.ProcessedRows++

		if (i+1)%progressEvery == 0 && i+1 < len(rows) {
			if err := s.repo.Update(ctx, job); err != nil {
				return err
			}
			s.broadcast(ctx, *job, realtime.EventImportProgress)
		}
	}

	finished := s.now()
	job.Status = JobStatusCompleted
	job.FinishedAt = &finished
	if err := s.repo.Update(ctx, job); err != nil {
		return err
	}
	s.broadcast(ctx, *job, realtime.EventImportCompleted)
	s.notifyFinished(ctx, *job)

	if err := s.store.Remove(ctx, job.FilePath); err != nil {
		l.Warn("failed to remove import file", zap.Error(err))
	}

	l.Info("employee import finished",
		zap.Int("total", job.TotalRows),
		zap.Int("created", job.CreatedRows),
		zap.Int("skipped", job.SkippedRows),
		zap.Int("failed", job.FailedRows),
	)
	return nil
}

func (s *importService) load(ctx context.Context, path string) ([]sheetRow, error) {
	rc, err := s.store.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer rc.Close()

	f, err := excelize.OpenReader(rc)
	if err != nil {
		return nil, importexporterrors.ErrUnreadableFile.Wrap(err)
	}
	defer f.Close()

	rows, missing, err := readRows(f, requiredEmployeeColumns)
	if err != nil {
		return nil, importexporterrors.ErrUnreadableFile.Wrap(err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", importexporterrors.ErrMissingColumns, strings.Join(missing, ", "))
	}
	return rows, nil
}

func (s *importService) importRow(ctx context.Context, job *ImportJob, row sheetRow, seen map[string]bool) {
	req, err := employeeFromRow(row)
	if err != nil {
		job.addError(RowError{Row: row.number, StaffID: req.StaffID, Message: err.Error()})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		job.addError(RowError{Row: row.number, StaffID: req.StaffID, Message: validationMessage(err)})
		return
	}

	if req.StaffID != "" {
		key := strings.ToLower(req.StaffID)
		if seen[key] {
			job.SkippedRows++
			return
		}
		seen[key] = true

		exists, err := s.employees.StaffIDExists(ctx, req.StaffID)
		if err != nil {
			job.addError(RowError{Row: row.number, StaffID: req.StaffID, Message: err.Error()})
			return
		}
		if exists {
			job.SkippedRows++
			return
		}
	}

	if _, err := s.employees.CreateImported(ctx, req); err != nil {
		job.addError(RowError{Row: row.number, StaffID: req.StaffID, Message: err.Error()})
		return
	}
	job.CreatedRows++
}

func (s *importService) fail(ctx context.Context, job *ImportJob, cause error) error {
	now := s.now()
	job.Status = JobStatusFailed
	job.FinishedAt = &now
	job.FailureReason = cause.Error()
	if err := s.repo.Update(ctx, job); err != nil {
		return err
	}
	s.broadcast(ctx, *job, realtime.EventImportCompleted)
	s.notifyFinished(ctx, *job)
	return nil
}

func (s *importService) broadcast(ctx context.Context, job ImportJob, event string) {
	if s.broadcaster == nil || job.RequestedBy == nil {
		return
	}
	channel := realtime.ImportChannel(job.RequestedBy.String())
	if err := s.broadcaster.Broadcast(ctx, channel, event, mapProgress(job)); err != nil {
		s.logger.Warn("failed to broadcast import progress", zap.String("job_id", job.ID.String()), zap.Error(err))
	}
}

func (s *importService) notifyFinished(ctx context.Context, job ImportJob) {
	if s.notifier == nil || job.RequestedBy == nil {
		return
	}

	title := "Employee import finished"
	message := fmt.Sprintf("%s: %d created, %d skipped, %d failed.",
		job.FileName, job.CreatedRows, job.SkippedRows, job.FailedRows)
	if job.Status == JobStatusFailed {
		title = "Employee import failed"
		message = fmt.Sprintf("%s could not be imported: %s", job.FileName, job.FailureReason)
	}

	err := s.notifier.NotifyUsers(ctx, []string{job.RequestedBy.String()}, notification.Input{
		Type:    notification.TypeImportFinished,
		Title:   title,
		Message: message,
		Data: map[string]any{
			"job_id":  job.ID.String(),
			"status":  job.Status,
			"created": job.CreatedRows,
			"skipped": job.SkippedRows,
			"failed":  job.FailedRows,
		},
	})
	if err != nil {
		s.logger.Warn("failed to notify import requester", zap.String("job_id", job.ID.String()), zap.Error(err))
	}
}

func (s *importService) EmployeeTemplate(_ context.Context) ([]byte, string, error) {
	data, err := EmployeeTemplate()
	if err != nil {
		return nil, "", err
	}
	return data, "employee_import_template.xlsx", nil
}

// validationMessage flattens field errors into one line, fields sorted.
func validationMessage(err error) string {
	var appErr *apperror.AppError
	if !errors.As(apperror.MapValidationError(err), &appErr) || len(appErr.Fields) == 0 {
		return err.Error()
	}

	fields := make([]string, 0, len(appErr.Fields))
	for f := range appErr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, appErr.Fields[f]...)
	}
	return strings.Join(msgs, "; ")
}

func mapJobError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return importexporterrors.ErrJobNotFound
	}
	return err
}

func actorID(ctx context.Context) *uuid.UUID {
	id, err := uuid.Parse(contextutil.GetUserID(ctx))
	if err != nil {
		return nil
	}
	return &id
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapProgress(job ImportJob) ImportProgress {
	return ImportProgress{
		JobID:         job.ID.String(),
		Status:        job.Status,
		TotalRows:     job.TotalRows,
		ProcessedRows: job.ProcessedRows,
		CreatedRows:   job.CreatedRows,
		SkippedRows:   job.SkippedRows,
		FailedRows:    job.FailedRows,
	}
}

func mapJob(job ImportJob) ImportJobResponse {
	progress := 0
	if job.TotalRows > 0 {
		progress = job.ProcessedRows * 100 / job.TotalRows
	}
	if job.finished() {
		progress = 100
	}
	errs := job.Errors
	if errs == nil {
		errs = []RowError{}
	}
	return ImportJobResponse{
		ID:            job.ID.String(),
		Type:          job.Type,
		FileName:      job.FileName,
		Status:        job.Status,
		TotalRows:     job.TotalRows,
		ProcessedRows: job.ProcessedRows,
		CreatedRows:   job.CreatedRows,
		SkippedRows:   job.SkippedRows,
		FailedRows:    job.FailedRows,
		Progress:      progress,
		Errors:        errs,
		FailureReason: job.FailureReason,
		StartedAt:     formatTime(job.StartedAt),
		FinishedAt:    formatTime(job.FinishedAt),
		CreatedAt:     job.CreatedAt.Format(time.RFC3339),
	}
}
