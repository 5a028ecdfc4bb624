package importexport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/importexport"
	importexporterrors "go-hrms/internal/importexport/errors"
	importexportMock "go-hrms/internal/importexport/mock"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/notification"
	"go-hrms/internal/realtime"
	realtimeMock "go-hrms/internal/realtime/mock"
	"go-hrms/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type importDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     importexport.ImportService
	repo        *importexportMock.MockRepository
	store       *importexportMock.MockFileStore
	employees   *importexportMock.MockEmployeeImporter
	outbox      *kafkaMock.MockOutboxRepository
	broadcaster *realtimeMock.MockBroadcaster
	notifier    *importexportMock.MockNotifier
}

func setupImportTest(t *testing.T) *importDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := &importDeps{
		sqlMock:     sqlMock,
		repo:        importexportMock.NewMockRepository(ctrl),
		store:       importexportMock.NewMockFileStore(ctrl),
		employees:   importexportMock.NewMockEmployeeImporter(ctrl),
		outbox:      kafkaMock.NewMockOutboxRepository(ctrl),
		broadcaster: realtimeMock.NewMockBroadcaster(ctrl),
		notifier:    importexportMock.NewMockNotifier(ctrl),
	}
	d.service = importexport.NewImportService(db, d.repo, d.store, d.employees, d.outbox, d.broadcaster, d.notifier)
	return d
}

func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportService_RequestEmployeeImport(t *testing.T) {
	t.Run("queues job and event", func(t *testing.T) {
		d := setupImportTest(t)
		requester := uuid.NewString()
		ctx := contextutil.WithUserID(context.Background(), requester)

		var jobID string
		d.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, name string, r io.Reader) (string, error) {
				assert.True(t, strings.HasPrefix(name, "imports/"))
				return name, nil
			})
		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job *importexport.ImportJob) error {
				jobID = job.ID.String()
				assert.Equal(t, importexport.JobStatusQueued, job.Status)
				assert.Equal(t, "staff.xlsx", job.FileName)
				require.NotNil(t, job.RequestedBy)
				assert.Equal(t, requester, job.RequestedBy.String())
				return nil
			})
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeImportRequestedTopic, event.Topic)
				var payload events.EmployeeImportRequestedEvent
				require.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, jobID, payload.JobID)
				assert.Equal(t, requester, payload.RequestedBy)
				return nil
			})
		d.sqlMock.ExpectCommit()

		resp, err := d.service.RequestEmployeeImport(ctx, "staff.xlsx", 1024, strings.NewReader("data"))

		require.NoError(t, err)
		assert.Equal(t, jobID, resp.ID)
		assert.Equal(t, importexport.JobStatusQueued, resp.Status)
		assert.Equal(t, 0, resp.Progress)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("upload removed when queueing fails", func(t *testing.T) {
		d := setupImportTest(t)

		d.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("imports/x.xlsx", nil)
		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		d.sqlMock.ExpectRollback()
		d.store.EXPECT().Remove(gomock.Any(), "imports/x.xlsx").Return(nil)

		_, err := d.service.RequestEmployeeImport(context.Background(), "staff.xlsx", 1024, strings.NewReader("data"))

		assert.EqualError(t, err, "db down")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects bad uploads", func(t *testing.T) {
		d := setupImportTest(t)
		ctx := context.Background()

		_, err := d.service.RequestEmployeeImport(ctx, "staff.csv", 10, strings.NewReader("a,b"))
		assert.ErrorIs(t, err, importexporterrors.ErrUnsupportedFile)

		_, err = d.service.RequestEmployeeImport(ctx, "staff.xlsx", importexport.MaxUploadSize+1, strings.NewReader("a"))
		assert.ErrorIs(t, err, importexporterrors.ErrFileTooLarge)

		_, err = d.service.RequestEmployeeImport(ctx, "staff.xlsx", 0, strings.NewReader(""))
		assert.ErrorIs(t, err, importexporterrors.ErrFileRequired)
	})
}

func TestImportService_GetJob(t *testing.T) {
	d := setupImportTest(t)

	_, err := d.service.GetJob(context.Background(), "nope")
	assert.ErrorIs(t, err, importexporterrors.ErrInvalidJobID)

	id := uuid.NewString()
	d.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
	_, err = d.service.GetJob(context.Background(), id)
	assert.ErrorIs(t, err, importexporterrors.ErrJobNotFound)
}

func TestImportService_ProcessImport(t *testing.T) {
	header := []any{"staff_id", "organization", "first_name_en", "gender", "status", "date_of_birth"}

	t.Run("creates, skips and records failures", func(t *testing.T) {
		d := setupImportTest(t)
		requester := uuid.New()
		job := &importexport.ImportJob{
			ID:          uuid.New(),
			Type:        importexport.JobTypeEmployees,
			FileName:    "staff.xlsx",
			FilePath:    "imports/staff.xlsx",
			Status:      importexport.JobStatusQueued,
			RequestedBy: &requester,
		}
		data := workbook(t, header,
			[]any{"0100", "SMRU", "Naw", "female", "Local ID", "1990-05-14"},
			[]any{"0001", "SMRU", "Saw", "male", "Local ID", ""},
			[]any{"0102", "SMRU", "Mu", "robot", "Local ID", ""},
			[]any{"0100", "SMRU", "Naw", "female", "Local ID", ""},
			[]any{"0103", "SMRU", "Eh", "male", "Expats", "someday"},
		)

		d.repo.EXPECT().FindByID(gomock.Any(), job.ID.String()).Return(job, nil)
		d.store.EXPECT().Open(gomock.Any(), job.FilePath).Return(io.NopCloser(bytes.NewReader(data)), nil)
		d.repo.EXPECT().Update(gomock.Any(), job).Return(nil).Times(2)
		d.broadcaster.EXPECT().
			Broadcast(gomock.Any(), realtime.ImportChannel(requester.String()), realtime.EventImportProgress, gomock.Any()).
			Return(nil)
		d.broadcaster.EXPECT().
			Broadcast(gomock.Any(), realtime.ImportChannel(requester.String()), realtime.EventImportCompleted, gomock.Any()).
			Return(nil)

		d.employees.EXPECT().StaffIDExists(gomock.Any(), "0100").Return(false, nil)
		d.employees.EXPECT().CreateImported(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "0100", req.StaffID)
				require.NotNil(t, req.DateOfBirth)
				assert.Equal(t, "1990-05-14", *req.DateOfBirth)
				return employee.EmployeeResponse{StaffID: req.StaffID}, nil
			})
		d.employees.EXPECT().StaffIDExists(gomock.Any(), "0001").Return(true, nil)

		d.notifier.EXPECT().
			NotifyUsers(gomock.Any(), []string{requester.String()}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []string, in notification.Input) error {
				assert.Equal(t, notification.TypeImportFinished, in.Type)
				return nil
			})
		d.store.EXPECT().Remove(gomock.Any(), job.FilePath).Return(nil)

		err := d.service.ProcessImport(context.Background(), job.ID.String())

		require.NoError(t, err)
		assert.Equal(t, importexport.JobStatusCompleted, job.Status)
		assert.Equal(t, 5, job.TotalRows)
		assert.Equal(t, 5, job.ProcessedRows)
		assert.Equal(t, 1, job.CreatedRows)
		assert.Equal(t, 2, job.SkippedRows)
		assert.Equal(t, 2, job.FailedRows)
		require.Len(t, job.Errors, 2)
		assert.Equal(t, 4, job.Errors[0].Row)
		assert.Contains(t, job.Errors[0].Message, "Gender")
		assert.Equal(t, 6, job.Errors[1].Row)
		assert.Contains(t, job.Errors[1].Message, "date_of_birth")
		assert.NotNil(t, job.FinishedAt)
	})

	t.Run("missing columns fail the job", func(t *testing.T) {
		d := setupImportTest(t)
		requester := uuid.New()
		job := &importexport.ImportJob{
			ID:          uuid.New(),
			FileName:    "staff.xlsx",
			FilePath:    "imports/staff.xlsx",
			Status:      importexport.JobStatusQueued,
			RequestedBy: &requester,
		}
		data := workbook(t, []any{"staff_id", "organization"}, []any{"0100", "SMRU"})

		d.repo.EXPECT().FindByID(gomock.Any(), job.ID.String()).Return(job, nil)
		d.store.EXPECT().Open(gomock.Any(), job.FilePath).Return(io.NopCloser(bytes.NewReader(data)), nil)
		d.repo.EXPECT().Update(gomock.Any(), job).Return(nil)
		d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any(), realtime.EventImportCompleted, gomock.Any()).Return(nil)
		d.notifier.EXPECT().NotifyUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := d.service.ProcessImport(context.Background(), job.ID.String())

		require.NoError(t, err)
		assert.Equal(t, importexport.JobStatusFailed, job.Status)
		assert.Contains(t, job.FailureReason, "first_name_en")
	})

	t.Run("storage error is retried", func(t *testing.T) {
		d := setupImportTest(t)
		job := &importexport.ImportJob{ID: uuid.New(), FilePath: "imports/staff.xlsx", Status: importexport.JobStatusQueued}

		d.repo.EXPECT().FindByID(gomock.Any(), job.ID.String()).Return(job, nil)
		d.store.EXPECT().Open(gomock.Any(), job.FilePath).Return(nil, errors.New("disk gone"))

		err := d.service.ProcessImport(context.Background(), job.ID.String())

		assert.ErrorContains(t, err, "disk gone")
		assert.Equal(t, importexport.JobStatusProcessing, job.Status)
	})

	t.Run("finished job is skipped", func(t *testing.T) {
		d := setupImportTest(t)
		job := &importexport.ImportJob{ID: uuid.New(), Status: importexport.JobStatusCompleted}

		d.repo.EXPECT().FindByID(gomock.Any(), job.ID.String()).Return(job, nil)

		assert.NoError(t, d.service.ProcessImport(context.Background(), job.ID.String()))
	})
}
