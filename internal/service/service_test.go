package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shinebright/schedule/internal/entity"
	"github.com/shinebright/schedule/internal/mocks"
	"github.com/shinebright/schedule/internal/service"
)

func newTestClient() entity.Client {
	empID := uuid.Must(uuid.NewV4())

	return entity.Client{
		ID:                   uuid.Must(uuid.NewV4()),
		Name:                 "Sparkle Homes LLC",
		Address:              "12 Main St",
		ContractDays:         []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		AssignedEmployeeID:   &empID,
		AssignedEmployeeName: "Dana Reyes",
	}
}

func TestService_SyncClientSchedule_GateSkipsIrrelevantChange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	prev := newTestClient()
	next := prev
	next.Name = "Sparkle Homes Inc"
	next.Address = "14 Main St"

	// No repository or producer expectations: the gate must prevent any
	// store access.
	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, &next)
	require.NoError(t, err)
}

func TestService_SyncClientSchedule_GateSkipsDeletion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	prev := newTestClient()

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, nil)
	require.NoError(t, err)
}

func TestService_SyncClientSchedule_ContractExpansion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	next := newTestClient()
	prev := next
	prev.ContractDays = nil

	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	var applied []entity.JobOp

	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []entity.JobOp) error {
			applied = ops
			return nil
		})

	producer.EXPECT().SendScheduleSynced(gomock.Any(), next.ID, gomock.Any(), 0, 0)

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, &next)
	require.NoError(t, err)

	// One pending job per contracted weekday in the 31-date window starting
	// tomorrow, none elsewhere.
	expected := 0
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	seen := map[string]bool{}

	for i := 0; i <= 30; i++ {
		d := start.AddDate(0, 0, i)
		if next.HasContractDay(d) {
			expected++
		}
	}

	require.Len(t, applied, expected)

	for _, op := range applied {
		require.Equal(t, entity.JobOpCreate, op.Kind)
		require.True(t, next.HasContractDay(op.Job.ScheduledDate))
		require.Equal(t, entity.JobStatusPending, op.Job.Status)
		require.Equal(t, entity.JobOriginSync, op.Job.Origin)
		require.False(t, op.Job.ScheduledDate.Before(start))
		require.False(t, op.Job.ScheduledDate.After(start.AddDate(0, 0, 30)))
		require.False(t, seen[op.Job.DateKey()])

		seen[op.Job.DateKey()] = true
	}
}

func TestService_SyncClientSchedule_ContractContraction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	prev := newTestClient()
	prev.ContractDays = []time.Weekday{time.Monday}
	next := prev
	next.ContractDays = nil

	var pending []entity.Job

	var from, to time.Time

	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, f, t time.Time) ([]entity.Job, error) {
			from, to = f, t

			for d := f; !d.After(t); d = d.AddDate(0, 0, 1) {
				if d.Weekday() != time.Monday {
					continue
				}

				pending = append(pending, entity.Job{
					ID:            uuid.Must(uuid.NewV4()),
					ClientID:      next.ID,
					ScheduledDate: d,
					Status:        entity.JobStatusPending,
					Origin:        entity.JobOriginSync,
				})
			}

			return pending, nil
		})

	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []entity.JobOp) error {
			require.Len(t, ops, len(pending))

			for i, op := range ops {
				require.Equal(t, entity.JobOpDelete, op.Kind)
				require.Equal(t, pending[i].ID, op.Job.ID)
			}

			return nil
		})

	producer.EXPECT().SendScheduleSynced(gomock.Any(), next.ID, 0, 0, gomock.Any())

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, &next)
	require.NoError(t, err)
	require.False(t, to.Before(from))
}

func TestService_SyncClientSchedule_EmployeeReassignment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	prev := newTestClient()
	next := prev

	newEmpID := uuid.Must(uuid.NewV4())
	next.AssignedEmployeeID = &newEmpID
	next.AssignedEmployeeName = "Lee Park"

	var pending []entity.Job

	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, f, t time.Time) ([]entity.Job, error) {
			for d := f; !d.After(t); d = d.AddDate(0, 0, 1) {
				if !next.HasContractDay(d) {
					continue
				}

				pending = append(pending, entity.Job{
					ID:                   uuid.Must(uuid.NewV4()),
					ClientID:             next.ID,
					ScheduledDate:        d,
					Status:               entity.JobStatusPending,
					Origin:               entity.JobOriginSync,
					AssignedEmployeeID:   prev.AssignedEmployeeID,
					AssignedEmployeeName: prev.AssignedEmployeeName,
				})
			}

			return pending, nil
		})

	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []entity.JobOp) error {
			require.Len(t, ops, len(pending))

			for _, op := range ops {
				require.Equal(t, entity.JobOpUpdateAssignment, op.Kind)
				require.Equal(t, &newEmpID, op.Job.AssignedEmployeeID)
				require.Equal(t, "Lee Park", op.Job.AssignedEmployeeName)
			}

			return nil
		})

	producer.EXPECT().SendScheduleSynced(gomock.Any(), next.ID, 0, gomock.Any(), 0)

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, &next)
	require.NoError(t, err)
}

func TestService_SyncClientSchedule_SecondRunIsNoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	prev := newTestClient()
	next := prev

	newEmpID := uuid.Must(uuid.NewV4())
	next.AssignedEmployeeID = &newEmpID
	next.AssignedEmployeeName = "Lee Park"

	// The window already reflects next: every contract day has a pending job
	// carrying the new assignment. No ApplyJobOps expectation: a redundant
	// sweep must not write.
	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, f, t time.Time) ([]entity.Job, error) {
			var jobs []entity.Job

			for d := f; !d.After(t); d = d.AddDate(0, 0, 1) {
				if !next.HasContractDay(d) {
					continue
				}

				jobs = append(jobs, entity.Job{
					ID:                   uuid.Must(uuid.NewV4()),
					ClientID:             next.ID,
					ScheduledDate:        d,
					Status:               entity.JobStatusPending,
					Origin:               entity.JobOriginSync,
					AssignedEmployeeID:   &newEmpID,
					AssignedEmployeeName: "Lee Park",
				})
			}

			return jobs, nil
		})

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), &prev, &next)
	require.NoError(t, err)
}

func TestService_SyncClientSchedule_QueryFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	next := newTestClient()

	wantErr := errors.New("connection refused")

	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		Return(nil, wantErr)

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), nil, &next)
	require.ErrorIs(t, err, wantErr)
}

func TestService_SyncClientSchedule_CommitFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	next := newTestClient()

	wantErr := errors.New("tx aborted")

	repo.EXPECT().PendingJobsInRange(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).Return(wantErr)

	s := service.New(repo, nil, producer)

	err := s.SyncClientSchedule(context.Background(), nil, &next)
	require.ErrorIs(t, err, wantErr)
}

func TestService_ResyncClient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clients := mocks.NewMockClientsService(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	c := newTestClient()

	clients.EXPECT().Client(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().PendingJobsInRange(gomock.Any(), c.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendScheduleSynced(gomock.Any(), c.ID, gomock.Any(), 0, 0)

	s := service.New(repo, clients, producer)

	res, err := s.ResyncClient(context.Background(), c.ID)
	require.NoError(t, err)
	require.Positive(t, res.Created)
	require.Zero(t, res.Updated)
	require.Zero(t, res.Deleted)
}

func TestService_ResyncClient_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clients := mocks.NewMockClientsService(ctrl)

	clientID := uuid.Must(uuid.NewV4())

	clients.EXPECT().Client(gomock.Any(), clientID).Return(entity.Client{}, entity.ErrNotFound)

	s := service.New(repo, clients, nil)

	_, err := s.ResyncClient(context.Background(), clientID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_AdvanceWindows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clients := mocks.NewMockClientsService(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	first := newTestClient()
	second := newTestClient()

	clients.EXPECT().ContractedClients(gomock.Any()).Return([]entity.Client{first, second}, nil)

	repo.EXPECT().PendingJobsInRange(gomock.Any(), first.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().PendingJobsInRange(gomock.Any(), second.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	producer.EXPECT().SendScheduleSynced(gomock.Any(), gomock.Any(), gomock.Any(), 0, 0).Times(2)

	s := service.New(repo, clients, producer)

	err := s.AdvanceWindows(context.Background())
	require.NoError(t, err)
}

func TestService_AdvanceWindows_CollectsErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	clients := mocks.NewMockClientsService(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	first := newTestClient()
	second := newTestClient()

	wantErr := errors.New("window query failed")

	clients.EXPECT().ContractedClients(gomock.Any()).Return([]entity.Client{first, second}, nil)

	repo.EXPECT().PendingJobsInRange(gomock.Any(), first.ID, gomock.Any(), gomock.Any()).
		Return(nil, wantErr)
	repo.EXPECT().PendingJobsInRange(gomock.Any(), second.ID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().ApplyJobOps(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().SendScheduleSynced(gomock.Any(), second.ID, gomock.Any(), 0, 0)

	s := service.New(repo, clients, producer)

	err := s.AdvanceWindows(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestService_ClientSchedule_InvalidRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)

	s := service.New(repo, nil, nil)

	now := time.Now()

	_, err := s.ClientSchedule(context.Background(), uuid.Must(uuid.NewV4()), now, now.AddDate(0, 0, -1))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
