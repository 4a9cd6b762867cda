package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/shinebright/schedule/internal/entity"
	"github.com/shinebright/schedule/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

const (
	// The sweep never touches today's jobs: work may already be in motion.
	windowOffsetDays = 1
	windowLengthDays = 30
)

type Repository interface {
	PendingJobsInRange(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error)
	ApplyJobOps(ctx context.Context, ops []entity.JobOp) error
	JobsByClient(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error)
}

type ClientsService interface {
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	ContractedClients(ctx context.Context) ([]entity.Client, error)
}

type Producer interface {
	SendScheduleSynced(ctx context.Context, clientID uuid.UUID, created, updated, deleted int)
}

type Service struct {
	repo     Repository
	clients  ClientsService
	producer Producer
	now      func() time.Time
}

func New(repo Repository, clients ClientsService, producer Producer) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		producer: producer,
		now:      time.Now,
	}
}

// SyncClientSchedule reconciles the client's rolling job window after a
// client write. prev and next are the before/after snapshots of the record;
// either may be nil on create/delete. Irrelevant field changes and deletions
// gate out without touching the store.
func (s *Service) SyncClientSchedule(ctx context.Context, prev, next *entity.Client) error {
	if next == nil {
		// Future pending jobs of a deleted client are intentionally left in
		// place as orphaned records, see DESIGN.md.
		if prev != nil {
			slog.InfoContext(ctx, "client deleted, skipping schedule sync", "client_id", prev.ID)
		}

		return nil
	}

	ctx = logger.WithClientID(ctx, next.ID)

	if !shouldSync(prev, next) {
		slog.DebugContext(ctx, "no contract-relevant change, skipping schedule sync")
		return nil
	}

	_, err := s.syncSchedule(ctx, *next, employeeChanged(prev, next))

	return err
}

// ResyncClient fetches the current client record and forces a full
// reconciliation of its window, regardless of what changed.
func (s *Service) ResyncClient(ctx context.Context, clientID uuid.UUID) (entity.SyncResult, error) {
	ctx = logger.WithClientID(ctx, clientID)

	c, err := s.clients.Client(ctx, clientID)
	if err != nil {
		return entity.SyncResult{}, fmt.Errorf("get client %s: %w", clientID, err)
	}

	return s.syncSchedule(ctx, c, true)
}

// AdvanceWindows re-syncs every client with contract days so quiet clients'
// windows keep rolling forward. Registered as a daily background job.
func (s *Service) AdvanceWindows(ctx context.Context) error {
	clients, err := s.clients.ContractedClients(ctx)
	if err != nil {
		return fmt.Errorf("list contracted clients: %w", err)
	}

	var errs []error

	for _, c := range clients {
		_, err := s.syncSchedule(logger.WithClientID(ctx, c.ID), c, true)
		if err != nil {
			errs = append(errs, fmt.Errorf("sync client %s: %w", c.ID, err))
		}
	}

	return errors.Join(errs...)
}

// ClientSchedule returns the client's jobs with dates in [from, to].
func (s *Service) ClientSchedule(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s before start %s", entity.ErrInvalidArgument,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	jobs, err := s.repo.JobsByClient(ctx, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get jobs for client %s: %w", clientID, err)
	}

	return jobs, nil
}

func (s *Service) syncSchedule(ctx context.Context, c entity.Client, employeeChanged bool) (entity.SyncResult, error) {
	from, to := syncWindow(s.now())

	pending, err := s.repo.PendingJobsInRange(ctx, c.ID, from, to)
	if err != nil {
		return entity.SyncResult{}, fmt.Errorf("get pending jobs in window: %w", err)
	}

	ops := reconcileWindow(ctx, c, from, to, indexByDate(ctx, pending), employeeChanged, s.now())
	if len(ops) == 0 {
		return entity.SyncResult{}, nil
	}

	err = s.repo.ApplyJobOps(ctx, ops)
	if err != nil {
		return entity.SyncResult{}, fmt.Errorf("apply %d job ops: %w", len(ops), err)
	}

	res := countOps(ops)

	slog.InfoContext(ctx, "schedule synchronized",
		"created", res.Created, "updated", res.Updated, "deleted", res.Deleted)

	s.producer.SendScheduleSynced(ctx, c.ID, res.Created, res.Updated, res.Deleted)

	return res, nil
}

// shouldSync reports whether a client write warrants reconciliation: only
// changes to the contract-day set or to the employee assignment do.
func shouldSync(prev, next *entity.Client) bool {
	var p entity.Client
	if prev != nil {
		p = *prev
	}

	return !p.SameContractDays(*next) || !p.SameAssignment(*next)
}

func employeeChanged(prev, next *entity.Client) bool {
	var p entity.Client
	if prev != nil {
		p = *prev
	}

	return !p.SameAssignment(*next)
}

// syncWindow returns the inclusive reconciliation bounds: from the start of
// the day after now through 30 days later, in UTC.
func syncWindow(now time.Time) (from, to time.Time) {
	now = now.UTC()
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, windowOffsetDays)

	return from, from.AddDate(0, 0, windowLengthDays)
}

// indexByDate maps pending jobs by their day-granularity date key. Two
// pending jobs on one date is a data anomaly; the last row scanned wins and
// the collision is logged.
func indexByDate(ctx context.Context, jobs []entity.Job) map[string]entity.Job {
	index := make(map[string]entity.Job, len(jobs))

	for _, j := range jobs {
		if dup, ok := index[j.DateKey()]; ok {
			slog.WarnContext(ctx, "duplicate pending jobs on one date",
				"date", j.DateKey(), "kept_job_id", j.ID, "shadowed_job_id", dup.ID)
		}

		index[j.DateKey()] = j
	}

	return index
}

// reconcileWindow walks the window dates in ascending order and decides, per
// date, whether to create, re-assign or delete the pending job there. Only
// synchronizer-owned pending jobs are ever mutated; a manually created
// pending job suppresses creation on its date but is never touched itself.
func reconcileWindow(
	ctx context.Context,
	c entity.Client,
	from, to time.Time,
	index map[string]entity.Job,
	employeeChanged bool,
	now time.Time,
) []entity.JobOp {
	var ops []entity.JobOp

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		onContract := c.HasContractDay(d)
		existing, exists := index[d.Format(time.DateOnly)]

		switch {
		case onContract && !exists:
			ops = append(ops, entity.JobOp{
				Kind: entity.JobOpCreate,
				Job:  newSyncJob(c, d, now),
			})

		case onContract && exists && employeeChanged && !sameAssignment(existing, c):
			if existing.Origin != entity.JobOriginSync {
				slog.WarnContext(ctx, "pending job on contract day is not synchronizer-owned, leaving it",
					"job_id", existing.ID, "date", existing.DateKey())
				continue
			}

			updated := existing
			updated.AssignedEmployeeID = c.AssignedEmployeeID
			updated.AssignedEmployeeName = c.AssignedEmployeeName
			updated.UpdatedAt = now

			ops = append(ops, entity.JobOp{
				Kind: entity.JobOpUpdateAssignment,
				Job:  updated,
			})

		case !onContract && exists:
			if existing.Origin != entity.JobOriginSync {
				slog.WarnContext(ctx, "pending job off contract day is not synchronizer-owned, leaving it",
					"job_id", existing.ID, "date", existing.DateKey())
				continue
			}

			ops = append(ops, entity.JobOp{
				Kind: entity.JobOpDelete,
				Job:  existing,
			})
		}
	}

	return ops
}

func newSyncJob(c entity.Client, date, now time.Time) entity.Job {
	return entity.Job{
		ID:                   uuid.Must(uuid.NewV4()),
		ClientID:             c.ID,
		ClientName:           c.Name,
		Address:              c.Address,
		ScheduledDate:        date,
		Status:               entity.JobStatusPending,
		AssignedEmployeeID:   c.AssignedEmployeeID,
		AssignedEmployeeName: c.AssignedEmployeeName,
		Origin:               entity.JobOriginSync,
		Price:                c.VisitPrice,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func sameAssignment(j entity.Job, c entity.Client) bool {
	if (j.AssignedEmployeeID == nil) != (c.AssignedEmployeeID == nil) {
		return false
	}

	if j.AssignedEmployeeID == nil {
		return j.AssignedEmployeeName == c.AssignedEmployeeName
	}

	return *j.AssignedEmployeeID == *c.AssignedEmployeeID &&
		j.AssignedEmployeeName == c.AssignedEmployeeName
}

func countOps(ops []entity.JobOp) entity.SyncResult {
	var res entity.SyncResult

	for _, op := range ops {
		switch op.Kind {
		case entity.JobOpCreate:
			res.Created++
		case entity.JobOpUpdateAssignment:
			res.Updated++
		case entity.JobOpDelete:
			res.Deleted++
		}
	}

	return res
}
