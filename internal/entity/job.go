package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

func (s JobStatus) String() string {
	return string(s)
}

type JobOrigin string

const (
	// JobOriginSync marks jobs generated by the schedule synchronizer.
	// The synchronizer never deletes or overwrites jobs with any other origin.
	JobOriginSync   JobOrigin = "schedule-sync"
	JobOriginManual JobOrigin = "manual"
)

func (o JobOrigin) String() string {
	return string(o)
}

// Job is a single scheduled visit. ScheduledDate is day-granular; the time
// of day is fixed by the employee app, not by this service.
type Job struct {
	ID                   uuid.UUID
	ClientID             uuid.UUID
	ClientName           string
	Address              string
	ScheduledDate        time.Time
	Status               JobStatus
	AssignedEmployeeID   *uuid.UUID
	AssignedEmployeeName string
	Origin               JobOrigin
	Price                decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DateKey returns the day-granularity index key for the job's date.
func (j Job) DateKey() string {
	return j.ScheduledDate.Format(time.DateOnly)
}

type JobOpKind string

const (
	JobOpCreate           JobOpKind = "create"
	JobOpUpdateAssignment JobOpKind = "update_assignment"
	JobOpDelete           JobOpKind = "delete"
)

// JobOp is one decided mutation of the jobs collection. For creates Job is
// the full record to insert (ID pre-generated), for assignment updates it
// carries the target ID plus the new employee fields, for deletes only the ID
// matters.
type JobOp struct {
	Kind JobOpKind
	Job  Job
}

// SyncResult is the per-invocation operation count, reported for
// observability only.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
}

func (r SyncResult) Total() int {
	return r.Created + r.Updated + r.Deleted
}
