package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shinebright/schedule/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// PendingJobsInRange returns the client's pending jobs with scheduled dates
// in [from, to], ordered by date ascending.
func (r *Repository) PendingJobsInRange(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error) {
	stmt := sq.Select(
		"id",
		"client_id",
		"client_name",
		"address",
		"scheduled_date",
		"status",
		"assigned_employee_id",
		"assigned_employee_name",
		"origin",
		"price",
		"created_at",
		"updated_at",
	).From("jobs").
		Where(sq.Eq{"client_id": clientID, "status": entity.JobStatusPending}).
		Where(sq.GtOrEq{"scheduled_date": from}).
		Where(sq.LtOrEq{"scheduled_date": to}).
		OrderBy("scheduled_date ASC").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryJobs(ctx, sql, args...)
}

// JobsByClient returns all of the client's jobs, any status, with dates in
// [from, to], ordered by date ascending.
func (r *Repository) JobsByClient(ctx context.Context, clientID uuid.UUID, from, to time.Time) ([]entity.Job, error) {
	stmt := sq.Select(
		"id",
		"client_id",
		"client_name",
		"address",
		"scheduled_date",
		"status",
		"assigned_employee_id",
		"assigned_employee_name",
		"origin",
		"price",
		"created_at",
		"updated_at",
	).From("jobs").
		Where(sq.Eq{"client_id": clientID}).
		Where(sq.GtOrEq{"scheduled_date": from}).
		Where(sq.LtOrEq{"scheduled_date": to}).
		OrderBy("scheduled_date ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryJobs(ctx, sql, args...)
}

// ApplyJobOps applies all decided operations in one transaction: either the
// whole sweep lands or none of it does. Updates and deletes additionally
// guard on status = pending so a job started between the index read and the
// commit is never touched.
func (r *Repository) ApplyJobOps(ctx context.Context, ops []entity.JobOp) error {
	if len(ops) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	for _, op := range ops {
		err = applyJobOp(ctx, tx, op)
		if err != nil {
			return fmt.Errorf("apply %s op for job %s: %w", op.Kind, op.Job.ID, err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func applyJobOp(ctx context.Context, tx pgx.Tx, op entity.JobOp) error {
	switch op.Kind {
	case entity.JobOpCreate:
		const q = `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`

		_, err := tx.Exec(
			ctx,
			q,
			op.Job.ID,
			op.Job.ClientID,
			op.Job.ClientName,
			op.Job.Address,
			op.Job.ScheduledDate,
			op.Job.Status,
			op.Job.AssignedEmployeeID,
			zeronull.Text(op.Job.AssignedEmployeeName),
			op.Job.Origin,
			op.Job.Price,
			op.Job.CreatedAt,
			op.Job.UpdatedAt,
		)

		return err

	case entity.JobOpUpdateAssignment:
		const q = `
		UPDATE jobs
		SET assigned_employee_id = $1, assigned_employee_name = $2, updated_at = $3
		WHERE id = $4 AND status = $5
		`

		_, err := tx.Exec(
			ctx,
			q,
			op.Job.AssignedEmployeeID,
			zeronull.Text(op.Job.AssignedEmployeeName),
			op.Job.UpdatedAt,
			op.Job.ID,
			entity.JobStatusPending,
		)

		return err

	case entity.JobOpDelete:
		const q = `DELETE FROM jobs WHERE id = $1 AND status = $2`

		_, err := tx.Exec(ctx, q, op.Job.ID, entity.JobStatusPending)

		return err

	default:
		return fmt.Errorf("%w: unknown job op kind %q", entity.ErrInvalidArgument, op.Kind)
	}
}

// Job returns a single job by ID.
func (r *Repository) Job(ctx context.Context, id uuid.UUID) (entity.Job, error) {
	q := selectJob + " WHERE id = $1"
	return scanJob(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) queryJobs(ctx context.Context, sql string, args ...any) (jobs []entity.Job, err error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (job entity.Job, err error) {
	err = row.Scan(
		&job.ID,
		&job.ClientID,
		&job.ClientName,
		&job.Address,
		&job.ScheduledDate,
		&job.Status,
		&job.AssignedEmployeeID,
		(*zeronull.Text)(&job.AssignedEmployeeName),
		&job.Origin,
		&job.Price,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Job{}, entity.ErrNotFound
		}

		return entity.Job{}, err
	}

	return job, nil
}
