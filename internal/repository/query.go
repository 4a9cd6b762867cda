package repository

const (
	selectJob = `SELECT
		id,
		client_id,
		client_name,
		address,
		scheduled_date,
		status,
		assigned_employee_id,
		assigned_employee_name,
		origin,
		price,
		created_at,
		updated_at
	FROM jobs`

	jobColumns = `id, client_id, client_name, address, scheduled_date, status,
		assigned_employee_id, assigned_employee_name, origin, price, created_at, updated_at`
)
