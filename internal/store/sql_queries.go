package store

const (
	saveSyncLog = `INSERT INTO sync_logs (
			id,
			date,
			device_id,
			previous_log_id,
			change_cursor,
			cases_on_device,
			dependent_cases_on_device,
			owner_ids_on_device
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getSyncLog = `SELECT id, date, device_id, previous_log_id, change_cursor,
			cases_on_device, dependent_cases_on_device, owner_ids_on_device
		FROM sync_logs
		WHERE id = $1;`

	lastSyncLogForDevice = `SELECT id, date, device_id, previous_log_id, change_cursor,
			cases_on_device, dependent_cases_on_device, owner_ids_on_device
		FROM sync_logs
		WHERE device_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1;`

	nextChangeCursor = `SELECT nextval('change_cursor_seq');`

	syncLogDeviceIDs = `SELECT DISTINCT device_id FROM sync_logs;`

	getCase = `SELECT case_id, type, name, user_id, owner_id, external_id,
			opened_on, modified_on, closed_on, closed, indices, referrals, properties
		FROM cases
		WHERE case_id = $1;`

	getCases = `SELECT case_id, type, name, user_id, owner_id, external_id,
			opened_on, modified_on, closed_on, closed, indices, referrals, properties
		FROM cases
		WHERE case_id = ANY($1);`

	openCasesByOwners = `SELECT case_id, type, name, user_id, owner_id, external_id,
			opened_on, modified_on, closed_on, closed, indices, referrals, properties
		FROM cases
		WHERE owner_id = ANY($1) AND NOT closed
		ORDER BY case_id;`

	saveCase = `INSERT INTO cases (
			case_id, type, name, user_id, owner_id, external_id,
			opened_on, modified_on, closed_on, closed, indices, referrals, properties
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (case_id) DO UPDATE SET
			type = EXCLUDED.type,
			name = EXCLUDED.name,
			user_id = EXCLUDED.user_id,
			owner_id = EXCLUDED.owner_id,
			external_id = EXCLUDED.external_id,
			opened_on = EXCLUDED.opened_on,
			modified_on = EXCLUDED.modified_on,
			closed_on = EXCLUDED.closed_on,
			closed = EXCLUDED.closed,
			indices = EXCLUDED.indices,
			referrals = EXCLUDED.referrals,
			properties = EXCLUDED.properties;`

	createDevice = `INSERT INTO devices (device_id, username, password, date_joined, user_data, owner_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING device_id, username, password, date_joined, user_data, owner_ids;`

	getDevice = `SELECT device_id, username, password, date_joined, user_data, owner_ids
		FROM devices
		WHERE device_id = $1;`
)
