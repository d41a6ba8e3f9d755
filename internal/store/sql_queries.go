package store

const (
	insertMember = `INSERT INTO members (name, phone, email, notes, created_at, updated_at, sync_state)
		VALUES (?, ?, ?, ?, ?, ?, 'pending');`

	updateMember = `UPDATE members
		SET name = ?, phone = ?, email = ?, notes = ?, updated_at = ?, sync_state = 'pending'
		WHERE id = ? AND deleted_at IS NULL;`

	softDeleteMember = `UPDATE members
		SET deleted_at = ?, updated_at = ?, sync_state = 'pending'
		WHERE id = ? AND deleted_at IS NULL;`

	getMember = `SELECT id, name, phone, email, notes, created_at, updated_at, sync_state, deleted_at
		FROM members
		WHERE id = ? AND deleted_at IS NULL;`

	listMembers = `SELECT id, name, phone, email, notes, created_at, updated_at, sync_state, deleted_at
		FROM members
		WHERE deleted_at IS NULL
		ORDER BY name ASC;`

	insertPayment = `INSERT INTO payments (member_id, subscription_id, amount, method, paid_at, created_at, updated_at, sync_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'pending');`

	softDeletePayment = `UPDATE payments
		SET deleted_at = ?, updated_at = ?, sync_state = 'pending'
		WHERE id = ? AND deleted_at IS NULL;`

	listPaymentsByMember = `SELECT id, member_id, subscription_id, amount, method, paid_at, created_at, updated_at, sync_state, deleted_at
		FROM payments
		WHERE member_id = ? AND deleted_at IS NULL
		ORDER BY paid_at DESC;`
)
