package repository

import (
	"context"
	"encoding/json"
	"time"

	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Insert(ctx context.Context, reg *registration.Registration) error {
	snapshot, err := json.Marshal(reg.Request)
	if err != nil {
		return infra.WrapRepoErr("failed to encode registration snapshot", err)
	}
	var payment []byte
	if reg.Payment != nil {
		payment, err = json.Marshal(reg.Payment)
		if err != nil {
			return infra.WrapRepoErr("failed to encode payment details", err)
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO registrations
			(id, registration_id, user_id, user_email, email, whatsapp, snapshot, payment,
			 status, payment_status, event_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		reg.ID, reg.RegistrationID, reg.UserID, reg.UserEmail,
		reg.Request.NormalizedEmail(), reg.Request.NormalizedWhatsApp(),
		snapshot, payment, string(reg.Status), string(reg.PaymentStatus),
		reg.EventCount, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert registration", err)
	}
	return nil
}

const registrationColumns = `
	id, registration_id, user_id, user_email, email, whatsapp, snapshot, payment,
	status, payment_status, event_count, checked_in, checked_in_at,
	attended_events, attended_workshops, notes, flagged, created_at, updated_at`

func (r *RegistrationRepository) FindByRegistrationID(ctx context.Context, registrationID string) (*registration.Registration, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE registration_id = $1`,
		registrationID,
	)
	reg, err := scanRegistration(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration", err)
	}
	return reg, nil
}

// DuplicateFields reports which of the normalized email / whatsapp values
// already appear on an existing registration. The fields are checked
// independently so a single row matching both still reports both.
func (r *RegistrationRepository) DuplicateFields(ctx context.Context, email, whatsapp string) ([]string, error) {
	var emailDup, whatsappDup bool
	err := r.db.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM registrations WHERE email = $1),
			EXISTS (SELECT 1 FROM registrations WHERE whatsapp = $2)`,
		email, whatsapp,
	).Scan(&emailDup, &whatsappDup)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check duplicates", err)
	}
	return duplicateFieldNames(emailDup, whatsappDup), nil
}

func duplicateFieldNames(emailDup, whatsappDup bool) []string {
	var fields []string
	if emailDup {
		fields = append(fields, "email")
	}
	if whatsappDup {
		fields = append(fields, "whatsapp")
	}
	return fields
}

func (r *RegistrationRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]*registration.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE LOWER(user_email) = $1 ORDER BY created_at DESC`,
		userEmail,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations by user", err)
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]*registration.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations", err)
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *RegistrationRepository) SetCheckedIn(ctx context.Context, registrationID string, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET checked_in = true, checked_in_at = $2, updated_at = $2
		WHERE registration_id = $1`,
		registrationID, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set check-in", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RegistrationRepository) SetAttendance(ctx context.Context, registrationID string, events, workshops []int, at time.Time) error {
	attendedEvents, err := json.Marshal(events)
	if err != nil {
		return infra.WrapRepoErr("failed to encode attendance", err)
	}
	attendedWorkshops, err := json.Marshal(workshops)
	if err != nil {
		return infra.WrapRepoErr("failed to encode attendance", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET attended_events = $2, attended_workshops = $3, updated_at = $4
		WHERE registration_id = $1`,
		registrationID, attendedEvents, attendedWorkshops, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set attendance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateSnapshot rewrites the selection snapshot; used by the admin workshop
// reassignment endpoint after the snapshot has been modified in memory.
func (r *RegistrationRepository) UpdateSnapshot(ctx context.Context, registrationID string, req registration.Request, at time.Time) error {
	snapshot, err := json.Marshal(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode registration snapshot", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET snapshot = $2, updated_at = $3
		WHERE registration_id = $1`,
		registrationID, snapshot, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update snapshot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RegistrationRepository) UpdateNotes(ctx context.Context, registrationID, notes string, flagged bool, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET notes = $2, flagged = $3, updated_at = $4
		WHERE registration_id = $1`,
		registrationID, notes, flagged, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update notes", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*registration.Registration, error) {
	var (
		reg               registration.Registration
		email             string
		whatsapp          string
		snapshot          []byte
		payment           []byte
		status            string
		paymentStatus     string
		attendedEvents    []byte
		attendedWorkshops []byte
	)
	err := row.Scan(
		&reg.ID, &reg.RegistrationID, &reg.UserID, &reg.UserEmail, &email, &whatsapp,
		&snapshot, &payment, &status, &paymentStatus, &reg.EventCount,
		&reg.CheckedIn, &reg.CheckedInAt, &attendedEvents, &attendedWorkshops,
		&reg.Notes, &reg.Flagged, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reg.Status = registration.Status(status)
	reg.PaymentStatus = registration.PaymentStatus(paymentStatus)
	if err := json.Unmarshal(snapshot, &reg.Request); err != nil {
		return nil, err
	}
	if len(payment) > 0 {
		reg.Payment = &registration.PaymentDetails{}
		if err := json.Unmarshal(payment, reg.Payment); err != nil {
			return nil, err
		}
	}
	if len(attendedEvents) > 0 {
		if err := json.Unmarshal(attendedEvents, &reg.AttendedEvents); err != nil {
			return nil, err
		}
	}
	if len(attendedWorkshops) > 0 {
		if err := json.Unmarshal(attendedWorkshops, &reg.AttendedWorkshops); err != nil {
			return nil, err
		}
	}
	return &reg, nil
}

func collectRegistrations(rows pgx.Rows) ([]*registration.Registration, error) {
	var out []*registration.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration", err)
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate registrations", err)
	}
	return out, nil
}
