package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const assessCols = `id, patient_name, patient_age, dni, note_text, scale_results,
	hospital, consult_id, response_sent, created_at, updated_at`

func scanAssessment(row pgx.Row) (*ClinicalAssessment, error) {
	var a ClinicalAssessment
	err := row.Scan(&a.ID, &a.PatientName, &a.PatientAge, &a.DNI, &a.NoteText,
		&a.ScaleResults, &a.Hospital, &a.ConsultID, &a.ResponseSent,
		&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *ClinicalAssessment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clinical_assessment (id, patient_name, patient_age, dni,
			note_text, scale_results, hospital, consult_id, response_sent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.PatientName, a.PatientAge, a.DNI, a.NoteText,
		a.ScaleResults, a.Hospital, a.ConsultID, a.ResponseSent)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*ClinicalAssessment, error) {
	return scanAssessment(r.pool.QueryRow(ctx, `SELECT `+assessCols+` FROM clinical_assessment WHERE id = $1`, id))
}

func (r *repoPG) MarkResponseSent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clinical_assessment SET response_sent = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clinical_assessment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByDNI(ctx context.Context, dni string, limit, offset int) ([]*ClinicalAssessment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinical_assessment WHERE dni = $1`, dni).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+assessCols+` FROM clinical_assessment WHERE dni = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		dni, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) List(ctx context.Context, hospital string, limit, offset int) ([]*ClinicalAssessment, int, error) {
	cond := "1=1"
	args := []interface{}{}
	if hospital != "" {
		args = append(args, hospital)
		cond = "hospital = $1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinical_assessment WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM clinical_assessment WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		assessCols, cond, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*ClinicalAssessment, int, error) {
	var items []*ClinicalAssessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
