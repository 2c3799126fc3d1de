package consult

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const consultCols = `id, patient_name, dni, cama, consult_date, narrative, response,
	status, images, ocr_text, hospital, created_at, updated_at`

func scanConsult(row pgx.Row) (*ConsultRequest, error) {
	var c ConsultRequest
	err := row.Scan(&c.ID, &c.PatientName, &c.DNI, &c.Cama, &c.ConsultDate,
		&c.Narrative, &c.Response, &c.Status, &c.Images, &c.OCRText,
		&c.Hospital, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *ConsultRequest) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consult_request (id, patient_name, dni, cama, consult_date,
			narrative, response, status, images, ocr_text, hospital)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, c.PatientName, c.DNI, c.Cama, c.ConsultDate,
		c.Narrative, c.Response, c.Status, c.Images, c.OCRText, c.Hospital)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*ConsultRequest, error) {
	return scanConsult(r.pool.QueryRow(ctx, `SELECT `+consultCols+` FROM consult_request WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, c *ConsultRequest) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE consult_request SET patient_name=$2, dni=$3, cama=$4, consult_date=$5,
			narrative=$6, response=$7, status=$8, images=$9, ocr_text=$10,
			hospital=$11, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.PatientName, c.DNI, c.Cama, c.ConsultDate,
		c.Narrative, c.Response, c.Status, c.Images, c.OCRText, c.Hospital)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM consult_request WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) DeleteByHospital(ctx context.Context, hospital string) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM consult_request WHERE hospital = $1`, hospital)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *repoPG) List(ctx context.Context, status, hospital string, limit, offset int) ([]*ConsultRequest, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if hospital != "" {
		args = append(args, hospital)
		where = append(where, fmt.Sprintf("hospital = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM consult_request WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM consult_request WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		consultCols, cond, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*ConsultRequest
	for rows.Next() {
		c, err := scanConsult(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}
