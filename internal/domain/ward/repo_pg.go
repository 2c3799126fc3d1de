package ward

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, cama, dni, name, age, antecedentes, enfermedad_actual,
	examen_fisico, estudios, conducta, diagnostico, pendientes, severidad,
	images, hospital, display_order, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Cama, &p.DNI, &p.Name, &p.Age, &p.Antecedentes,
		&p.EnfermedadActual, &p.ExamenFisico, &p.Estudios, &p.Conducta,
		&p.Diagnostico, &p.Pendientes, &p.Severidad, &p.Images, &p.Hospital,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

// isUniqueViolation reports whether err is the (dni, hospital) unique index
// firing (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ward_patient (id, cama, dni, name, age, antecedentes,
			enfermedad_actual, examen_fisico, estudios, conducta, diagnostico,
			pendientes, severidad, images, hospital, display_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		p.ID, p.Cama, p.DNI, p.Name, p.Age, p.Antecedentes,
		p.EnfermedadActual, p.ExamenFisico, p.Estudios, p.Conducta,
		p.Diagnostico, p.Pendientes, p.Severidad, p.Images, p.Hospital,
		p.DisplayOrder)
	if isUniqueViolation(err) {
		return ErrDuplicateDNI
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM ward_patient WHERE id = $1`, id))
}

func (r *repoPG) FindByDNIAndHospital(ctx context.Context, dni, hospital string) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM ward_patient WHERE dni = $1 AND hospital = $2`, dni, hospital)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ward_patient SET cama=$2, dni=$3, name=$4, age=$5, antecedentes=$6,
			enfermedad_actual=$7, examen_fisico=$8, estudios=$9, conducta=$10,
			diagnostico=$11, pendientes=$12, severidad=$13, images=$14,
			hospital=$15, display_order=$16, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Cama, p.DNI, p.Name, p.Age, p.Antecedentes,
		p.EnfermedadActual, p.ExamenFisico, p.Estudios, p.Conducta,
		p.Diagnostico, p.Pendientes, p.Severidad, p.Images, p.Hospital,
		p.DisplayOrder)
	if isUniqueViolation(err) {
		return ErrDuplicateDNI
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) UpdatePendientes(ctx context.Context, id uuid.UUID, pendientes string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ward_patient SET pendientes = $2, updated_at = NOW() WHERE id = $1`, id, pendientes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ward_patient WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM ward_patient ORDER BY hospital, display_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) ListByHospital(ctx context.Context, hospital string, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ward_patient WHERE hospital = $1`, hospital).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM ward_patient WHERE hospital = $1 ORDER BY display_order, created_at LIMIT $2 OFFSET $3`,
		hospital, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
