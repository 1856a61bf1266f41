package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"jobboard/internal/domain"
)

type JobRepository struct {
	DB *sql.DB
}

const jobColumns = `id, creator_id, title, description, COALESCE(requirements,''),
	COALESCE(logo,''), employment_type, work_arrangement, salary_type,
	COALESCE(salary_min,0), COALESCE(salary_max,0), company_name,
	COALESCE(company_website,''), COALESCE(company_description,''),
	company_location, is_active, created_at, updated_at`

func (r JobRepository) Create(ctx context.Context, j domain.Job) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO jobs
			(creator_id, title, description, requirements, logo,
			 employment_type, work_arrangement, salary_type, salary_min, salary_max,
			 company_name, company_website, company_description, company_location,
			 is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		j.CreatorID, j.Title, j.Description, j.Requirements, j.Logo,
		string(j.EmploymentType), string(j.WorkArrangement), string(j.SalaryType),
		j.SalaryMin, j.SalaryMax,
		j.CompanyName, j.CompanyWebsite, j.CompanyDescription, j.CompanyLocation,
		j.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r JobRepository) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ? LIMIT 1`, id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Job{}, domain.NotFoundError{Resource: "job", Err: err}
	}
	return j, err
}

// JobPatch carries the sparse job update; nil fields are left untouched.
type JobPatch struct {
	Title              *string
	Description        *string
	Requirements       *string
	Logo               *string
	EmploymentType     *domain.EmploymentType
	WorkArrangement    *domain.WorkArrangement
	SalaryType         *domain.SalaryType
	SalaryMin          *int64
	SalaryMax          *int64
	CompanyName        *string
	CompanyWebsite     *string
	CompanyDescription *string
	CompanyLocation    *string
	IsActive           *bool
}

func (r JobRepository) Update(ctx context.Context, id int64, p JobPatch) error {
	set := []string{}
	args := []any{}

	addStr := func(col string, v *string) {
		if v != nil {
			set = append(set, col+" = ?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	addStr("title", p.Title)
	addStr("description", p.Description)
	addStr("requirements", p.Requirements)
	addStr("logo", p.Logo)
	addStr("company_name", p.CompanyName)
	addStr("company_website", p.CompanyWebsite)
	addStr("company_description", p.CompanyDescription)
	addStr("company_location", p.CompanyLocation)

	if p.EmploymentType != nil {
		set = append(set, "employment_type = ?")
		args = append(args, string(*p.EmploymentType))
	}
	if p.WorkArrangement != nil {
		set = append(set, "work_arrangement = ?")
		args = append(args, string(*p.WorkArrangement))
	}
	if p.SalaryType != nil {
		set = append(set, "salary_type = ?")
		args = append(args, string(*p.SalaryType))
	}
	if p.SalaryMin != nil {
		set = append(set, "salary_min = ?")
		args = append(args, *p.SalaryMin)
	}
	if p.SalaryMax != nil {
		set = append(set, "salary_max = ?")
		args = append(args, *p.SalaryMax)
	}
	if p.IsActive != nil {
		set = append(set, "is_active = ?")
		args = append(args, *p.IsActive)
	}

	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	_, err := r.DB.ExecContext(ctx, `UPDATE jobs SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	return err
}

// Deactivate soft-deletes a posting by clearing its active flag.
func (r JobRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE jobs SET is_active = 0, updated_at = NOW() WHERE id = ?`, id)
	return err
}

// Delete removes the posting permanently. Applications referencing it are
// left in place; no cascade policy is defined.
func (r JobRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "job"}
	}
	return nil
}

// List runs the count plus the sorted, offset-limited fetch for the filter.
func (r JobRepository) List(ctx context.Context, f JobFilter, page PageRequest, sortBy, sortOrder string) ([]domain.Job, Pagination, error) {
	page = page.Normalize()
	where, args := BuildJobWhere(f)

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}

	query := `SELECT ` + jobColumns + ` FROM jobs` + where + JobOrder(sortBy, sortOrder) + ` LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, Pagination{}, err
		}
		out = append(out, j)
	}
	return out, NewPagination(total, page), rows.Err()
}

func scanJob(row rowScanner) (domain.Job, error) {
	var j domain.Job
	var et, wa, st string
	if err := row.Scan(
		&j.ID, &j.CreatorID, &j.Title, &j.Description, &j.Requirements,
		&j.Logo, &et, &wa, &st,
		&j.SalaryMin, &j.SalaryMax, &j.CompanyName,
		&j.CompanyWebsite, &j.CompanyDescription,
		&j.CompanyLocation, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return domain.Job{}, err
	}
	j.EmploymentType = domain.EmploymentType(et)
	j.WorkArrangement = domain.WorkArrangement(wa)
	j.SalaryType = domain.SalaryType(st)
	return j, nil
}
