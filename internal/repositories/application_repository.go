package repositories

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/domain"
)

type ApplicationRepository struct {
	DB *sql.DB
}

const applicationColumns = `id, job_id, applicant_id, resume, full_name,
	contact_method, contact_handle, COALESCE(cover_letter,''),
	COALESCE(portfolio_link,''), COALESCE(linkedin_profile,''),
	COALESCE(x_profile,''), status, applied_at`

func (r ApplicationRepository) Create(ctx context.Context, a domain.JobApplication) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO job_applications
			(job_id, applicant_id, resume, full_name, contact_method, contact_handle,
			 cover_letter, portfolio_link, linkedin_profile, x_profile, status, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		a.JobID, a.ApplicantID, a.Resume, a.FullName, a.ContactMethod, a.ContactHandle,
		a.CoverLetter, a.PortfolioLink, a.LinkedInProfile, a.XProfile,
		string(domain.ApplicationPending),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "application", Msg: "already applied to this job", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r ApplicationRepository) GetByID(ctx context.Context, id int64) (domain.JobApplication, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = ? LIMIT 1`, id)
	a, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.JobApplication{}, domain.NotFoundError{Resource: "application", Err: err}
	}
	return a, err
}

// Exists reports whether the applicant already applied to the job.
func (r ApplicationRepository) Exists(ctx context.Context, jobID, applicantID int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		`SELECT 1 FROM job_applications WHERE job_id = ? AND applicant_id = ? LIMIT 1`,
		jobID, applicantID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r ApplicationRepository) ListByJob(ctx context.Context, jobID int64, page PageRequest) ([]domain.JobApplication, Pagination, error) {
	return r.list(ctx, "WHERE job_id = ?", jobID, page)
}

func (r ApplicationRepository) ListByApplicant(ctx context.Context, applicantID int64, page PageRequest) ([]domain.JobApplication, Pagination, error) {
	return r.list(ctx, "WHERE applicant_id = ?", applicantID, page)
}

func (r ApplicationRepository) list(ctx context.Context, where string, arg any, page PageRequest) ([]domain.JobApplication, Pagination, error) {
	page = page.Normalize()

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_applications `+where, arg).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM job_applications `+where+` ORDER BY applied_at DESC LIMIT ? OFFSET ?`,
		arg, page.Limit, page.Offset(),
	)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	out := []domain.JobApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, Pagination{}, err
		}
		out = append(out, a)
	}
	return out, NewPagination(total, page), rows.Err()
}

func (r ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE job_applications SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "application"}
	}
	return nil
}

func scanApplication(row rowScanner) (domain.JobApplication, error) {
	var a domain.JobApplication
	var status string
	if err := row.Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.FullName,
		&a.ContactMethod, &a.ContactHandle, &a.CoverLetter,
		&a.PortfolioLink, &a.LinkedInProfile, &a.XProfile,
		&status, &a.AppliedAt,
	); err != nil {
		return domain.JobApplication{}, err
	}
	a.Status = domain.ApplicationStatus(status)
	return a, nil
}
