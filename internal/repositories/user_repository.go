package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"jobboard/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, email, COALESCE(password_hash,''), name, role, auth_provider,
	email_verified, COALESCE(avatar,''), COALESCE(about,''), COALESCE(phone_number,''),
	COALESCE(skills,'[]'), COALESCE(wallet_address,''), verified_onchain,
	COALESCE(onchain_status,'Not Verified'), COALESCE(linkedin_profile,''),
	COALESCE(x_profile,''), COALESCE(github_profile,''), job_seeker,
	COALESCE(location,''), COALESCE(gender,''), COALESCE(ethnicity,''),
	COALESCE(primary_language,''), created_at, updated_at`

func (r UserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	skills, err := encodeSkills(u.Skills)
	if err != nil {
		return 0, err
	}

	status := u.OnchainStatus
	if status == "" {
		status = domain.VerificationNotVerified
	}

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO users
			(email, password_hash, name, role, auth_provider, email_verified,
			 avatar, about, phone_number, skills, verified_onchain, onchain_status,
			 job_seeker, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		u.Email, nullIfEmpty(u.PasswordHash), u.Name, u.Role, u.AuthProvider,
		u.EmailVerified, u.Avatar, u.About, u.PhoneNumber, skills,
		u.VerifiedOnchain, string(status), u.JobSeeker,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getOne(ctx, "WHERE id = ?", id)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, "WHERE email = ?", email)
}

// GetByWallet finds the user a wallet address is bound to, if any.
func (r UserRepository) GetByWallet(ctx context.Context, address string) (domain.User, error) {
	return r.getOne(ctx, "WHERE wallet_address = ?", address)
}

func (r UserRepository) getOne(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users `+where+` LIMIT 1`, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

// UserPatch carries the sparse profile update; nil fields are left untouched.
type UserPatch struct {
	Name            *string
	About           *string
	Avatar          *string
	PhoneNumber     *string
	Skills          *[]string
	LinkedInProfile *string
	XProfile        *string
	GithubProfile   *string
	JobSeeker       *bool
	Location        *string
	Gender          *string
	Ethnicity       *string
	PrimaryLanguage *string
}

func (r UserRepository) UpdateProfile(ctx context.Context, id int64, p UserPatch) error {
	set := []string{}
	args := []any{}

	addStr := func(col string, v *string) {
		if v != nil {
			set = append(set, col+" = ?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	addStr("name", p.Name)
	addStr("about", p.About)
	addStr("avatar", p.Avatar)
	addStr("phone_number", p.PhoneNumber)
	addStr("linkedin_profile", p.LinkedInProfile)
	addStr("x_profile", p.XProfile)
	addStr("github_profile", p.GithubProfile)
	addStr("location", p.Location)
	addStr("gender", p.Gender)
	addStr("ethnicity", p.Ethnicity)
	addStr("primary_language", p.PrimaryLanguage)

	if p.Skills != nil {
		skills, err := encodeSkills(*p.Skills)
		if err != nil {
			return err
		}
		set = append(set, "skills = ?")
		args = append(args, skills)
	}
	if p.JobSeeker != nil {
		set = append(set, "job_seeker = ?")
		args = append(args, *p.JobSeeker)
	}

	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, `UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// zero rows can also mean a no-op update; confirm existence
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SetOnchain persists the wallet binding and verification outcome.
func (r UserRepository) SetOnchain(ctx context.Context, id int64, address string, status domain.VerificationStatus, verified bool) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET wallet_address = ?, onchain_status = ?, verified_onchain = ?, updated_at = NOW()
		WHERE id = ?`,
		nullIfEmpty(address), string(status), verified, id,
	)
	if isDuplicateKey(err) {
		return domain.ConflictError{Resource: "wallet", Msg: "address already connected to another account", Err: err}
	}
	return err
}

// List returns the user directory window plus its pagination envelope.
func (r UserRepository) List(ctx context.Context, f UserFilter, page PageRequest, sortBy, sortOrder string) ([]domain.User, Pagination, error) {
	page = page.Normalize()
	where, args := BuildUserWhere(f)

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, Pagination{}, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + UserOrder(sortBy, sortOrder) + ` LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, Pagination{}, err
	}
	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, Pagination{}, err
		}
		out = append(out, u)
	}
	return out, NewPagination(total, page), rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var skills string
	var status string
	if err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.AuthProvider,
		&u.EmailVerified, &u.Avatar, &u.About, &u.PhoneNumber,
		&skills, &u.WalletAddress, &u.VerifiedOnchain,
		&status, &u.LinkedInProfile, &u.XProfile, &u.GithubProfile,
		&u.JobSeeker, &u.Location, &u.Gender, &u.Ethnicity,
		&u.PrimaryLanguage, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}
	u.OnchainStatus = domain.VerificationStatus(status)
	if err := json.Unmarshal([]byte(skills), &u.Skills); err != nil {
		u.Skills = []string{}
	}
	return u, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// isDuplicateKey recognizes MySQL error 1062, the unique-index backstop for
// the read-then-write race windows.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
