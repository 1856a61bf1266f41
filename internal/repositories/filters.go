package repositories

import (
	"strings"
	"time"

	"jobboard/internal/domain"
)

// JobFilter is the sparse predicate over job listings. Nil fields impose no
// constraint.
type JobFilter struct {
	MinSalary       *int64
	MaxSalary       *int64
	Location        *string
	CompanyName     *string
	Title           *string
	EmploymentType  *domain.EmploymentType
	WorkArrangement *domain.WorkArrangement
	StartDate       *time.Time
	EndDate         *time.Time
	CreatorID       *int64
	ActiveOnly      bool
}

// UserFilter is the sparse predicate over the user directory.
type UserFilter struct {
	Name      *string
	Skill     *string
	Location  *string
	JobSeeker *bool
}

var jobSortColumns = map[string]string{
	"createdAt":   "created_at",
	"title":       "title",
	"companyName": "company_name",
	"salaryMin":   "salary_min",
	"salaryMax":   "salary_max",
}

var userSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"email":     "email",
}

// BuildJobWhere lowers the filter to a WHERE clause plus args. Text fields
// match case-insensitive substrings, salary bounds are inclusive, enums are
// exact.
func BuildJobWhere(f JobFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.ActiveOnly {
		where = append(where, "is_active = 1")
	}
	if f.MinSalary != nil {
		where = append(where, "salary_min >= ?")
		args = append(args, *f.MinSalary)
	}
	if f.MaxSalary != nil {
		where = append(where, "salary_max <= ?")
		args = append(args, *f.MaxSalary)
	}
	if f.Location != nil {
		where = append(where, "LOWER(company_location) LIKE ?")
		args = append(args, containsPattern(*f.Location))
	}
	if f.CompanyName != nil {
		where = append(where, "LOWER(company_name) LIKE ?")
		args = append(args, containsPattern(*f.CompanyName))
	}
	if f.Title != nil {
		where = append(where, "LOWER(title) LIKE ?")
		args = append(args, containsPattern(*f.Title))
	}
	if f.EmploymentType != nil {
		where = append(where, "employment_type = ?")
		args = append(args, string(*f.EmploymentType))
	}
	if f.WorkArrangement != nil {
		where = append(where, "work_arrangement = ?")
		args = append(args, string(*f.WorkArrangement))
	}
	if f.StartDate != nil {
		where = append(where, "created_at >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		where = append(where, "created_at <= ?")
		args = append(args, *f.EndDate)
	}
	if f.CreatorID != nil {
		where = append(where, "creator_id = ?")
		args = append(args, *f.CreatorID)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// BuildUserWhere lowers the directory filter. A name term containing "@" is
// matched against the email column instead of the name column.
func BuildUserWhere(f UserFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.Name != nil {
		if strings.Contains(*f.Name, "@") {
			where = append(where, "LOWER(email) LIKE ?")
		} else {
			where = append(where, "LOWER(name) LIKE ?")
		}
		args = append(args, containsPattern(*f.Name))
	}
	if f.Skill != nil {
		where = append(where, "LOWER(skills) LIKE ?")
		args = append(args, containsPattern(*f.Skill))
	}
	if f.Location != nil {
		where = append(where, "LOWER(location) LIKE ?")
		args = append(args, containsPattern(*f.Location))
	}
	if f.JobSeeker != nil {
		where = append(where, "job_seeker = ?")
		args = append(args, *f.JobSeeker)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// JobOrder resolves sortBy/sortOrder against the job sort whitelist,
// defaulting to newest first.
func JobOrder(sortBy, sortOrder string) string {
	return orderClause(jobSortColumns, sortBy, sortOrder)
}

// UserOrder resolves sortBy/sortOrder against the user sort whitelist.
func UserOrder(sortBy, sortOrder string) string {
	return orderClause(userSortColumns, sortBy, sortOrder)
}

func orderClause(whitelist map[string]string, sortBy, sortOrder string) string {
	col, ok := whitelist[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

func containsPattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
