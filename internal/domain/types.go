package domain

import "time"

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
	EmploymentFreelance  EmploymentType = "freelance"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentInternship, EmploymentTemporary, EmploymentFreelance:
		return true
	}
	return false
}

type WorkArrangement string

const (
	WorkRemote WorkArrangement = "remote"
	WorkHybrid WorkArrangement = "hybrid"
	WorkOnSite WorkArrangement = "on-site"
)

func (w WorkArrangement) Valid() bool {
	switch w {
	case WorkRemote, WorkHybrid, WorkOnSite:
		return true
	}
	return false
}

type SalaryType string

const (
	SalaryHourly     SalaryType = "hourly"
	SalaryMonthly    SalaryType = "monthly"
	SalaryYearly     SalaryType = "yearly"
	SalaryCommission SalaryType = "commission"
)

func (s SalaryType) Valid() bool {
	switch s {
	case SalaryHourly, SalaryMonthly, SalaryYearly, SalaryCommission:
		return true
	}
	return false
}

// VerificationStatus is the tri-state outcome of the on-chain identity lookup.
type VerificationStatus string

const (
	VerificationNotVerified VerificationStatus = "Not Verified"
	VerificationPending     VerificationStatus = "Pending"
	VerificationVerified    VerificationStatus = "Verified"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return st, nil
	}
	return "", ValidationError{Field: "status", Msg: "must be one of pending, reviewed, accepted, rejected"}
}

// CanTransition enforces one-directional status flow: pending may move to any
// review outcome, reviewed may still be decided, accepted and rejected are
// terminal.
func (s ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	switch s {
	case ApplicationPending:
		return to == ApplicationReviewed || to == ApplicationAccepted || to == ApplicationRejected
	case ApplicationReviewed:
		return to == ApplicationAccepted || to == ApplicationRejected
	}
	return false
}

type User struct {
	ID              int64              `json:"id"`
	Email           string             `json:"email"`
	PasswordHash    string             `json:"-"`
	Name            string             `json:"name"`
	Role            string             `json:"role"`
	AuthProvider    string             `json:"auth_provider"`
	EmailVerified   bool               `json:"email_verified"`
	Avatar          string             `json:"avatar"`
	About           string             `json:"about"`
	PhoneNumber     string             `json:"phone_number"`
	Skills          []string           `json:"skills"`
	WalletAddress   string             `json:"wallet_address,omitempty"`
	VerifiedOnchain bool               `json:"verified_onchain"`
	OnchainStatus   VerificationStatus `json:"onchain_status"`
	LinkedInProfile string             `json:"linkedin_profile"`
	XProfile        string             `json:"x_profile"`
	GithubProfile   string             `json:"github_profile"`
	JobSeeker       bool               `json:"job_seeker"`
	Location        string             `json:"location"`
	Gender          string             `json:"gender,omitempty"`
	Ethnicity       string             `json:"ethnicity,omitempty"`
	PrimaryLanguage string             `json:"primary_language,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type Job struct {
	ID                 int64           `json:"id"`
	CreatorID          int64           `json:"creator_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Requirements       string          `json:"requirements"`
	Logo               string          `json:"logo"`
	EmploymentType     EmploymentType  `json:"employment_type"`
	WorkArrangement    WorkArrangement `json:"work_arrangement"`
	SalaryType         SalaryType      `json:"salary_type"`
	SalaryMin          int64           `json:"salary_min"`
	SalaryMax          int64           `json:"salary_max"`
	CompanyName        string          `json:"company_name"`
	CompanyWebsite     string          `json:"company_website"`
	CompanyDescription string          `json:"company_description"`
	CompanyLocation    string          `json:"company_location"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type JobApplication struct {
	ID              int64             `json:"id"`
	JobID           int64             `json:"job_id"`
	ApplicantID     int64             `json:"applicant_id"`
	Resume          string            `json:"resume"`
	FullName        string            `json:"full_name"`
	ContactMethod   string            `json:"contact_method"`
	ContactHandle   string            `json:"contact_handle"`
	CoverLetter     string            `json:"cover_letter,omitempty"`
	PortfolioLink   string            `json:"portfolio_link,omitempty"`
	LinkedInProfile string            `json:"linkedin_profile,omitempty"`
	XProfile        string            `json:"x_profile,omitempty"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       time.Time         `json:"applied_at"`
}
