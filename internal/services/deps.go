package services

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/identity"
	"jobboard/internal/repositories"
)

// Stores are defined as interfaces so tests can substitute in-memory doubles
// for the MySQL-backed repositories.

type UserStore interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByWallet(ctx context.Context, address string) (domain.User, error)
	UpdateProfile(ctx context.Context, id int64, p repositories.UserPatch) error
	SetOnchain(ctx context.Context, id int64, address string, status domain.VerificationStatus, verified bool) error
	List(ctx context.Context, f repositories.UserFilter, page repositories.PageRequest, sortBy, sortOrder string) ([]domain.User, repositories.Pagination, error)
}

type JobStore interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Job, error)
	Update(ctx context.Context, id int64, p repositories.JobPatch) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repositories.JobFilter, page repositories.PageRequest, sortBy, sortOrder string) ([]domain.Job, repositories.Pagination, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, a domain.JobApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.JobApplication, error)
	Exists(ctx context.Context, jobID, applicantID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error)
	ListByApplicant(ctx context.Context, applicantID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

// IdentityVerifier is the outbound identity-lookup dependency.
type IdentityVerifier interface {
	Verify(ctx context.Context, address string) ([]identity.Judgement, error)
}
