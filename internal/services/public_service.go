package services

import (
	"context"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"
)

// PublicService backs the unauthenticated discovery endpoints.
type PublicService struct {
	jobs  JobStore
	users UserStore
}

func NewPublicService(jobs JobStore, users UserStore) *PublicService {
	return &PublicService{jobs: jobs, users: users}
}

type PublicJobsQuery struct {
	CompanyName *string
	Title       *string
	Page        repositories.PageRequest
	SortBy      string
	SortOrder   string
}

func (s *PublicService) Jobs(ctx context.Context, q PublicJobsQuery) ([]domain.Job, repositories.Pagination, error) {
	f := repositories.JobFilter{
		CompanyName: q.CompanyName,
		Title:       q.Title,
		ActiveOnly:  true,
	}
	return s.jobs.List(ctx, f, q.Page, q.SortBy, q.SortOrder)
}

type PublicUsersQuery struct {
	Name      *string
	Skill     *string
	JobSeeker *bool
	Page      repositories.PageRequest
	SortBy    string
	SortOrder string
}

func (s *PublicService) Users(ctx context.Context, q PublicUsersQuery) ([]domain.User, repositories.Pagination, error) {
	f := repositories.UserFilter{
		Name:      q.Name,
		Skill:     q.Skill,
		JobSeeker: q.JobSeeker,
	}
	return s.users.List(ctx, f, q.Page, q.SortBy, q.SortOrder)
}
