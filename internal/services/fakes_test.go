package services

import (
	"context"
	"sort"

	"jobboard/internal/domain"
	"jobboard/internal/identity"
	"jobboard/internal/repositories"
)

// In-memory doubles for the store interfaces. They enforce the same
// uniqueness rules the MySQL indexes do so service tests exercise the
// conflict paths.

type fakeUserStore struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]domain.User{}, nextID: 1}
}

func (f *fakeUserStore) add(u domain.User) domain.User {
	if u.ID == 0 {
		u.ID = f.nextID
	}
	if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserStore) Create(_ context.Context, u domain.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
	}
	return f.add(u).ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}

func (f *fakeUserStore) GetByWallet(_ context.Context, address string) (domain.User, error) {
	for _, u := range f.users {
		if u.WalletAddress == address {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id int64, p repositories.UserPatch) error {
	u, ok := f.users[id]
	if !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.About != nil {
		u.About = *p.About
	}
	if p.JobSeeker != nil {
		u.JobSeeker = *p.JobSeeker
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) SetOnchain(_ context.Context, id int64, address string, status domain.VerificationStatus, verified bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	for _, other := range f.users {
		if other.ID != id && other.WalletAddress == address {
			return domain.ConflictError{Resource: "wallet", Msg: "address already connected to another account"}
		}
	}
	u.WalletAddress = address
	u.OnchainStatus = status
	u.VerifiedOnchain = verified
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) List(_ context.Context, _ repositories.UserFilter, page repositories.PageRequest, _, _ string) ([]domain.User, repositories.Pagination, error) {
	page = page.Normalize()
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, repositories.NewPagination(int64(len(out)), page), nil
}

type fakeJobStore struct {
	jobs   map[int64]domain.Job
	nextID int64
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[int64]domain.Job{}, nextID: 1}
}

func (f *fakeJobStore) add(j domain.Job) domain.Job {
	if j.ID == 0 {
		j.ID = f.nextID
	}
	if j.ID >= f.nextID {
		f.nextID = j.ID + 1
	}
	f.jobs[j.ID] = j
	return j
}

func (f *fakeJobStore) Create(_ context.Context, j domain.Job) (int64, error) {
	return f.add(j).ID, nil
}

func (f *fakeJobStore) GetByID(_ context.Context, id int64) (domain.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return domain.Job{}, domain.NotFoundError{Resource: "job"}
	}
	return j, nil
}

func (f *fakeJobStore) Update(_ context.Context, id int64, p repositories.JobPatch) error {
	j, ok := f.jobs[id]
	if !ok {
		return domain.NotFoundError{Resource: "job"}
	}
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.SalaryMin != nil {
		j.SalaryMin = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		j.SalaryMax = *p.SalaryMax
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}
	f.jobs[id] = j
	return nil
}

func (f *fakeJobStore) Deactivate(_ context.Context, id int64) error {
	j, ok := f.jobs[id]
	if !ok {
		return domain.NotFoundError{Resource: "job"}
	}
	j.IsActive = false
	f.jobs[id] = j
	return nil
}

func (f *fakeJobStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return domain.NotFoundError{Resource: "job"}
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobStore) List(_ context.Context, filter repositories.JobFilter, page repositories.PageRequest, _, _ string) ([]domain.Job, repositories.Pagination, error) {
	page = page.Normalize()
	out := []domain.Job{}
	for _, j := range f.jobs {
		if filter.ActiveOnly && !j.IsActive {
			continue
		}
		if filter.CreatorID != nil && j.CreatorID != *filter.CreatorID {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, repositories.NewPagination(int64(len(out)), page), nil
}

type fakeAppStore struct {
	apps   map[int64]domain.JobApplication
	nextID int64
}

func newFakeAppStore() *fakeAppStore {
	return &fakeAppStore{apps: map[int64]domain.JobApplication{}, nextID: 1}
}

func (f *fakeAppStore) add(a domain.JobApplication) domain.JobApplication {
	if a.ID == 0 {
		a.ID = f.nextID
	}
	if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
	if a.Status == "" {
		a.Status = domain.ApplicationPending
	}
	f.apps[a.ID] = a
	return a
}

func (f *fakeAppStore) Create(_ context.Context, a domain.JobApplication) (int64, error) {
	for _, existing := range f.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return 0, domain.ConflictError{Resource: "application", Msg: "already applied to this job"}
		}
	}
	return f.add(a).ID, nil
}

func (f *fakeAppStore) GetByID(_ context.Context, id int64) (domain.JobApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return domain.JobApplication{}, domain.NotFoundError{Resource: "application"}
	}
	return a, nil
}

func (f *fakeAppStore) Exists(_ context.Context, jobID, applicantID int64) (bool, error) {
	for _, a := range f.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppStore) ListByJob(_ context.Context, jobID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error) {
	return f.list(page, func(a domain.JobApplication) bool { return a.JobID == jobID })
}

func (f *fakeAppStore) ListByApplicant(_ context.Context, applicantID int64, page repositories.PageRequest) ([]domain.JobApplication, repositories.Pagination, error) {
	return f.list(page, func(a domain.JobApplication) bool { return a.ApplicantID == applicantID })
}

func (f *fakeAppStore) list(page repositories.PageRequest, keep func(domain.JobApplication) bool) ([]domain.JobApplication, repositories.Pagination, error) {
	page = page.Normalize()
	out := []domain.JobApplication{}
	for _, a := range f.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, repositories.NewPagination(int64(len(out)), page), nil
}

func (f *fakeAppStore) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	a, ok := f.apps[id]
	if !ok {
		return domain.NotFoundError{Resource: "application"}
	}
	a.Status = status
	f.apps[id] = a
	return nil
}

type fakeVerifier struct {
	judgements []identity.Judgement
	err        error
	calls      int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) ([]identity.Judgement, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.judgements, nil
}
