package services

import (
	"context"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"
)

func validPostJobInput() PostJobInput {
	return PostJobInput{
		Title:           "Backend Engineer",
		Description:     "Build the API",
		EmploymentType:  domain.EmploymentFullTime,
		WorkArrangement: domain.WorkRemote,
		SalaryType:      domain.SalaryMonthly,
		SalaryMin:       1000,
		SalaryMax:       2000,
		CompanyName:     "Acme",
		CompanyLocation: "Remote",
	}
}

func newJobFixture(t *testing.T) (*JobService, *fakeUserStore, *fakeJobStore, *fakeAppStore) {
	t.Helper()
	users := newFakeUserStore()
	jobs := newFakeJobStore()
	apps := newFakeAppStore()
	return NewJobService(jobs, users, apps), users, jobs, apps
}

func TestPostJobRejectsUnverifiedCreator(t *testing.T) {
	svc, users, jobs, _ := newJobFixture(t)
	users.add(domain.User{ID: 1, Email: "a@b.c", VerifiedOnchain: false})

	_, err := svc.PostJob(context.Background(), 1, validPostJobInput())
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if len(jobs.jobs) != 0 {
		t.Fatalf("no job should be created for an unverified user")
	}
}

func TestPostJobCreatesActiveListing(t *testing.T) {
	svc, users, _, _ := newJobFixture(t)
	users.add(domain.User{ID: 1, Email: "a@b.c", VerifiedOnchain: true})

	job, err := svc.PostJob(context.Background(), 1, validPostJobInput())
	if err != nil {
		t.Fatalf("post job error: %v", err)
	}
	if job.CreatorID != 1 {
		t.Fatalf("creator not recorded, got %d", job.CreatorID)
	}
	if !job.IsActive {
		t.Fatalf("new listings should default to active")
	}
}

func TestPostJobValidatesSalaryRange(t *testing.T) {
	svc, users, _, _ := newJobFixture(t)
	users.add(domain.User{ID: 1, Email: "a@b.c", VerifiedOnchain: true})

	in := validPostJobInput()
	in.SalaryMin = 3000
	in.SalaryMax = 2000
	if _, err := svc.PostJob(context.Background(), 1, in); !domain.IsValidation(err) {
		t.Fatalf("min above max should fail validation, got %v", err)
	}
}

func TestPostJobRejectsUnknownEmploymentType(t *testing.T) {
	svc, users, _, _ := newJobFixture(t)
	users.add(domain.User{ID: 1, Email: "a@b.c", VerifiedOnchain: true})

	in := validPostJobInput()
	in.EmploymentType = "gig"
	if _, err := svc.PostJob(context.Background(), 1, in); !domain.IsValidation(err) {
		t.Fatalf("unknown employment type should fail validation, got %v", err)
	}
}

func TestListJobsOnlyReturnsActive(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, Title: "Open", IsActive: true})
	jobs.add(domain.Job{ID: 2, CreatorID: 1, Title: "Closed", IsActive: false})

	out, _, err := svc.ListJobs(context.Background(), JobQuery{})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Open" {
		t.Fatalf("inactive listings must be excluded, got %+v", out)
	}
}

func TestJobsByUserIncludesInactive(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})
	jobs.add(domain.Job{ID: 2, CreatorID: 1, IsActive: false})
	jobs.add(domain.Job{ID: 3, CreatorID: 2, IsActive: true})

	out, _, err := svc.JobsByUser(context.Background(), 1, repositories.PageRequest{}, "", "")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("creator should see both active and inactive postings, got %d", len(out))
	}
}

func TestUpdateJobCreatorOnly(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, Title: "Original", SalaryMax: 100})

	title := "Hijacked"
	_, err := svc.UpdateJob(context.Background(), 2, 1, repositories.JobPatch{Title: &title})
	if !domain.IsForbidden(err) {
		t.Fatalf("non-creator update should be forbidden, got %v", err)
	}
	if jobs.jobs[1].Title != "Original" {
		t.Fatalf("job should be untouched after forbidden update")
	}
}

func TestUpdateJobValidatesMergedSalaryRange(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, SalaryMin: 1000, SalaryMax: 2000})

	// raising only the minimum above the stored maximum must fail
	newMin := int64(5000)
	_, err := svc.UpdateJob(context.Background(), 1, 1, repositories.JobPatch{SalaryMin: &newMin})
	if !domain.IsValidation(err) {
		t.Fatalf("merged range should be validated, got %v", err)
	}
}

func TestDeactivateJobCreatorOnly(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})

	if _, err := svc.DeactivateJob(context.Background(), 2, 1); !domain.IsForbidden(err) {
		t.Fatalf("non-creator deactivate should be forbidden, got %v", err)
	}
	if !jobs.jobs[1].IsActive {
		t.Fatalf("job should stay active after forbidden deactivate")
	}

	job, err := svc.DeactivateJob(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("creator deactivate error: %v", err)
	}
	if job.IsActive {
		t.Fatalf("job should be inactive after deactivate")
	}
}

func TestDeactivatedJobRejectsApplications(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})

	if _, err := svc.DeactivateJob(context.Background(), 1, 1); err != nil {
		t.Fatalf("deactivate error: %v", err)
	}
	if _, err := svc.ApplyForJob(context.Background(), 2, validApplyInput(1)); !domain.IsValidation(err) {
		t.Fatalf("deactivated job should not accept applications, got %v", err)
	}
}

func TestDeleteJobCreatorOnly(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1})

	if err := svc.DeleteJob(context.Background(), 2, 1); !domain.IsForbidden(err) {
		t.Fatalf("non-creator delete should be forbidden, got %v", err)
	}
	if err := svc.DeleteJob(context.Background(), 1, 1); err != nil {
		t.Fatalf("creator delete error: %v", err)
	}
	if len(jobs.jobs) != 0 {
		t.Fatalf("job should be gone after creator delete")
	}
}

func validApplyInput(jobID int64) ApplyInput {
	return ApplyInput{
		JobID:    jobID,
		Resume:   "https://cv.example/alice.pdf",
		FullName: "Alice",
	}
}

func TestApplyForJobHappyPath(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 9, IsActive: true})

	app, err := svc.ApplyForJob(context.Background(), 2, validApplyInput(1))
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("new applications should start pending, got %s", app.Status)
	}
	if app.ApplicantID != 2 || app.JobID != 1 {
		t.Fatalf("application bound to wrong ids: %+v", app)
	}
}

func TestApplyForJobInactiveListing(t *testing.T) {
	svc, _, jobs, _ := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 9, IsActive: false})

	if _, err := svc.ApplyForJob(context.Background(), 2, validApplyInput(1)); !domain.IsValidation(err) {
		t.Fatalf("applying to an inactive job should fail validation, got %v", err)
	}
}

func TestApplyForJobDuplicateConflict(t *testing.T) {
	svc, _, jobs, apps := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 9, IsActive: true})

	if _, err := svc.ApplyForJob(context.Background(), 2, validApplyInput(1)); err != nil {
		t.Fatalf("first apply error: %v", err)
	}
	if _, err := svc.ApplyForJob(context.Background(), 2, validApplyInput(1)); !domain.IsConflict(err) {
		t.Fatalf("second apply should conflict, got %v", err)
	}
	if len(apps.apps) != 1 {
		t.Fatalf("duplicate apply must not insert, have %d applications", len(apps.apps))
	}
}

func TestApplicationsForJobCreatorOnly(t *testing.T) {
	svc, _, jobs, apps := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})
	apps.add(domain.JobApplication{ID: 1, JobID: 1, ApplicantID: 5})

	if _, _, err := svc.ApplicationsForJob(context.Background(), 2, 1, repositories.PageRequest{}); !domain.IsForbidden(err) {
		t.Fatalf("non-creator should not see applications, got %v", err)
	}

	out, _, err := svc.ApplicationsForJob(context.Background(), 1, 1, repositories.PageRequest{})
	if err != nil {
		t.Fatalf("creator list error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 application, got %d", len(out))
	}
}

func TestUpdateApplicationStatusFlow(t *testing.T) {
	svc, _, jobs, apps := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})
	apps.add(domain.JobApplication{ID: 1, JobID: 1, ApplicantID: 5, Status: domain.ApplicationPending})

	app, err := svc.UpdateApplicationStatus(context.Background(), 1, 1, "reviewed")
	if err != nil {
		t.Fatalf("pending to reviewed error: %v", err)
	}
	if app.Status != domain.ApplicationReviewed {
		t.Fatalf("expected reviewed, got %s", app.Status)
	}

	if _, err := svc.UpdateApplicationStatus(context.Background(), 1, 1, "accepted"); err != nil {
		t.Fatalf("reviewed to accepted error: %v", err)
	}

	// accepted is terminal
	if _, err := svc.UpdateApplicationStatus(context.Background(), 1, 1, "pending"); !domain.IsValidation(err) {
		t.Fatalf("terminal status must not move, got %v", err)
	}
	if apps.apps[1].Status != domain.ApplicationAccepted {
		t.Fatalf("stored status changed after rejected transition: %s", apps.apps[1].Status)
	}
}

func TestUpdateApplicationStatusCreatorOnly(t *testing.T) {
	svc, _, jobs, apps := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})
	apps.add(domain.JobApplication{ID: 1, JobID: 1, ApplicantID: 5, Status: domain.ApplicationPending})

	if _, err := svc.UpdateApplicationStatus(context.Background(), 5, 1, "accepted"); !domain.IsForbidden(err) {
		t.Fatalf("applicant must not decide their own application, got %v", err)
	}
	if apps.apps[1].Status != domain.ApplicationPending {
		t.Fatalf("stored status changed after forbidden update: %s", apps.apps[1].Status)
	}
}

func TestUpdateApplicationStatusUnknownValue(t *testing.T) {
	svc, _, jobs, apps := newJobFixture(t)
	jobs.add(domain.Job{ID: 1, CreatorID: 1, IsActive: true})
	apps.add(domain.JobApplication{ID: 1, JobID: 1, ApplicantID: 5, Status: domain.ApplicationPending})

	if _, err := svc.UpdateApplicationStatus(context.Background(), 1, 1, "shortlisted"); !domain.IsValidation(err) {
		t.Fatalf("unknown status should fail validation, got %v", err)
	}
	if apps.apps[1].Status != domain.ApplicationPending {
		t.Fatalf("stored status changed after invalid input: %s", apps.apps[1].Status)
	}
}
