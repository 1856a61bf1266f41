package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

// GET /api/job/get-applications-for-job/:jobId/export
// Exports the application list as a PDF for offline review; creator only.
func (h *JobHandler) ExportApplications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "jobId")
	if !ok {
		Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.svc.GetJob(c.Request.Context(), jobID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// export fetches up to one full window
	apps, pagination, err := h.svc.ApplicationsForJob(c.Request.Context(), userID, jobID,
		repositories.PageRequest{Page: 1, Limit: repositories.MaxPageSize})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdfBytes, err := buildApplicationsPDF(job, apps, pagination.Total)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "failed to build applications PDF")
		return
	}

	filename := fmt.Sprintf("applications-job-%d.pdf", jobID)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func buildApplicationsPDF(job domain.Job, apps []domain.JobApplication, total int64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Job Applications", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "APPLICATIONS")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Job      : %s", job.Title)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Company  : %s (%s)", job.CompanyName, job.CompanyLocation)))
	pdf.Ln(6)
	if int64(len(apps)) < total {
		pdf.Cell(0, 6, fmt.Sprintf("Total    : %d (showing first %d)", total, len(apps)))
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Total    : %d", total))
	}
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Exported : %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Applicant", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Contact", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Applied", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range apps {
		contact := a.ContactHandle
		if a.ContactMethod != "" {
			contact = a.ContactMethod + ": " + contact
		}
		pdf.CellFormat(60, 7, tr(truncate(a.FullName, 34)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(truncate(contact, 28)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, string(a.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, a.AppliedAt.Format("2006-01-02"), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate shortens s to at most n runes; cutting mid-rune would corrupt
// multi-byte names in the document.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
