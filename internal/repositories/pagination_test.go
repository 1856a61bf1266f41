package repositories

import "testing"

func TestNormalizeAppliesDefaults(t *testing.T) {
	p := PageRequest{}.Normalize()
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected page 1 limit 10, got page %d limit %d", p.Page, p.Limit)
	}
}

func TestNormalizeClampsOversizedLimit(t *testing.T) {
	p := PageRequest{Page: 1, Limit: 10_000}.Normalize()
	if p.Limit != MaxPageSize {
		t.Fatalf("limit should clamp to %d, got %d", MaxPageSize, p.Limit)
	}
}

func TestNormalizeRejectsNegativeValues(t *testing.T) {
	p := PageRequest{Page: -3, Limit: -1}.Normalize()
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("negative values should reset to defaults, got %+v", p)
	}
}

func TestOffsetMath(t *testing.T) {
	p := PageRequest{Page: 3, Limit: 20}
	if p.Offset() != 40 {
		t.Fatalf("expected offset 40, got %d", p.Offset())
	}
}

func TestNewPaginationCeilsTotalPages(t *testing.T) {
	pg := NewPagination(25, PageRequest{Page: 2, Limit: 10})
	if pg.TotalPages != 3 {
		t.Fatalf("25 rows over pages of 10 should be 3 pages, got %d", pg.TotalPages)
	}
	if pg.Total != 25 || pg.CurrentPage != 2 || pg.PageSize != 10 {
		t.Fatalf("envelope mismatch: %+v", pg)
	}
}

func TestNewPaginationExactMultiple(t *testing.T) {
	pg := NewPagination(30, PageRequest{Page: 1, Limit: 10})
	if pg.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", pg.TotalPages)
	}
}

func TestNewPaginationEmptyResult(t *testing.T) {
	pg := NewPagination(0, PageRequest{Page: 1, Limit: 10})
	if pg.TotalPages != 0 {
		t.Fatalf("zero rows should yield zero pages, got %d", pg.TotalPages)
	}
}
