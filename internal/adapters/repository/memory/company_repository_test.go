package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
)

func at(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCompanyRepository_SaveAssignsID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()

	saved, err := repo.Save(ctx, company.Company{TaxID: "20-1", LegalName: "Uno", Type: company.TypeCorporate})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == "" {
		t.Fatal("Save().ID is empty, want generated ID")
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 1 {
		t.Fatalf("FindAll() len = %d, want 1", len(all))
	}

	got, ok, err := repo.FindByID(ctx, saved.ID)
	if err != nil || !ok {
		t.Fatalf("FindByID(%q) = _, %v, %v; want found", saved.ID, ok, err)
	}
	if got.LegalName != "Uno" {
		t.Errorf("FindByID().LegalName = %q, want %q", got.LegalName, "Uno")
	}
}

func TestCompanyRepository_SaveExistingIDReplacesInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := repo.Save(ctx, company.Company{ID: id, LegalName: id}); err != nil {
			t.Fatalf("Save(%q) error = %v", id, err)
		}
	}

	if _, err := repo.Save(ctx, company.Company{ID: "b", LegalName: "updated"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	all, _ := repo.FindAll(ctx)
	if len(all) != 3 {
		t.Fatalf("FindAll() len = %d, want 3", len(all))
	}
	if all[1].ID != "b" || all[1].LegalName != "updated" {
		t.Errorf("FindAll()[1] = %+v, want id b with updated name at the same position", all[1])
	}
}

func TestCompanyRepository_SaveNewIDAppends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()

	_, _ = repo.Save(ctx, company.Company{ID: "a"})
	_, _ = repo.Save(ctx, company.Company{ID: "b"})

	all, _ := repo.FindAll(ctx)
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("FindAll() = %+v, want [a b] in insertion order", all)
	}
}

func TestCompanyRepository_FindByIDMissing(t *testing.T) {
	t.Parallel()

	_, ok, err := NewCompanyRepository().FindByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("FindByID() error = %v, want nil", err)
	}
	if ok {
		t.Error("FindByID() found = true, want false")
	}
}

func TestCompanyRepository_FindAllReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()
	_, _ = repo.Save(ctx, company.Company{ID: "a", LegalName: "original"})

	all, _ := repo.FindAll(ctx)
	all[0].LegalName = "mutated"
	all = append(all, company.Company{ID: "x"})
	_ = all

	again, _ := repo.FindAll(ctx)
	if len(again) != 1 || again[0].LegalName != "original" {
		t.Errorf("stored state changed through returned slice: %+v", again)
	}
}

func TestCompanyRepository_FindByAdhesionDateBetween(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()

	_, _ = repo.Save(ctx, company.Company{ID: "e1", AdhesionDate: at(time.June, 1)})
	_, _ = repo.Save(ctx, company.Company{ID: "e2", AdhesionDate: at(time.July, 1)})
	_, _ = repo.Save(ctx, company.Company{ID: "e3", AdhesionDate: at(time.July, 15)})

	tests := []struct {
		name       string
		start, end time.Time
		want       []string
	}{
		{name: "last month", start: at(time.June, 23), end: at(time.July, 23), want: []string{"e2", "e3"}},
		{name: "start bound inclusive", start: at(time.July, 1), end: at(time.July, 2), want: []string{"e2"}},
		{name: "end bound inclusive", start: at(time.July, 2), end: at(time.July, 15), want: []string{"e3"}},
		{name: "empty range", start: at(time.January, 1), end: at(time.February, 1), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := repo.FindByAdhesionDateBetween(ctx, tt.start, tt.end)
			if err != nil {
				t.Fatalf("FindByAdhesionDateBetween() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FindByAdhesionDateBetween() len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("FindByAdhesionDateBetween()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCompanyRepository_ConcurrentSaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewCompanyRepository()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			_, _ = repo.Save(ctx, company.Company{LegalName: "concurrent"})
		})
	}
	wg.Wait()

	all, _ := repo.FindAll(ctx)
	if len(all) != n {
		t.Errorf("FindAll() len = %d, want %d", len(all), n)
	}
}
