package pets_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	mem "petster/internal/adapters/storage/memory"
	"petster/internal/domain/pets"
)

type fakeViews map[string]int

func (f fakeViews) CountByPets(_ context.Context, ids []string) (map[string]int, error) {
	out := map[string]int{}
	for _, id := range ids {
		if n, ok := f[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type recordingCleaner struct {
	deleted []string
	err     error
}

func (c *recordingCleaner) DeleteByPet(_ context.Context, petID string) error {
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, petID)
	return nil
}

func validInput(name string) pets.CreateInput {
	return pets.CreateInput{Name: name, Category: "Dog", Gender: "Male", Size: "Small"}
}

func TestCreate_ValidatesInput(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", validInput("Milo")); !errors.Is(err, pets.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without volunteer, got %v", err)
	}

	bad := validInput("Milo")
	bad.Category = "Bird"
	if _, err := svc.Create(ctx, "vol-1", bad); !errors.Is(err, pets.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown category, got %v", err)
	}

	p, err := svc.Create(ctx, "volunteers/vol-1", validInput("  Milo "))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.VolunteerID != "vol-1" || p.Name != "Milo" || p.Adopted {
		t.Fatalf("unexpected pet: %+v", p)
	}
}

func TestUpdate_FreeAdoptionClearsFee(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{})
	ctx := context.Background()

	in := validInput("Luna")
	fee := int64(300000)
	in.AdoptionFee = &fee
	p, err := svc.Create(ctx, "vol-1", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Luna II"
	got, err := svc.Update(ctx, p.ID, "vol-1", pets.UpdateInput{Name: &name, FreeAdoption: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AdoptionFee != nil || got.Name != "Luna II" {
		t.Fatalf("expected free adoption and new name, got %+v", got)
	}

	if _, err := svc.Update(ctx, "missing", "vol-1", pets.UpdateInput{}); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetAdopted_Messages(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{})
	ctx := context.Background()
	p, _ := svc.Create(ctx, "vol-1", validInput("Rex"))

	msg, err := svc.SetAdopted(ctx, p.ID, true)
	if err != nil || msg != "Pet is now marked as adopted." {
		t.Fatalf("unexpected: %q %v", msg, err)
	}
	msg, err = svc.SetAdopted(ctx, p.ID, false)
	if err != nil || msg != "Pet is now marked as available." {
		t.Fatalf("unexpected: %q %v", msg, err)
	}
}

func TestDelete_RunsCleanersFirst(t *testing.T) {
	repo := mem.NewPetRepo()
	cleaner := &recordingCleaner{}
	svc := pets.NewService(repo, pets.Deps{Cleaners: []pets.Cleaner{cleaner}})
	ctx := context.Background()
	p, _ := svc.Create(ctx, "vol-1", validInput("Rex"))

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(cleaner.deleted) != 1 || cleaner.deleted[0] != p.ID {
		t.Fatalf("cleaner not called: %+v", cleaner.deleted)
	}
	if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pet gone, got %v", err)
	}
}

func TestDelete_CleanerFailureKeepsPet(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{})
	svc.AddCleaners(&recordingCleaner{err: errors.New("views down")})
	ctx := context.Background()
	p, _ := svc.Create(ctx, "vol-1", validInput("Rex"))

	if err := svc.Delete(ctx, p.ID); err == nil {
		t.Fatalf("expected error")
	}
	if ok, _ := svc.Exists(ctx, p.ID); !ok {
		t.Fatalf("pet must survive a failed cleanup")
	}
}

func TestListByVolunteer_PaginatesIncludingAdopted(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{Views: fakeViews{}})
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		p, err := svc.Create(ctx, "vol-1", validInput(fmt.Sprintf("Pet %d", i)))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if i == 0 {
			_, _ = svc.SetAdopted(ctx, p.ID, true)
		}
	}
	_, _ = svc.Create(ctx, "vol-2", validInput("Other"))

	seen := map[string]bool{}
	cursor := ""
	pages := 0
	for {
		page, err := svc.ListByVolunteer(ctx, "vol-1", 3, cursor)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		pages++
		if page.TotalPages != 3 {
			t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
		}
		for _, p := range page.Items {
			if seen[p.ID] {
				t.Fatalf("duplicate across pages: %s", p.ID)
			}
			seen[p.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	if len(seen) != 7 || pages != 3 {
		t.Fatalf("expected 7 pets over 3 pages, got %d over %d", len(seen), pages)
	}

	if _, err := svc.ListByVolunteer(ctx, "vol-1", 0, ""); !errors.Is(err, pets.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for limit 0, got %v", err)
	}
}

func TestDashboard_Totals(t *testing.T) {
	views := fakeViews{}
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{Views: views})
	ctx := context.Background()

	a, _ := svc.Create(ctx, "vol-1", validInput("A"))
	b, _ := svc.Create(ctx, "vol-1", validInput("B"))
	_, _ = svc.Create(ctx, "vol-1", validInput("C"))
	_, _ = svc.SetAdopted(ctx, b.ID, true)
	views[a.ID] = 3
	views[b.ID] = 1

	d, err := svc.Dashboard(ctx, "vol-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.TotalPets != 3 || d.TotalAdoptedPets != 1 || d.TotalPetsViewed != 4 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestGetMany_PreservesOrderAcrossChunks(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo(), pets.Deps{})
	ctx := context.Background()

	var ids []string
	for i := 0; i < 23; i++ {
		p, _ := svc.Create(ctx, "vol-1", validInput(fmt.Sprintf("P%d", i)))
		ids = append(ids, p.ID)
	}
	ids = append(ids, "missing")

	got, err := svc.GetMany(ctx, ids)
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(got) != 23 {
		t.Fatalf("expected 23, got %d", len(got))
	}
	for i, p := range got {
		if p.ID != ids[i] {
			t.Fatalf("order broken at %d", i)
		}
	}
}
