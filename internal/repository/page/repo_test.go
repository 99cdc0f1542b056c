package page

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

func TestCreate_StoresHashAndSlugIndex(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testPage(t, "p1", "About Us")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := ms.hashes["cmsdash:page:p1"]
	if h["slug"] != "about-us" || h["component_ids"] != `["c1","c2"]` || h["status"] != "draft" {
		t.Errorf("unexpected hash: %v", h)
	}
	if _, ok := h["excerpt"]; ok {
		t.Error("empty excerpt should be omitted")
	}
	if ms.strings["cmsdash:page-slug:about-us"] != "p1" {
		t.Errorf("slug index = %v", ms.strings)
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, testPage(t, "p1", "About Us"))

	err := repo.Create(ctx, testPage(t, "p2", "About  us!"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, testPage(t, "p1", "One"))

	if err := repo.Create(ctx, testPage(t, "p1", "Two")); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_HSetErrorReleasesSlug(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hsetErr = errors.New("connection lost")

	if err := repo.Create(context.Background(), testPage(t, "p1", "Home")); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := ms.strings["cmsdash:page-slug:home"]; ok {
		t.Error("slug claim not rolled back")
	}
}

func TestGet_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	want := testPage(t, "p1", "Home")
	_ = repo.Create(ctx, want)

	got, err := repo.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title() != "Home" || got.Content() != want.Content() || !slices.Equal(got.ComponentIDs(), want.ComponentIDs()) {
		t.Errorf("got %+v", got)
	}
	if !got.CreatedAt().Equal(testTime) || got.Revision() != 1 {
		t.Errorf("created/revision = %v/%d", got.CreatedAt(), got.Revision())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBySlug(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, testPage(t, "p1", "Contact"))

	got, err := repo.GetBySlug(ctx, "contact")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "p1" {
		t.Errorf("ID() = %q", got.ID())
	}
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_OrderedByCreation(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	later, _ := dompage.New("a", dompage.Draft{Title: "Later"}, testTime.Add(time.Hour))
	_ = repo.Create(ctx, later)
	_ = repo.Create(ctx, testPage(t, "z", "Earlier"))

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "z" || got[1].ID() != "a" {
		t.Errorf("order = %v", got)
	}
}

func TestUpdate_SlugChangeMovesIndex(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	prev := testPage(t, "p1", "Home")
	_ = repo.Create(ctx, prev)

	slug := "start"
	patch, _ := dompage.NewPatch(dompage.PatchFields{Slug: &slug, ComponentIDs: &[]string{}})
	next, _ := prev.Apply(patch, testTime.Add(time.Minute))

	if err := repo.Update(ctx, prev, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ms.strings["cmsdash:page-slug:home"]; ok {
		t.Error("old slug not released")
	}
	if ms.strings["cmsdash:page-slug:start"] != "p1" {
		t.Error("new slug not claimed")
	}
	if _, ok := ms.hashes["cmsdash:page:p1"]["component_ids"]; ok {
		t.Error("emptied component ids not removed")
	}
	if ms.hashes["cmsdash:page:p1"]["revision"] != "2" {
		t.Errorf("revision = %q", ms.hashes["cmsdash:page:p1"]["revision"])
	}
}

func TestUpdate_SlugTaken(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, testPage(t, "p1", "Home"))
	prev := testPage(t, "p2", "Blog")
	_ = repo.Create(ctx, prev)

	slug := "home"
	patch, _ := dompage.NewPatch(dompage.PatchFields{Slug: &slug})
	next, _ := prev.Apply(patch, testTime)

	if err := repo.Update(ctx, prev, next); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if ms.hashes["cmsdash:page:p2"]["slug"] != "blog" {
		t.Error("page written despite slug conflict")
	}
}

func TestDelete_RemovesSlug(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, testPage(t, "p1", "Home"))

	if err := repo.Delete(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Contains(ms.dels, "cmsdash:page-slug:home") || !slices.Contains(ms.dels, "cmsdash:page:p1") {
		t.Errorf("deleted keys = %v", ms.dels)
	}
	if err := repo.Delete(ctx, "p1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
