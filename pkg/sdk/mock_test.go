package cmsdash

import (
	"context"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	healthuc "github.com/kailas-cloud/cmsdash/internal/usecase/health"
)

// --- componentUseCase mock ---

type mockComponentUC struct {
	createFn func(ctx context.Context, d domcomp.Draft) (domcomp.Component, error)
	getFn    func(ctx context.Context, id string) (domcomp.Component, error)
	listFn   func(ctx context.Context, q listing.Query) (listing.Page[domcomp.Component], error)
	updateFn func(ctx context.Context, id string, p domcomp.Patch, rev int) (domcomp.Component, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockComponentUC) Create(ctx context.Context, d domcomp.Draft) (domcomp.Component, error) {
	return m.createFn(ctx, d)
}

func (m *mockComponentUC) Get(ctx context.Context, id string) (domcomp.Component, error) {
	return m.getFn(ctx, id)
}

func (m *mockComponentUC) List(ctx context.Context, q listing.Query) (listing.Page[domcomp.Component], error) {
	return m.listFn(ctx, q)
}

func (m *mockComponentUC) Update(
	ctx context.Context, id string, p domcomp.Patch, rev int,
) (domcomp.Component, error) {
	return m.updateFn(ctx, id, p, rev)
}

func (m *mockComponentUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- pageUseCase mock ---

type mockPageUC struct {
	createFn    func(ctx context.Context, d dompage.Draft) (dompage.Page, error)
	getFn       func(ctx context.Context, id string) (dompage.Page, error)
	bySlugFn    func(ctx context.Context, slug string) (dompage.Page, error)
	listFn      func(ctx context.Context, q listing.Query) (listing.Page[dompage.Page], error)
	updateFn    func(ctx context.Context, id string, p dompage.Patch, rev int) (dompage.Page, error)
	deleteFn    func(ctx context.Context, id string) error
	duplicateFn func(ctx context.Context, id string) (dompage.Page, error)
}

func (m *mockPageUC) Create(ctx context.Context, d dompage.Draft) (dompage.Page, error) {
	return m.createFn(ctx, d)
}

func (m *mockPageUC) Get(ctx context.Context, id string) (dompage.Page, error) {
	return m.getFn(ctx, id)
}

func (m *mockPageUC) GetBySlug(ctx context.Context, slug string) (dompage.Page, error) {
	return m.bySlugFn(ctx, slug)
}

func (m *mockPageUC) List(ctx context.Context, q listing.Query) (listing.Page[dompage.Page], error) {
	return m.listFn(ctx, q)
}

func (m *mockPageUC) Update(ctx context.Context, id string, p dompage.Patch, rev int) (dompage.Page, error) {
	return m.updateFn(ctx, id, p, rev)
}

func (m *mockPageUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockPageUC) Duplicate(ctx context.Context, id string) (dompage.Page, error) {
	return m.duplicateFn(ctx, id)
}

// --- statsUseCase mock ---

type mockStatsUC struct {
	getFn func(ctx context.Context) (domstats.Snapshot, error)
}

func (m *mockStatsUC) Get(ctx context.Context) (domstats.Snapshot, error) {
	return m.getFn(ctx)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
