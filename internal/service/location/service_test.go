package location

import (
	"context"
	"testing"

	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocationRepo struct {
	locations map[string]location.Location
	counts    map[string]location.DependentCounts
	deleted   []string
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	f.locations[loc.ID] = loc
	return loc, nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (location.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return location.Location{}, location.ErrLocationNotFound
	}
	return loc, nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, loc location.Location) error {
	f.locations[loc.ID] = loc
	return nil
}

func (f *fakeLocationRepo) List(ctx context.Context, activeOnly bool) ([]location.Location, error) {
	var out []location.Location
	for _, loc := range f.locations {
		if activeOnly && !loc.Active {
			continue
		}
		out = append(out, loc)
	}
	return out, nil
}

func (f *fakeLocationRepo) SetActive(ctx context.Context, id string, active bool) error {
	loc := f.locations[id]
	loc.Active = active
	f.locations[id] = loc
	return nil
}

func (f *fakeLocationRepo) DependentCounts(ctx context.Context, id string) (location.DependentCounts, error) {
	return f.counts[id], nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id string) error {
	delete(f.locations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newFakeRepo() *fakeLocationRepo {
	return &fakeLocationRepo{
		locations: map[string]location.Location{
			"loc-1": {ID: "loc-1", Name: "Site One", Active: true},
		},
		counts: map[string]location.DependentCounts{},
	}
}

func TestDeleteBlockedByDependents(t *testing.T) {
	repo := newFakeRepo()
	repo.counts["loc-1"] = location.DependentCounts{Employees: 3, Expenses: 1, Attendance: 42}
	svc := NewLocationService(repo)

	err := svc.Delete(context.Background(), "loc-1")

	var blocked *location.DeleteBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, int64(3), blocked.Counts.Employees)
	assert.Equal(t, int64(1), blocked.Counts.Expenses)
	assert.Equal(t, int64(42), blocked.Counts.Attendance)

	// The row survives.
	assert.Empty(t, repo.deleted)
	_, err = repo.GetByID(context.Background(), "loc-1")
	assert.NoError(t, err)
}

func TestDeleteBlockedByAnySingleCategory(t *testing.T) {
	cases := []struct {
		name   string
		counts location.DependentCounts
	}{
		{"employees only", location.DependentCounts{Employees: 1}},
		{"expenses only", location.DependentCounts{Expenses: 1}},
		{"attendance only", location.DependentCounts{Attendance: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.counts["loc-1"] = c.counts
			svc := NewLocationService(repo)

			var blocked *location.DeleteBlockedError
			require.ErrorAs(t, svc.Delete(context.Background(), "loc-1"), &blocked)
			assert.Equal(t, c.counts, blocked.Counts)
		})
	}
}

func TestDeleteWithNoDependents(t *testing.T) {
	repo := newFakeRepo()
	svc := NewLocationService(repo)

	require.NoError(t, svc.Delete(context.Background(), "loc-1"))
	assert.Equal(t, []string{"loc-1"}, repo.deleted)
}

func TestDeleteUnknownLocation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewLocationService(repo)

	err := svc.Delete(context.Background(), "loc-9")
	assert.ErrorIs(t, err, location.ErrLocationNotFound)
	assert.Empty(t, repo.deleted)
}
