package suggestion

import (
	"context"
	"testing"
)

// fakeFinder serves a single row, like FindOne over the cached table.
type fakeFinder struct {
	row *Suggestions
}

func (f *fakeFinder) FindOne(_ context.Context, id int64) (*Suggestions, error) {
	if f.row == nil || f.row.Id != id {
		return nil, ErrNotFound
	}
	return f.row, nil
}

func TestFindOneScoped_OwnerGetsRow(t *testing.T) {
	finder := &fakeFinder{row: &Suggestions{Id: 100, UserId: 42, Query: "q"}}

	got, err := findOneScoped(context.Background(), finder, 100, 42)
	if err != nil {
		t.Fatalf("findOneScoped() error: %v", err)
	}
	if got.Id != 100 || got.UserId != 42 {
		t.Fatalf("row = %+v", got)
	}
}

func TestFindOneScoped_CrossOwnerIsNotFound(t *testing.T) {
	finder := &fakeFinder{row: &Suggestions{Id: 100, UserId: 42}}

	// someone else's record must be indistinguishable from a missing one
	if _, err := findOneScoped(context.Background(), finder, 100, 7); err != ErrNotFound {
		t.Fatalf("cross-owner get error = %v, want ErrNotFound", err)
	}
}

func TestFindOneScoped_MissingRowPropagates(t *testing.T) {
	finder := &fakeFinder{}

	if _, err := findOneScoped(context.Background(), finder, 999, 42); err != ErrNotFound {
		t.Fatalf("missing row error = %v, want ErrNotFound", err)
	}
}
