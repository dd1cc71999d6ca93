package migrations

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestStatements(t *testing.T) {
	t.Parallel()

	in := `-- workouts; one row per session
CREATE TABLE a (id TEXT);

CREATE INDEX i ON a (id);
;`
	want := []string{"CREATE TABLE a (id TEXT)", "CREATE INDEX i ON a (id)"}
	if diff := cmp.Diff(want, Statements(in)); diff != "" {
		t.Errorf("Statements() mismatch (-want +got):\n%s", diff)
	}
}

type fakeHistory struct {
	applied map[string]bool
	execs   []string
	failOn  string
}

func (h *fakeHistory) Ensure(context.Context) error { return nil }

func (h *fakeHistory) Applied(_ context.Context, name string) (bool, error) {
	return h.applied[name], nil
}

func (h *fakeHistory) Exec(_ context.Context, stmt string) error {
	if stmt == h.failOn {
		return errors.New("syntax error")
	}
	h.execs = append(h.execs, stmt)
	return nil
}

func (h *fakeHistory) Record(_ context.Context, name string) error {
	h.applied[name] = true
	return nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/0002_b.sql": {Data: []byte("B1; B2")},
		"sql/0001_a.sql": {Data: []byte("A1")},
		"sql/README.md":  {Data: []byte("not sql")},
	}

	h := &fakeHistory{applied: map[string]bool{}}
	ran, err := Run(context.Background(), h, fsys, "sql")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]string{"0001_a.sql", "0002_b.sql"}, ran); diff != "" {
		t.Errorf("ran mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A1", "B1", "B2"}, h.execs); diff != "" {
		t.Errorf("execs mismatch (-want +got):\n%s", diff)
	}

	again, err := Run(context.Background(), h, fsys, "sql")
	if err != nil || len(again) != 0 {
		t.Errorf("second Run() = %v, %v, want nothing applied", again, err)
	}
}

func TestRunStopsOnFailure(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/0001_a.sql": {Data: []byte("A1")},
		"sql/0002_b.sql": {Data: []byte("BAD")},
		"sql/0003_c.sql": {Data: []byte("C1")},
	}

	h := &fakeHistory{applied: map[string]bool{}, failOn: "BAD"}
	ran, err := Run(context.Background(), h, fsys, "sql")
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if diff := cmp.Diff([]string{"0001_a.sql"}, ran); diff != "" {
		t.Errorf("ran mismatch (-want +got):\n%s", diff)
	}
	if h.applied["0002_b.sql"] || h.applied["0003_c.sql"] {
		t.Error("failed migration or its successors were recorded")
	}
}
