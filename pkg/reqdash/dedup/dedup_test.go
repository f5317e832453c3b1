package dedup

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

const key = "RBS-ID (ON)"

func mk(id any, name string) models.Record {
	return models.Record{key: id, "Eis naam": name}
}

func TestFindKeepFirst(t *testing.T) {
	tbl := models.NewTable([]string{key, "Eis naam"}, []models.Record{
		mk("R1", "a"),
		mk("R2", "b"),
		mk("R1", "c"),
		mk(nil, "d"),
		mk(nil, "e"),
		mk(int64(7), "f"),
		mk("7", "g"),
		mk("R1", "h"),
		mk(float64(7), "i"),
	})

	rep := Find(tbl, key)
	if rep.Count != 3 {
		t.Fatalf("Count = %d, expected 3", rep.Count)
	}
	if diff := cmp.Diff([]int{2, 7, 8}, rep.Rows); diff != "" {
		t.Fatalf("Rows mismatch (-want +got):\n%s", diff)
	}
	if rep.Key != key {
		t.Errorf("Key = %q, expected %q", rep.Key, key)
	}
}

func TestFindKeyTypes(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		dup  bool
	}{
		{"same text", "R1", "R1", true},
		{"text vs integer", "1", int64(1), false},
		{"integer vs equal float", int64(1), float64(1), true},
		{"integer vs other float", int64(1), 1.5, false},
		{"bool vs text", true, "true", false},
		{"bool vs bool", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := models.NewTable([]string{key}, []models.Record{mk(tt.a, ""), mk(tt.b, "")})
			if got := Find(tbl, key).Count == 1; got != tt.dup {
				t.Errorf("duplicate = %v, expected %v", got, tt.dup)
			}
		})
	}
}

func TestFindNoDuplicates(t *testing.T) {
	tbl := models.NewTable([]string{key}, []models.Record{mk("R1", ""), mk("R2", "")})
	if rep := Find(tbl, key); rep.Count != 0 || rep.Rows != nil {
		t.Fatalf("expected no duplicates, got %+v", rep)
	}
}

func TestDropDuplicates(t *testing.T) {
	in := models.NewTable([]string{key, "Eis naam"}, []models.Record{
		mk("R1", "a"),
		mk("R1", "b"),
		mk("R2", "c"),
		mk("", "d"),
		mk("", "e"),
	})

	got := DropDuplicates(in, key)
	want := []models.Record{mk("R1", "a"), mk("R2", "c"), mk("", "d"), mk("", "e")}
	if diff := cmp.Diff(want, got.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if len(in.Rows) != 5 {
		t.Fatalf("input modified: %d rows", len(in.Rows))
	}
	if diff := cmp.Diff(in.Columns, got.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}
