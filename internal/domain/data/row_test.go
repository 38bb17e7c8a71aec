package data_test

import (
	"testing"

	"github.com/leengari/reltable/internal/domain/data"
)

func TestRow_CopyIsIndependent(t *testing.T) {
	original := data.NewRow("1", "Bolt")
	cp := original.Copy()
	cp[1] = "Nut"

	if original[1] != "Bolt" {
		t.Errorf("Copy shares storage with original: got %q", original[1])
	}
}

func TestNewRow_CopiesInput(t *testing.T) {
	cells := []string{"1", "Bolt"}
	row := data.NewRow(cells...)
	cells[0] = "9"

	if row[0] != "1" {
		t.Errorf("NewRow kept a reference to caller's slice: got %q", row[0])
	}
}

func TestRow_Get(t *testing.T) {
	row := data.NewRow("a", "b")

	if v, ok := row.Get(1); !ok || v != "b" {
		t.Errorf("Get(1) = %q, %v", v, ok)
	}
	if _, ok := row.Get(2); ok {
		t.Error("Get(2) should be out of range")
	}
	if _, ok := row.Get(-1); ok {
		t.Error("Get(-1) should be out of range")
	}
}

func TestJoinRows(t *testing.T) {
	left := data.NewRow("1", "Bolt")
	right := data.NewRow("1", "23", "east")

	joined := data.JoinRows(left, right, []int{1, 2})

	want := data.NewRow("1", "Bolt", "23", "east")
	if !joined.Equal(want) {
		t.Errorf("JoinRows = %v, want %v", joined, want)
	}

	joined[0] = "changed"
	if left[0] != "1" {
		t.Error("JoinRows output shares storage with left input")
	}
}
