package nal

import "testing"

func TestOperatorTableAddGetIsRegistered(t *testing.T) {
	tbl := newOperatorTable()
	if tbl.isRegistered("^pick") {
		t.Fatal("expected an empty table to have no registrations")
	}

	tbl.add(NewOperator("^pick"))

	if !tbl.isRegistered("^pick") {
		t.Fatal("expected ^pick to be registered after add")
	}
	op, ok := tbl.get("^pick")
	if !ok || op.Name() != "^pick" {
		t.Fatalf("expected to retrieve the registered operator, got %v, %v", op, ok)
	}
	if _, ok := tbl.get("^missing"); ok {
		t.Error("expected an unregistered name to miss")
	}
}

func TestOperatorTableReset(t *testing.T) {
	tbl := newOperatorTable()
	tbl.add(NewOperator("^pick"))
	tbl.add(NewOperator("^go"))

	tbl.reset()

	if tbl.isRegistered("^pick") || tbl.isRegistered("^go") {
		t.Error("expected reset to clear every registration")
	}
}

func TestOperatorTableAddOverwritesSameName(t *testing.T) {
	tbl := newOperatorTable()
	first := NewOperator("^pick")
	second := NewOperator("^pick")
	tbl.add(first)
	tbl.add(second)

	op, ok := tbl.get("^pick")
	if !ok {
		t.Fatal("expected ^pick to still be registered")
	}
	if op != second {
		t.Error("expected the later registration to win on name collision")
	}
}
