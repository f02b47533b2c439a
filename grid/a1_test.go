package grid

import (
	"testing"
)

func TestParseA1(t *testing.T) {
	tests := []struct {
		a1    string
		title string
		area  Area
	}{
		{"Sheet1", "Sheet1", Area{}},
		{"'Sheet 1'", "Sheet 1", Area{}},
		{"Sheet1!C3", "Sheet1", Area{Left: 3, Top: 3, Right: 3, Bottom: 3}},
		{"'Q1 ''24'!B2:D4", "Q1 '24", Area{Left: 2, Top: 2, Right: 4, Bottom: 4}},
		{"'ACL!2'!A1:AA10", "ACL!2", Area{Left: 1, Top: 1, Right: 27, Bottom: 10}},
	}

	for _, test := range tests {
		title, area, err := ParseA1(test.a1)
		if err != nil {
			t.Fatalf("Unexpected error parsing '%v' (%v)", test.a1, err)
		}

		if title != test.title {
			t.Errorf("Incorrect title for '%v' - expected:%v, got:%v", test.a1, test.title, title)
		}

		if area != test.area {
			t.Errorf("Incorrect area for '%v' - expected:%+v, got:%+v", test.a1, test.area, area)
		}
	}
}

func TestParseA1WithInvalidReference(t *testing.T) {
	for _, a1 := range []string{"'Sheet1", "'Sheet1'A1", "Sheet1!11", "Sheet1!C3:A1"} {
		if _, _, err := ParseA1(a1); err == nil {
			t.Errorf("Expected error parsing '%v', got %v", a1, err)
		}
	}
}

func TestRange(t *testing.T) {
	if r, err := Range("Data", 2, 3); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	} else if r != "'Data'!A1:C2" {
		t.Errorf("Incorrect range - expected:%v, got:%v", "'Data'!A1:C2", r)
	}

	if r, err := Range("Data", 0, 3); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	} else if r != "'Data'" {
		t.Errorf("Incorrect range - expected:%v, got:%v", "'Data'", r)
	}
}

func TestCell(t *testing.T) {
	if c, err := Cell("Bob's", 2, 3); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	} else if c != "'Bob''s'!B3" {
		t.Errorf("Incorrect cell - expected:%v, got:%v", "'Bob''s'!B3", c)
	}
}
