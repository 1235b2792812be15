package token

import "testing"

func TestCounter_Count(t *testing.T) {
	c, err := NewCounter()
	if err != nil {
		t.Fatalf("NewCounter() error = %v", err)
	}

	n, err := c.Count("Schemas are data.")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n <= 0 {
		t.Errorf("Count() = %d, want > 0", n)
	}

	empty, err := c.Count("")
	if err != nil {
		t.Fatalf("Count(empty) error = %v", err)
	}
	if empty != 0 {
		t.Errorf("Count(empty) = %d, want 0", empty)
	}
}
