package txtspan

import "testing"

func TestSpanValid(t *testing.T) {
	valid := Span{CleanStart: 0, CleanEnd: 5, OriginalStart: 0, OriginalEnd: 5}
	if !valid.Valid() {
		t.Errorf("expected span to be valid: %v", valid)
	}

	invalid := Span{CleanStart: 5, CleanEnd: 5, OriginalStart: 0, OriginalEnd: 5}
	if invalid.Valid() {
		t.Errorf("expected span with CleanEnd == CleanStart to be invalid: %v", invalid)
	}
}

func TestIdentityMapRoundTrip(t *testing.T) {
	m := NewIdentityMap(10)
	for offset := 0; offset <= 10; offset++ {
		if got := m.CleanToOriginal(offset); got != offset {
			t.Errorf("CleanToOriginal(%d) = %d, want %d", offset, got, offset)
		}
		if got := m.OriginalToClean(offset); got != offset {
			t.Errorf("OriginalToClean(%d) = %d, want %d", offset, got, offset)
		}
	}
}

func TestBuilderDenseRoundTrip(t *testing.T) {
	// clean: "ab cd"  original: "ab  cd" (extra space inserted at offset 2)
	b := NewBuilder(5, 6)
	b.Put(0, 0)
	b.Put(1, 1)
	b.Put(2, 3) // the space in "ab cd" maps past the inserted extra space
	b.Put(3, 4)
	b.Put(4, 5)
	b.Put(5, 6)
	m := b.Build()

	if !m.dense {
		t.Fatalf("expected dense representation for small text")
	}

	cases := []struct{ clean, original int }{
		{0, 0}, {1, 1}, {2, 3}, {3, 4}, {4, 5}, {5, 6},
	}
	for _, c := range cases {
		if got := m.CleanToOriginal(c.clean); got != c.original {
			t.Errorf("CleanToOriginal(%d) = %d, want %d", c.clean, got, c.original)
		}
	}
}

func TestLookupOutOfRangeClamps(t *testing.T) {
	m := NewIdentityMap(5)
	if got := m.CleanToOriginal(-1); got != 0 {
		t.Errorf("CleanToOriginal(-1) = %d, want clamp to 0", got)
	}
	if got := m.CleanToOriginal(100); got != 5 {
		t.Errorf("CleanToOriginal(100) = %d, want clamp to 5", got)
	}
}

func TestNilMapFallsBackToIdentity(t *testing.T) {
	var m *Map
	if got := m.CleanToOriginal(42); got != 42 {
		t.Errorf("nil map CleanToOriginal(42) = %d, want 42", got)
	}
}

func TestRunLengthFallbackForLargeText(t *testing.T) {
	size := denseThreshold + 10
	b := NewBuilder(size, size)
	// Identity mapping throughout: one giant run expected.
	for i := 0; i <= size; i++ {
		b.Put(i, i)
	}
	m := b.Build()
	if m.dense {
		t.Fatalf("expected run-length representation above denseThreshold")
	}
	if got := m.CleanToOriginal(12345); got != 12345 {
		t.Errorf("CleanToOriginal(12345) = %d, want 12345", got)
	}
	if got := m.OriginalToClean(size); got != size {
		t.Errorf("OriginalToClean(%d) = %d, want %d", size, got, size)
	}
}
