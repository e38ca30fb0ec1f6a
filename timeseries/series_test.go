package timeseries

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
		if s.Years[i] != i {
			t.Errorf("Expected year %d at index %d, got %d", i, i, s.Years[i])
		}
	}
}

func TestNewYearly(t *testing.T) {
	s := NewYearly(1970, []float64{1, 2, 3})
	want := []int{1970, 1971, 1972}
	for i, y := range want {
		if s.Years[i] != y {
			t.Errorf("Expected year %d at index %d, got %d", y, i, s.Years[i])
		}
	}
}

func TestNewWithYears(t *testing.T) {
	if _, err := NewWithYears("x", []int{2000, 2001}, []float64{1}); err != ErrLengthMismatch {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
	if _, err := NewWithYears("x", []int{2001, 2000}, []float64{1, 2}); err != ErrYearOrder {
		t.Errorf("Expected ErrYearOrder, got %v", err)
	}
	s, err := NewWithYears("x", []int{2000, 2002}, []float64{1, 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "x" {
		t.Errorf("Expected name x, got %s", s.Name)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestIsConstant(t *testing.T) {
	if !New([]float64{0, 0, 0}).IsConstant() {
		t.Error("Expected zeros to be constant")
	}
	if New([]float64{0, 1, 0}).IsConstant() {
		t.Error("Expected varying series to be non-constant")
	}
}

func TestFutureYears(t *testing.T) {
	s := NewYearly(1970, make([]float64, 49))
	years := s.FutureYears(10)

	if len(years) != 10 {
		t.Fatalf("Expected 10 years, got %d", len(years))
	}
	if years[0] != 2019 || years[9] != 2028 {
		t.Errorf("Expected 2019..2028, got %d..%d", years[0], years[9])
	}

	if New(nil).FutureYears(3) != nil {
		t.Error("Expected no future years for empty series")
	}
}

func TestDiff(t *testing.T) {
	s := NewYearly(2000, []float64{1, 3, 6, 10, 15})
	d := s.Diff()

	expected := []float64{2, 3, 4, 5}
	if d.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), d.Len())
	}
	for i, v := range expected {
		if d.Values[i] != v {
			t.Errorf("Expected %f at index %d, got %f", v, i, d.Values[i])
		}
	}
	if d.Years[0] != 2001 {
		t.Errorf("Expected first differenced year 2001, got %d", d.Years[0])
	}

	d2 := s.DiffN(2)
	if d2.Values[0] != 5 {
		t.Errorf("Expected lag-2 difference 5, got %f", d2.Values[0])
	}

	if New([]float64{1}).Diff().Len() != 0 {
		t.Error("Expected empty difference for single value")
	}
}

func TestWriteCSV(t *testing.T) {
	a := NewYearly(2019, []float64{1.5, 2})
	a.Name = "Germany"
	b := NewYearly(2019, []float64{3})
	b.Name = "France"

	var buf bytes.Buffer
	if err := WriteCSV(&buf, a, b); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header and 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "name,year,value" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Germany,2019,1.5") {
		t.Errorf("Unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "France,2019,3") {
		t.Errorf("Unexpected last row %q", lines[3])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, New(nil)); err != ErrNothingToWrite {
		t.Errorf("Expected ErrNothingToWrite, got %v", err)
	}
}
