package suggest

import (
	"reflect"
	"testing"
)

func TestNormalizeAll(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "lowercases and trims",
			in:   []string{"  Egg ", "TOMATO", "rice"},
			want: []string{"egg", "tomato", "rice"},
		},
		{
			name: "drops blanks",
			in:   []string{"", "   ", "bread", "\t"},
			want: []string{"bread"},
		},
		{
			name: "keeps duplicates and order",
			in:   []string{"milk", "egg", "milk"},
			want: []string{"milk", "egg", "milk"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAll(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeAll(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAllIdempotent(t *testing.T) {
	in := []string{"egg", "tomato", "day-old rice"}
	once := NormalizeAll(in)
	twice := NormalizeAll(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizing twice changed the result: %v vs %v", once, twice)
	}
}

func TestNormalizePairs(t *testing.T) {
	in := []Pair{
		{Name: " Egg ", Expiry: " 2026-09-10 "},
		{Name: "", Expiry: "2026-09-10"},
		{Name: "Rice", Expiry: ""},
	}
	want := []Pair{
		{Name: "egg", Expiry: "2026-09-10"},
		{Name: "rice", Expiry: ""},
	}
	got := NormalizePairs(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizePairs() = %v, want %v", got, want)
	}
}
