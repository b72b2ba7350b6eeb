package tsp

import (
	"errors"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantPoints []Point
		wantErr    error
	}{
		{
			name:       "valid instance",
			input:      "3\n0 0\n10000 10000\n5 5\n",
			wantPoints: []Point{{0, 0}, {10000, 10000}, {5, 5}},
		},
		{
			name:       "no trailing newline",
			input:      "2\n1 2\n3 4",
			wantPoints: []Point{{1, 2}, {3, 4}},
		},
		{
			name:       "extra whitespace between coordinates",
			input:      "1\n  7\t8 \n",
			wantPoints: []Point{{7, 8}},
		},
		{
			name:       "zero points",
			input:      "0\n",
			wantPoints: []Point{},
		},
		{
			name:       "trailing lines ignored",
			input:      "1\n1 1\ngarbage\n",
			wantPoints: []Point{{1, 1}},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "non-numeric header",
			input:   "ten\n1 1\n",
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "negative header",
			input:   "-1\n",
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "single coordinate",
			input:   "1\n42\n",
			wantErr: ErrMalformedPoint,
		},
		{
			name:    "three coordinates",
			input:   "1\n1 2 3\n",
			wantErr: ErrMalformedPoint,
		},
		{
			name:    "non-integer coordinate",
			input:   "1\n1.5 2\n",
			wantErr: ErrMalformedPoint,
		},
		{
			name:    "header far larger than body",
			input:   "9223372036854775807\n1 1\n",
			wantErr: ErrTruncatedInstance,
		},
		{
			name:    "truncated",
			input:   "3\n1 1\n2 2\n",
			wantErr: ErrTruncatedInstance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inst, err := Read(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}

			if len(inst.Points) != len(tt.wantPoints) {
				t.Fatalf("Read() got %d points, want %d", len(inst.Points), len(tt.wantPoints))
			}
			for i, p := range inst.Points {
				if p != tt.wantPoints[i] {
					t.Errorf("point %d = %v, want %v", i, p, tt.wantPoints[i])
				}
			}
		})
	}
}

func TestReadReportsLineNumber(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("2\n1 1\nx y\n"))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name line 3", err)
	}
}

func TestPointAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Point
		want string
	}{
		{Point{0, 0}, "0 0"},
		{Point{10000, 0}, "10000 0"},
		{Point{42, 42}, "42 42"},
	}

	for _, tt := range tests {
		if got := string(tt.p.Append([]byte("> "))); got != "> "+tt.want {
			t.Errorf("Append(%#v) = %q, want %q", tt.p, got, "> "+tt.want)
		}
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPointInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{MinCoord, MinCoord}, true},
		{Point{MaxCoord, MaxCoord}, true},
		{Point{-1, 0}, false},
		{Point{0, MaxCoord + 1}, false},
	}

	for _, tt := range tests {
		if got := tt.p.InRange(); got != tt.want {
			t.Errorf("InRange(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
