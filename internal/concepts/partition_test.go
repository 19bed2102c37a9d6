package concepts_test

import (
	"errors"
	"reflect"
	"testing"

	"dynamocards/internal/concepts"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		sampleSize  int
		wantBounds  []int
		wantBatch   int
		wantWarning bool
		wantErr     bool
	}{
		{
			name:       "uneven last batch",
			n:          23,
			sampleSize: 5,
			wantBounds: []int{0, 5, 10, 15, 20, 23},
			wantBatch:  5,
		},
		{
			name:       "derived sample size",
			n:          10,
			sampleSize: 0,
			wantBounds: []int{0, 5, 10},
			wantBatch:  5,
		},
		{
			name:       "derived sample size clamps to one",
			n:          3,
			sampleSize: 0,
			wantBounds: []int{0, 3},
			wantBatch:  3,
		},
		{
			name:       "one chunk per batch",
			n:          4,
			sampleSize: 4,
			wantBounds: []int{0, 1, 2, 3, 4},
			wantBatch:  1,
		},
		{
			name:        "large batches warn",
			n:           12,
			sampleSize:  2,
			wantBounds:  []int{0, 6, 12},
			wantBatch:   6,
			wantWarning: true,
		},
		{
			name:        "batch of exactly ten is accepted",
			n:           20,
			sampleSize:  2,
			wantBounds:  []int{0, 10, 20},
			wantBatch:   10,
			wantWarning: true,
		},
		{
			name:       "batch over ten is rejected",
			n:          11,
			sampleSize: 1,
			wantErr:    true,
		},
		{
			name:       "sample larger than document count",
			n:          3,
			sampleSize: 4,
			wantErr:    true,
		},
		{
			name:       "negative sample size",
			n:          3,
			sampleSize: -1,
			wantErr:    true,
		},
		{
			name:       "no chunks",
			n:          0,
			sampleSize: 0,
			wantBounds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := concepts.Partition(tt.n, tt.sampleSize)
			if tt.wantErr {
				if !errors.Is(err, concepts.ErrInvalidConfiguration) {
					t.Fatalf("Partition() error = %v, want ErrInvalidConfiguration", err)
				}
				var cfgErr *concepts.ConfigError
				if !errors.As(err, &cfgErr) || cfgErr.Reason == "" {
					t.Errorf("Partition() error = %v, want a ConfigError with a reason", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Partition() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(plan.Bounds, tt.wantBounds) {
				t.Errorf("Partition() bounds = %v, want %v", plan.Bounds, tt.wantBounds)
			}
			if plan.BatchSize != tt.wantBatch {
				t.Errorf("Partition() batch size = %d, want %d", plan.BatchSize, tt.wantBatch)
			}
			if (plan.Warning != "") != tt.wantWarning {
				t.Errorf("Partition() warning = %q, want warning %v", plan.Warning, tt.wantWarning)
			}
		})
	}
}

func TestPlan_Range(t *testing.T) {
	plan, err := concepts.Partition(23, 5)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}
	if plan.Batches() != 5 {
		t.Fatalf("Batches() = %d, want 5", plan.Batches())
	}

	covered := 0
	for i := 0; i < plan.Batches(); i++ {
		start, end := plan.Range(i)
		if start != covered {
			t.Errorf("Range(%d) starts at %d, want %d", i, start, covered)
		}
		if end-start > plan.BatchSize {
			t.Errorf("Range(%d) spans %d chunks, want <= %d", i, end-start, plan.BatchSize)
		}
		covered = end
	}
	if covered != 23 {
		t.Errorf("batches cover %d chunks, want 23", covered)
	}
}
