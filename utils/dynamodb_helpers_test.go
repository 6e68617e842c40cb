package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestExtractString(t *testing.T) {
	item := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: "alice"},
		"count":  &types.AttributeValueMemberN{Value: "3"},
	}

	if got := ExtractString(item, "userId"); got != "alice" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := ExtractString(item, "count"); got != "" {
		t.Fatalf("non-string attributes must yield empty, got %q", got)
	}
	if got := ExtractString(item, "missing"); got != "" {
		t.Fatalf("missing attributes must yield empty, got %q", got)
	}
}

func TestExtractStringList(t *testing.T) {
	item := map[string]types.AttributeValue{
		"tags": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberS{Value: "Music"},
			&types.AttributeValueMemberN{Value: "42"}, // skipped
			&types.AttributeValueMemberS{Value: "Art"},
		}},
	}

	got := ExtractStringList(item, "tags")
	if len(got) != 2 || got[0] != "Music" || got[1] != "Art" {
		t.Fatalf("unexpected list: %v", got)
	}
	if ExtractStringList(item, "missing") != nil {
		t.Fatal("missing attributes must yield nil")
	}
}

func TestIntersectionSize(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{"disjoint", []string{"a", "b"}, []string{"c"}, 0},
		{"overlap", []string{"a", "b", "c"}, []string{"b", "c", "d"}, 2},
		{"duplicates counted once", []string{"a", "a"}, []string{"a", "a", "a"}, 1},
		{"empty", nil, []string{"a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntersectionSize(tt.a, tt.b); got != tt.want {
				t.Fatalf("IntersectionSize(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := IntersectionSize(tt.b, tt.a); got != tt.want {
				t.Fatalf("intersection must be symmetric, got %d want %d", got, tt.want)
			}
		})
	}
}
