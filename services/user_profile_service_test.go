package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"featur_server/models"
)

func TestAddUserProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		profile models.UserProfile
	}{
		{"missing id", models.UserProfile{DisplayName: "Alice"}},
		{"missing name", models.UserProfile{UserID: "alice"}},
		{"unknown content style", models.UserProfile{UserID: "alice", DisplayName: "Alice", ContentStyles: []string{"Skydiving"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDynamo{}
			svc := &UserProfileService{Dynamo: fake}

			_, err := svc.AddUserProfile(context.Background(), tt.profile)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
			if len(fake.puts) != 0 {
				t.Fatal("validation failure must not write anything")
			}
		})
	}
}

func TestAddUserProfileStampsTimestamps(t *testing.T) {
	fake := &fakeDynamo{}
	svc := &UserProfileService{Dynamo: fake}

	created, err := svc.AddUserProfile(context.Background(), models.UserProfile{
		UserID:        "alice",
		DisplayName:   "Alice",
		ContentStyles: []string{models.ContentStyleMusic},
		Interests:     []string{"Gaming"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatalf("timestamps must be stamped, got %+v", created)
	}
	if len(fake.puts) != 1 || fake.puts[0].table != models.UserProfilesTable {
		t.Fatalf("expected one profile write, got %+v", fake.puts)
	}
}

func TestUpdateUserProfileStampsUpdatedAt(t *testing.T) {
	fake := &fakeDynamo{}
	svc := &UserProfileService{Dynamo: fake}

	_, err := svc.UpdateUserProfile(context.Background(), "alice", map[string]string{"bio": "new bio"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.updates) != 1 {
		t.Fatalf("expected one update, got %d", len(fake.updates))
	}
	update := fake.updates[0]
	if !strings.Contains(update.expr, "#bio = :bio") {
		t.Fatalf("update expression must carry the field, got %q", update.expr)
	}
	if !strings.Contains(update.expr, "#updatedAt = :updatedAt") {
		t.Fatalf("update must stamp updatedAt, got %q", update.expr)
	}
	if update.condition != "attribute_exists(userId)" {
		t.Fatalf("updates must not create phantom profiles, got %q", update.condition)
	}
}

func TestUpdateUserProfileNotFound(t *testing.T) {
	fake := &fakeDynamo{updateErr: ErrConditionFailed}
	svc := &UserProfileService{Dynamo: fake}

	_, err := svc.UpdateUserProfile(context.Background(), "ghost", map[string]string{"bio": "x"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestGetUserProfileAbsent(t *testing.T) {
	fake := &fakeDynamo{}
	svc := &UserProfileService{Dynamo: fake}

	profile, err := svc.GetUserProfile(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("absence is not an error, got %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}
}
