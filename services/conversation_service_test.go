package services

import (
	"context"
	"errors"
	"testing"

	"featur_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestGetOrCreateConversationRejectsInvalidParticipants(t *testing.T) {
	tests := []struct {
		name  string
		userA string
		userB string
	}{
		{"empty first", "", "bob"},
		{"empty second", "alice", ""},
		{"same user", "alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDynamo{}
			svc := &ConversationService{Dynamo: fake}

			_, err := svc.GetOrCreateConversation(context.Background(), tt.userA, tt.userB)
			if !errors.Is(err, ErrInvalidParticipants) {
				t.Fatalf("expected ErrInvalidParticipants, got %v", err)
			}
			if len(fake.conditionalPuts) != 0 {
				t.Fatal("validation failure must not write anything")
			}
		})
	}
}

func TestGetOrCreateConversationCreatesWithZeroCounters(t *testing.T) {
	fake := &fakeDynamo{}
	svc := &ConversationService{Dynamo: fake}

	conversation, err := svc.GetOrCreateConversation(context.Background(), "bob", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conversation.ConversationID != models.PairKey("alice", "bob") {
		t.Fatalf("unexpected conversation id: %s", conversation.ConversationID)
	}
	if len(conversation.Participants) != 2 || conversation.Participants[0] != "alice" || conversation.Participants[1] != "bob" {
		t.Fatalf("participants must be stored sorted, got %v", conversation.Participants)
	}
	if conversation.UnreadCounts["alice"] != 0 || conversation.UnreadCounts["bob"] != 0 {
		t.Fatalf("unread counters must start at zero, got %v", conversation.UnreadCounts)
	}
	if conversation.Type != models.ConversationTypePrivate {
		t.Fatalf("unexpected conversation type: %s", conversation.Type)
	}
	if len(fake.conditionalPuts) != 1 || fake.conditionalPuts[0].table != models.ConversationsTable {
		t.Fatalf("expected one conditional create, got %+v", fake.conditionalPuts)
	}
}

func TestGetOrCreateConversationIsIdempotent(t *testing.T) {
	existing := models.Conversation{
		ConversationID: models.PairKey("alice", "bob"),
		Participants:   []string{"alice", "bob"},
		Type:           models.ConversationTypePrivate,
		UnreadCounts:   map[string]int{"alice": 0, "bob": 2},
		CreatedAt:      "2026-08-01T10:00:00Z",
	}
	fake := &fakeDynamo{
		getItemFn: func(table string, _ map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			if table != models.ConversationsTable {
				t.Fatalf("unexpected table %s", table)
			}
			return mustMarshal(existing), nil
		},
	}
	svc := &ConversationService{Dynamo: fake}

	first, err := svc.GetOrCreateConversation(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetOrCreateConversation(context.Background(), "bob", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ConversationID != second.ConversationID {
		t.Fatalf("resolve must be idempotent, got %s and %s", first.ConversationID, second.ConversationID)
	}
	if len(fake.conditionalPuts) != 0 {
		t.Fatal("existing conversation must not be re-created")
	}
}

func TestGetOrCreateConversationSurvivesCreateRace(t *testing.T) {
	winner := models.Conversation{
		ConversationID: models.PairKey("alice", "bob"),
		Participants:   []string{"alice", "bob"},
		Type:           models.ConversationTypePrivate,
		UnreadCounts:   map[string]int{"alice": 0, "bob": 0},
		CreatedAt:      "2026-08-01T10:00:00Z",
	}

	reads := 0
	fake := &fakeDynamo{
		conditionalPutErr: ErrConditionFailed,
		getItemFn: func(string, map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			reads++
			if reads == 1 {
				// First lookup happens before the losing create.
				return nil, ErrItemNotFound
			}
			return mustMarshal(winner), nil
		},
	}
	svc := &ConversationService{Dynamo: fake}

	conversation, err := svc.GetOrCreateConversation(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("losing the create race must not be an error, got %v", err)
	}
	if conversation.ConversationID != winner.ConversationID {
		t.Fatalf("expected the winner's conversation, got %s", conversation.ConversationID)
	}
}

func TestListConversationsForUser(t *testing.T) {
	fake := &fakeDynamo{
		scanItems: map[string][]map[string]types.AttributeValue{
			models.ConversationsTable: {
				mustMarshal(models.Conversation{ConversationID: "a#b", Participants: []string{"a", "b"}, UnreadCounts: map[string]int{}}),
				mustMarshal(models.Conversation{ConversationID: "b#c", Participants: []string{"b", "c"}, UnreadCounts: map[string]int{}}),
				mustMarshal(models.Conversation{ConversationID: "c#d", Participants: []string{"c", "d"}, UnreadCounts: map[string]int{}}),
			},
		},
	}
	svc := &ConversationService{Dynamo: fake}

	conversations, err := svc.ListConversationsForUser(context.Background(), "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversations) != 2 {
		t.Fatalf("expected 2 conversations for b, got %d", len(conversations))
	}
	for _, c := range conversations {
		if !c.HasParticipant("b") {
			t.Fatalf("conversation %s does not involve b", c.ConversationID)
		}
	}
}
