package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"featur_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrInvalidParticipants is returned when a conversation is requested without
// two distinct, non-empty participant ids.
var ErrInvalidParticipants = errors.New("conversation requires two distinct participants")

// ConversationService finds or creates two-party conversations. The
// conversation id is the pair key of its participants, so resolution is a
// point read plus, at most, one conditional create — no scanning, and no way
// for two racing resolvers to end up with two threads.
type ConversationService struct {
	Dynamo DynamoAPI
}

// GetOrCreateConversation returns the conversation for the pair, creating it
// with zeroed unread counters if it does not exist yet. Idempotent: both
// callers of a race get the same conversation back.
func (s *ConversationService) GetOrCreateConversation(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	if userA == "" || userB == "" || userA == userB {
		log.Printf("⚠️ Rejecting conversation resolve with invalid participants (%q, %q)", userA, userB)
		return nil, ErrInvalidParticipants
	}

	conversationID := models.PairKey(userA, userB)

	existing, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user1, user2 := models.SortPair(userA, userB)
	conversation := models.Conversation{
		ConversationID: conversationID,
		Participants:   []string{user1, user2},
		Type:           models.ConversationTypePrivate,
		UnreadCounts:   map[string]int{user1: 0, user2: 0},
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	err = s.Dynamo.PutItemIfNotExists(ctx, models.ConversationsTable, conversation, "conversationId")
	if errors.Is(err, ErrConditionFailed) {
		// Lost the create race; the winner's record is the one to return.
		log.Printf("ℹ️ Conversation %s created concurrently, re-reading", conversationID)
		winner, rerr := s.GetConversation(ctx, conversationID)
		if rerr != nil {
			return nil, rerr
		}
		if winner == nil {
			return nil, fmt.Errorf("conversation %s vanished after concurrent create", conversationID)
		}
		return winner, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	log.Printf("✅ Conversation %s created for %s and %s", conversationID, user1, user2)
	return &conversation, nil
}

// GetConversation retrieves a conversation by id, or nil when absent.
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string) (*models.Conversation, error) {
	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.ConversationsTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", conversationID, err)
	}

	var conversation models.Conversation
	if err := attributevalue.UnmarshalMap(item, &conversation); err != nil {
		return nil, fmt.Errorf("failed to parse conversation %s: %w", conversationID, err)
	}
	return &conversation, nil
}

// ListConversationsForUser returns every conversation the user participates in.
func (s *ConversationService) ListConversationsForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	if userID == "" {
		return nil, errors.New("userId cannot be empty")
	}

	var conversations []models.Conversation
	err := s.Dynamo.ScanWithFilter(ctx, models.ConversationsTable, func(item map[string]types.AttributeValue) bool {
		var conversation models.Conversation
		if err := attributevalue.UnmarshalMap(item, &conversation); err != nil {
			log.Printf("⚠️ Skipping unparsable conversation item: %v", err)
			return false
		}
		return conversation.HasParticipant(userID)
	}, &conversations)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for %s: %w", userID, err)
	}

	return conversations, nil
}
