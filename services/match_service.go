package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"featur_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService reads and mutates match records. Creation lives in
// SwipeService, which is the only writer of new matches.
type MatchService struct {
	Dynamo DynamoAPI
}

// GetMatch retrieves the match for an unordered user pair, if any.
func (s *MatchService) GetMatch(ctx context.Context, userA, userB string) (*models.Match, error) {
	matchID := models.PairKey(userA, userB)
	return s.GetMatchByID(ctx, matchID)
}

// GetMatchByID retrieves a match by its pair-key id.
func (s *MatchService) GetMatchByID(ctx context.Context, matchID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match %s: %w", matchID, err)
	}
	return &match, nil
}

// FetchMatchesForUser returns every active match the user participates in.
func (s *MatchService) FetchMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	if userID == "" {
		return nil, errors.New("userId cannot be empty")
	}

	var matches []models.Match
	err := s.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		var match models.Match
		if err := attributevalue.UnmarshalMap(item, &match); err != nil {
			log.Printf("⚠️ Skipping unparsable match item: %v", err)
			return false
		}
		return match.IsActive && match.Involves(userID)
	}, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for %s: %w", userID, err)
	}

	return matches, nil
}

// MarkMessaged flips the hasMessaged flag on a match. Best-effort: callers
// treat the flag as a derived view, so a failure is logged and swallowed. The
// condition keeps a missing match from materializing as a phantom item.
func (s *MatchService) MarkMessaged(ctx context.Context, matchID string) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	updateExpression := "SET hasMessaged = :true"
	expressionValues := map[string]types.AttributeValue{
		":true": &types.AttributeValueMemberBOOL{Value: true},
	}

	_, err := s.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable, updateExpression, "attribute_exists(matchId)", key, expressionValues, nil)
	if errors.Is(err, ErrConditionFailed) {
		return // no match for this conversation, nothing to flag
	}
	if err != nil {
		log.Printf("⚠️ Failed to mark match %s as messaged: %v", matchID, err)
	}
}

// DeactivateMatch soft-deactivates a match. The record stays for audit; only
// the isActive flag flips.
func (s *MatchService) DeactivateMatch(ctx context.Context, matchID string) error {
	if matchID == "" {
		return errors.New("matchId cannot be empty")
	}

	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	updateExpression := "SET isActive = :false"
	expressionValues := map[string]types.AttributeValue{
		":false": &types.AttributeValueMemberBOOL{Value: false},
	}

	_, err := s.Dynamo.UpdateItemWithCondition(ctx, models.MatchesTable, updateExpression, "attribute_exists(matchId)", key, expressionValues, nil)
	if errors.Is(err, ErrConditionFailed) {
		return fmt.Errorf("match %s not found", matchID)
	}
	if err != nil {
		return fmt.Errorf("failed to deactivate match %s: %w", matchID, err)
	}

	log.Printf("✅ Match %s deactivated", matchID)
	return nil
}
