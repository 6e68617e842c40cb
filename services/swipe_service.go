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
	"github.com/google/uuid"
)

// ErrInvalidSwipe is returned when a swipe request is malformed (empty or
// identical ids, unknown action). Nothing is written in that case.
var ErrInvalidSwipe = errors.New("invalid swipe request")

// SwipeService records swipe actions and runs match detection on likes.
type SwipeService struct {
	Dynamo DynamoAPI
}

// SwipeResult reports the outcome of a recorded swipe.
type SwipeResult struct {
	SwipeID      string `json:"swipeId"`
	MatchCreated bool   `json:"matchCreated"`
	MatchID      string `json:"matchId,omitempty"`
}

// RecordSwipe persists a directional like/pass from actorID toward targetID.
// Swipes are append-only: repeated swipes toward the same target each produce
// a new record. On a persisted like, reciprocal-like detection runs and may
// create a match.
func (s *SwipeService) RecordSwipe(ctx context.Context, actorID, targetID, action string) (*SwipeResult, error) {
	if actorID == "" || targetID == "" || actorID == targetID {
		log.Printf("⚠️ Rejecting swipe with invalid ids (actor=%q, target=%q)", actorID, targetID)
		return nil, ErrInvalidSwipe
	}
	if action != models.SwipeActionLike && action != models.SwipeActionPass {
		log.Printf("⚠️ Rejecting swipe with unknown action %q", action)
		return nil, ErrInvalidSwipe
	}

	swipe := models.SwipeAction{
		ActorID:   actorID,
		SwipeID:   uuid.NewString(),
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.Dynamo.PutItem(ctx, models.SwipesTable, swipe); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}
	log.Printf("✅ Swipe recorded: %s -> %s (%s)", actorID, targetID, action)

	result := &SwipeResult{SwipeID: swipe.SwipeID}

	// Pass actions never trigger match detection.
	if action != models.SwipeActionLike {
		return result, nil
	}

	matchID, created, err := s.detectMatch(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	result.MatchCreated = created
	result.MatchID = matchID
	return result, nil
}

// detectMatch checks whether targetID has already liked actorID and, if so,
// creates the match for the pair exactly once. The match id is derived from
// the sorted pair, and the write is conditional on absence, so two concurrent
// "last likes" cannot produce two matches.
func (s *SwipeService) detectMatch(ctx context.Context, actorID, targetID string) (string, bool, error) {
	liked, err := s.HasLiked(ctx, targetID, actorID)
	if err != nil {
		return "", false, err
	}
	if !liked {
		log.Printf("ℹ️ No reciprocal like yet for %s and %s", actorID, targetID)
		return "", false, nil
	}

	matchID := models.PairKey(actorID, targetID)
	user1, user2 := models.SortPair(actorID, targetID)
	match := models.Match{
		MatchID:     matchID,
		UserID1:     user1,
		UserID2:     user2,
		MatchedAt:   time.Now().UTC().Format(time.RFC3339),
		HasMessaged: false,
		IsActive:    true,
	}

	err = s.Dynamo.PutItemIfNotExists(ctx, models.MatchesTable, match, "matchId")
	if errors.Is(err, ErrConditionFailed) {
		// Another writer got there first; the invariant holds either way.
		log.Printf("ℹ️ Match %s already exists, skipping create", matchID)
		return matchID, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("🎉 Match created: %s ❤️ %s", user1, user2)
	return matchID, true, nil
}

// HasLiked reports whether actorID has recorded a like toward targetID.
func (s *SwipeService) HasLiked(ctx context.Context, actorID, targetID string) (bool, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor":  &types.AttributeValueMemberS{Value: actorID},
		":target": &types.AttributeValueMemberS{Value: targetID},
		":like":   &types.AttributeValueMemberS{Value: models.SwipeActionLike},
	}
	expressionNames := map[string]string{
		"#action": "action", // reserved word in DynamoDB
	}
	filterExpression := "targetId = :target AND #action = :like"

	items, err := s.Dynamo.QueryItemsWithFilters(ctx, models.SwipesTable, keyCondition, expressionValues, expressionNames, filterExpression)
	if err != nil {
		return false, fmt.Errorf("failed to check reciprocal like: %w", err)
	}

	return len(items) > 0, nil
}

// GetSwipesByActor returns every swipe recorded by the given actor.
func (s *SwipeService) GetSwipesByActor(ctx context.Context, actorID string) ([]models.SwipeAction, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.SwipesTable, keyCondition, expressionValues, nil, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipes: %w", err)
	}

	var swipes []models.SwipeAction
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to parse swipes: %w", err)
	}
	return swipes, nil
}

// GetEvaluatedTargets returns the set of users the actor has already swiped on,
// in either direction of intent. Discovery uses this as its exclusion set.
func (s *SwipeService) GetEvaluatedTargets(ctx context.Context, actorID string) (map[string]struct{}, error) {
	swipes, err := s.GetSwipesByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	evaluated := make(map[string]struct{}, len(swipes))
	for _, swipe := range swipes {
		evaluated[swipe.TargetID] = struct{}{}
	}
	return evaluated, nil
}
