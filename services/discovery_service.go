package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"featur_server/models"
	"featur_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DiscoveryService produces ordered candidate lists for a user. Candidates the
// user has already evaluated are excluded in full; the exclusion set is applied
// client-side, so its size is unbounded.
type DiscoveryService struct {
	Dynamo DynamoAPI
}

// SimilarityScore weighs content-style overlap twice as heavily as interest
// overlap. Symmetric by construction.
func SimilarityScore(a, b models.UserProfile) int {
	return 2*utils.IntersectionSize(a.ContentStyles, b.ContentStyles) + utils.IntersectionSize(a.Interests, b.Interests)
}

// GetDiscoveryFeed returns up to limit candidate profiles for the given user,
// excluding the user themselves and every id in excluded, ordered by
// descending similarity score. Ties keep the order the scan returned them in.
func (s *DiscoveryService) GetDiscoveryFeed(ctx context.Context, profile models.UserProfile, limit int, excluded map[string]struct{}) ([]models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, errors.New("userId cannot be empty")
	}
	if limit <= 0 {
		limit = 20
	}

	var candidates []models.UserProfile
	err := s.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		candidateID := utils.ExtractString(item, "userId")
		if candidateID == "" || candidateID == profile.UserID {
			return false
		}
		if _, skip := excluded[candidateID]; skip {
			return false
		}
		return true
	}, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return SimilarityScore(profile, candidates[i]) > SimilarityScore(profile, candidates[j])
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	log.Printf("✅ Discovery feed for %s: %d candidates", profile.UserID, len(candidates))
	return candidates, nil
}

// GetFeaturedCreators returns verified profiles ordered by follower count.
// Individual unparsable profiles are skipped and logged; the listing is
// best-effort by design.
func (s *DiscoveryService) GetFeaturedCreators(ctx context.Context, limit int) ([]models.UserProfile, error) {
	if limit <= 0 {
		limit = 10
	}

	var creators []models.UserProfile
	err := s.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		verified, ok := item["isVerified"]
		if !ok {
			return false
		}
		boolAttr, ok := verified.(*types.AttributeValueMemberBOOL)
		if !ok {
			log.Printf("⚠️ Skipping profile with malformed isVerified attribute")
			return false
		}
		return boolAttr.Value
	}, &creators)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured creators: %w", err)
	}

	sort.SliceStable(creators, func(i, j int) bool {
		return creators[i].FollowerCount > creators[j].FollowerCount
	})

	if len(creators) > limit {
		creators = creators[:limit]
	}
	return creators, nil
}
