package models

// SocialLink holds a per-platform handle on a user profile
type SocialLink struct {
	Platform      string `dynamodbav:"platform" json:"platform"`
	Username      string `dynamodbav:"username" json:"username"`
	FollowerCount int    `dynamodbav:"followerCount,omitempty" json:"followerCount,omitempty"`
}

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID        string       `dynamodbav:"userId" json:"userId"`
	DisplayName   string       `dynamodbav:"displayName" json:"displayName"`
	Bio           string       `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	ContentStyles []string     `dynamodbav:"contentStyles,omitempty" json:"contentStyles,omitempty"`
	Interests     []string     `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	MediaURLs     []string     `dynamodbav:"mediaUrls,omitempty" json:"mediaUrls,omitempty"`
	SocialLinks   []SocialLink `dynamodbav:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	FollowerCount int          `dynamodbav:"followerCount,omitempty" json:"followerCount,omitempty"`
	IsVerified    bool         `dynamodbav:"isVerified" json:"isVerified"`
	CreatedAt     string       `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string       `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
