package models

// Swipe actions
const (
	SwipeActionLike = "like"
	SwipeActionPass = "pass"
)

// Conversation types
const (
	ConversationTypePrivate = "private"
	ConversationTypeGroup   = "group"
)

// Content styles (closed enumeration used on profiles)
const (
	ContentStyleMusic     = "Music"
	ContentStyleComedy    = "Comedy"
	ContentStyleGaming    = "Gaming"
	ContentStyleFashion   = "Fashion"
	ContentStyleFitness   = "Fitness"
	ContentStyleFood      = "Food"
	ContentStyleTravel    = "Travel"
	ContentStyleArt       = "Art"
	ContentStyleEducation = "Education"
	ContentStyleLifestyle = "Lifestyle"
)

// ContentStyles lists every valid content style.
var ContentStyles = []string{
	ContentStyleMusic,
	ContentStyleComedy,
	ContentStyleGaming,
	ContentStyleFashion,
	ContentStyleFitness,
	ContentStyleFood,
	ContentStyleTravel,
	ContentStyleArt,
	ContentStyleEducation,
	ContentStyleLifestyle,
}

// IsValidContentStyle reports whether the given style is part of the closed set.
func IsValidContentStyle(style string) bool {
	for _, s := range ContentStyles {
		if s == style {
			return true
		}
	}
	return false
}
