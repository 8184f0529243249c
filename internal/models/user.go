package models

import "time"

// Default profile attributes applied at registration.
const (
	DefaultAvatar     = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=400&h=400&fit=crop"
	DefaultCoverImage = "https://images.unsplash.com/photo-1557672172-298e090bd0f1?w=1200&h=400&fit=crop"
	DefaultMedium     = "Digital"
	DefaultExperience = "Emerging"
)

// SocialLinks holds a user's optional social media handles.
type SocialLinks struct {
	Instagram string `json:"instagram" gorm:"type:varchar(255)"`
	Twitter   string `json:"twitter" gorm:"type:varchar(255)"`
	Website   string `json:"website" gorm:"type:varchar(255)"`
}

// User represents a registered artist profile.
type User struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string      `json:"name" gorm:"type:varchar(255)"`
	Username   string      `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email      string      `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password   string      `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Bio        string      `json:"bio" gorm:"type:text"`
	Avatar     string      `json:"avatar" gorm:"type:varchar(512)"`
	CoverImage string      `json:"coverImage" gorm:"type:varchar(512)"`
	Location   string      `json:"location" gorm:"type:varchar(255)"`
	Medium     string      `json:"medium" gorm:"index;type:varchar(50)"`
	Experience string      `json:"experience" gorm:"index;type:varchar(50)"`
	Social     SocialLinks `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	Verified   bool        `json:"verified"`
	Followers  int         `json:"followers"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// UserUpdate is a partial profile update. A nil field means "leave untouched",
// which keeps "field absent" distinguishable from "field set to empty".
type UserUpdate struct {
	Bio        *string      `json:"bio"`
	Location   *string      `json:"location"`
	Medium     *string      `json:"medium"`
	Experience *string      `json:"experience"`
	Social     *SocialLinks `json:"social"`
	Avatar     *string      `json:"avatar"`
	CoverImage *string      `json:"coverImage"`
}

// Fields returns the present patch fields as a column map suitable for
// UserRepository.UpdateFields. An all-nil patch yields an empty map.
func (u UserUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Bio != nil {
		fields["bio"] = *u.Bio
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Medium != nil {
		fields["medium"] = *u.Medium
	}
	if u.Experience != nil {
		fields["experience"] = *u.Experience
	}
	if u.Social != nil {
		fields["social_instagram"] = u.Social.Instagram
		fields["social_twitter"] = u.Social.Twitter
		fields["social_website"] = u.Social.Website
	}
	if u.Avatar != nil {
		fields["avatar"] = *u.Avatar
	}
	if u.CoverImage != nil {
		fields["cover_image"] = *u.CoverImage
	}
	return fields
}
