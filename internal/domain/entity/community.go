package entity

import "time"

// DefaultPostCommunity is the community label of posts not tied to a specific community.
const DefaultPostCommunity = "Global"

// Community groups users. MembersCount is rewritten from len(Members) on every
// application write to Members.
type Community struct {
	ID           string          `json:"_id" bson:"_id"`
	Name         string          `json:"name" bson:"name" validate:"notblank"`
	Description  string          `json:"description" bson:"description"`
	Type         CommunityType   `json:"type" bson:"type" validate:"enum"`
	Status       CommunityStatus `json:"status" bson:"status" validate:"enum"`
	Members      []string        `json:"members" bson:"members"`
	MembersCount int             `json:"membersCount" bson:"membersCount" validate:"gte=0"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// CommunityWithMembers is a community whose member ids are resolved to users.
// The outer "members" json key shadows the embedded id list.
type CommunityWithMembers struct {
	Community     `bson:",inline"`
	MemberDetails []MemberSummary `json:"members" bson:"memberDetails"`
}

type Post struct {
	ID         string    `json:"_id" bson:"_id"`
	Author     string    `json:"author" bson:"author" validate:"required"`
	AuthorName string    `json:"authorName" bson:"authorName" validate:"notblank"`
	Community  string    `json:"community" bson:"community"`
	Content    string    `json:"content" bson:"content" validate:"notblank"`
	Type       PostType  `json:"type" bson:"type" validate:"enum"`
	Likes      int       `json:"likes" bson:"likes" validate:"gte=0"`
	Comments   int       `json:"comments" bson:"comments" validate:"gte=0"`
	IsFollowed bool      `json:"isFollowed" bson:"isFollowed"`
	IsJoined   bool      `json:"isJoined" bson:"isJoined"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
