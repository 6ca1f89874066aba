package dto

import (
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// Request DTOs for the content handlers. Field rules beyond presence are enforced
// by the entity validators.

type CreateNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

func (r CreateNewsRequest) ToInput() usecasecontract.CreateNewsInput {
	return usecasecontract.CreateNewsInput{
		Title:    r.Title,
		Content:  r.Content,
		Author:   r.Author,
		Category: r.Category,
		Status:   r.Status,
		Image:    r.Image,
	}
}

type CreateCommunityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Members     []string `json:"members"`
}

func (r CreateCommunityRequest) ToInput() usecasecontract.CreateCommunityInput {
	return usecasecontract.CreateCommunityInput{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		Members:     r.Members,
	}
}

type MemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type CreatePostRequest struct {
	Author     string `json:"author"`
	AuthorName string `json:"authorName"`
	Community  string `json:"community"`
	Content    string `json:"content" binding:"required"`
	Type       string `json:"type"`
	Likes      int    `json:"likes" binding:"gte=0"`
	Comments   int    `json:"comments" binding:"gte=0"`
	IsFollowed bool   `json:"isFollowed"`
	IsJoined   bool   `json:"isJoined"`
}

func (r CreatePostRequest) ToInput() usecasecontract.CreatePostInput {
	return usecasecontract.CreatePostInput{
		Author:     r.Author,
		AuthorName: r.AuthorName,
		Community:  r.Community,
		Content:    r.Content,
		Type:       r.Type,
		Likes:      r.Likes,
		Comments:   r.Comments,
		IsFollowed: r.IsFollowed,
		IsJoined:   r.IsJoined,
	}
}

type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Organizer string `json:"organizer" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Status    string `json:"status"`
	Type      string `json:"type" binding:"required"`
}

func (r CreateEventRequest) ToInput() usecasecontract.CreateEventInput {
	return usecasecontract.CreateEventInput{
		Title:     r.Title,
		Organizer: r.Organizer,
		Date:      r.Date,
		Location:  r.Location,
		Category:  r.Category,
		Status:    r.Status,
		Type:      r.Type,
	}
}

type CreateReportRequest struct {
	Type          string `json:"type" binding:"required"`
	TargetContent string `json:"targetContent" binding:"required"`
	Reporter      string `json:"reporter"`
	Status        string `json:"status"`
	Severity      string `json:"severity"`
}

func (r CreateReportRequest) ToInput() usecasecontract.CreateReportInput {
	return usecasecontract.CreateReportInput{
		Type:          r.Type,
		TargetContent: r.TargetContent,
		Reporter:      r.Reporter,
		Status:        r.Status,
		Severity:      r.Severity,
	}
}
