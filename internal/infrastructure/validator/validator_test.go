package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

func validNews() *entity.News {
	return &entity.News{
		ID:       "n1",
		Title:    "X",
		Content:  "Y",
		Author:   entity.DefaultNewsAuthor,
		Category: entity.NewsCategoryLocal,
		Status:   entity.NewsStatusPending,
		Date:     time.Now(),
	}
}

func TestValidateEntity_AcceptsValidNews(t *testing.T) {
	assert.NoError(t, NewValidator().ValidateEntity(validNews()))
}

func TestValidateEntity_RejectsOutOfDomainStatus(t *testing.T) {
	n := validNews()
	n.Status = "Archived"

	err := NewValidator().ValidateEntity(n)

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "status", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "Archived")
}

func TestValidateEntity_RejectsBlankRequiredStrings(t *testing.T) {
	n := validNews()
	n.Title = "   "
	n.Content = ""

	err := NewValidator().ValidateEntity(n)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := []string{}
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"title", "content"}, fields)
}

func TestValidateEntity_UserEmailAndPhone(t *testing.T) {
	v := NewValidator()
	u := &entity.User{
		ID:           "u1",
		FullName:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusPending,
	}
	assert.NoError(t, v.ValidateEntity(u))

	u.Phone = "0912345678"
	assert.NoError(t, v.ValidateEntity(u))

	u.Phone = "12345"
	assert.ErrorIs(t, v.ValidateEntity(u), entity.ErrValidation)

	u.Phone = ""
	u.Email = "not-an-email"
	assert.ErrorIs(t, v.ValidateEntity(u), entity.ErrValidation)

	u.Email = "alice@example.com"
	u.Role = "Superuser"
	assert.ErrorIs(t, v.ValidateEntity(u), entity.ErrValidation)
}

func TestValidateEntity_EveryStatusDomain(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	community := &entity.Community{ID: "c1", Name: "Tech", Type: entity.CommunityTypePublic, Status: entity.CommunityStatusHidden}
	assert.NoError(t, v.ValidateEntity(community))
	community.Status = "Deleted"
	assert.Error(t, v.ValidateEntity(community))

	event := &entity.Event{ID: "e1", Title: "Meetup", Organizer: "Org", Date: now, Location: "Hall", Category: "Tech", Status: entity.EventStatusPast, Type: entity.EventTypeReporter}
	assert.NoError(t, v.ValidateEntity(event))
	event.Type = ""
	assert.Error(t, v.ValidateEntity(event))

	report := &entity.ModerationReport{ID: "r1", Type: "Spam", TargetContent: "post", Reporter: "bob", Status: entity.ReportStatusDismissed, Severity: entity.ReportSeverityHigh}
	assert.NoError(t, v.ValidateEntity(report))
	report.Severity = "Critical"
	assert.Error(t, v.ValidateEntity(report))

	post := &entity.Post{ID: "p1", Author: "u1", AuthorName: "Alice", Content: "hi", Type: entity.PostTypeFollow}
	assert.NoError(t, v.ValidateEntity(post))
	post.Likes = -1
	assert.Error(t, v.ValidateEntity(post))
}

func TestValidatePasswordAndEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePassword("secret"))
	assert.ErrorIs(t, v.ValidatePassword("short"), entity.ErrValidation)
	assert.NoError(t, v.ValidateEmail("a@b.co"))
	assert.ErrorIs(t, v.ValidateEmail("nope"), entity.ErrValidation)
}
