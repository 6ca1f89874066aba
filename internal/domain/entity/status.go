package entity

import (
	"fmt"
	"strings"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin    UserRole = "Admin"
	UserRoleReporter UserRole = "Reporter"
	UserRoleUser     UserRole = "User"
)

var UserRoles = []UserRole{UserRoleAdmin, UserRoleReporter, UserRoleUser}

func DefaultRole() UserRole {
	return UserRoleUser
}

func (r UserRole) IsValid() bool { return oneOf(r, UserRoles) }

// UserStatus is the account lifecycle of a user.
type UserStatus string

const (
	UserStatusPending  UserStatus = "Pending"
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
	UserStatusBanned   UserStatus = "Banned"
)

var UserStatuses = []UserStatus{UserStatusPending, UserStatusActive, UserStatusInactive, UserStatusBanned}

func (s UserStatus) IsValid() bool { return oneOf(s, UserStatuses) }

// NewsCategory is the fixed set of sections an article can be filed under.
type NewsCategory string

const (
	NewsCategoryLocal         NewsCategory = "Local"
	NewsCategoryBusiness      NewsCategory = "Business"
	NewsCategoryLifestyle     NewsCategory = "Lifestyle"
	NewsCategoryHealth        NewsCategory = "Health"
	NewsCategorySports        NewsCategory = "Sports"
	NewsCategoryTechnology    NewsCategory = "Technology"
	NewsCategoryWorld         NewsCategory = "World"
	NewsCategoryPolitics      NewsCategory = "Politics"
	NewsCategoryEntertainment NewsCategory = "Entertainment"
)

var NewsCategories = []NewsCategory{
	NewsCategoryLocal, NewsCategoryBusiness, NewsCategoryLifestyle,
	NewsCategoryHealth, NewsCategorySports, NewsCategoryTechnology,
	NewsCategoryWorld, NewsCategoryPolitics, NewsCategoryEntertainment,
}

func (c NewsCategory) IsValid() bool { return oneOf(c, NewsCategories) }

// NewsStatus is the review state of an article.
type NewsStatus string

const (
	NewsStatusPending   NewsStatus = "Pending"
	NewsStatusPublished NewsStatus = "Published"
	NewsStatusRejected  NewsStatus = "Rejected"
)

var NewsStatuses = []NewsStatus{NewsStatusPending, NewsStatusPublished, NewsStatusRejected}

func (s NewsStatus) IsValid() bool { return oneOf(s, NewsStatuses) }

type CommunityType string

const (
	CommunityTypePublic  CommunityType = "Public"
	CommunityTypePrivate CommunityType = "Private"
)

var CommunityTypes = []CommunityType{CommunityTypePublic, CommunityTypePrivate}

func (t CommunityType) IsValid() bool { return oneOf(t, CommunityTypes) }

type CommunityStatus string

const (
	CommunityStatusActive    CommunityStatus = "Active"
	CommunityStatusHidden    CommunityStatus = "Hidden"
	CommunityStatusDissolved CommunityStatus = "Dissolved"
)

var CommunityStatuses = []CommunityStatus{CommunityStatusActive, CommunityStatusHidden, CommunityStatusDissolved}

func (s CommunityStatus) IsValid() bool { return oneOf(s, CommunityStatuses) }

type PostType string

const (
	PostTypePublic PostType = "Public"
	PostTypeFollow PostType = "Follow"
	PostTypeJoin   PostType = "Join"
)

var PostTypes = []PostType{PostTypePublic, PostTypeFollow, PostTypeJoin}

func (t PostType) IsValid() bool { return oneOf(t, PostTypes) }

// EventStatus is stored as written; it is never derived from the event date.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "Upcoming"
	EventStatusPast     EventStatus = "Past"
)

var EventStatuses = []EventStatus{EventStatusUpcoming, EventStatusPast}

func (s EventStatus) IsValid() bool { return oneOf(s, EventStatuses) }

type EventType string

const (
	EventTypeCommunity EventType = "Community"
	EventTypeReporter  EventType = "Reporter"
)

var EventTypes = []EventType{EventTypeCommunity, EventTypeReporter}

func (t EventType) IsValid() bool { return oneOf(t, EventTypes) }

type ReportStatus string

const (
	ReportStatusPending       ReportStatus = "Pending"
	ReportStatusInvestigating ReportStatus = "Investigating"
	ReportStatusResolved      ReportStatus = "Resolved"
	ReportStatusDismissed     ReportStatus = "Dismissed"
)

var ReportStatuses = []ReportStatus{ReportStatusPending, ReportStatusInvestigating, ReportStatusResolved, ReportStatusDismissed}

func (s ReportStatus) IsValid() bool { return oneOf(s, ReportStatuses) }

type ReportSeverity string

const (
	ReportSeverityLow    ReportSeverity = "Low"
	ReportSeverityMedium ReportSeverity = "Medium"
	ReportSeverityHigh   ReportSeverity = "High"
)

var ReportSeverities = []ReportSeverity{ReportSeverityLow, ReportSeverityMedium, ReportSeverityHigh}

func (s ReportSeverity) IsValid() bool { return oneOf(s, ReportSeverities) }

// ParseEnum converts raw into T, failing with a *ValidationError naming field when raw is
// not one of allowed.
func ParseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	v := T(raw)
	if !oneOf(v, allowed) {
		return v, NewValidationError(field, fmt.Sprintf("`%s` is not a valid enum value for path `%s`. Allowed: %s", raw, field, joinValues(allowed)))
	}
	return v, nil
}

func oneOf[T ~string](v T, allowed []T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func ParseUserStatus(raw string) (UserStatus, error) {
	return ParseEnum("status", raw, UserStatuses)
}

func ParseNewsStatus(raw string) (NewsStatus, error) {
	return ParseEnum("status", raw, NewsStatuses)
}

func ParseCommunityStatus(raw string) (CommunityStatus, error) {
	return ParseEnum("status", raw, CommunityStatuses)
}

func ParseEventStatus(raw string) (EventStatus, error) {
	return ParseEnum("status", raw, EventStatuses)
}

func ParseEventType(raw string) (EventType, error) {
	return ParseEnum("type", raw, EventTypes)
}

func ParseReportStatus(raw string) (ReportStatus, error) {
	return ParseEnum("status", raw, ReportStatuses)
}
