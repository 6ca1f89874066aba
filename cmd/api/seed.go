package main

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/database"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

const seedPassword = "Password123!"

// runSeed rebuilds the demo data set through the usecases so that defaults,
// validation and activity logging match what the API would produce.
func runSeed(ctx context.Context) error {
	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := database.ResetContent(ctx, app.db, string(entity.UserRoleAdmin)); err != nil {
		return err
	}
	app.analytics.Invalidate(ctx)

	if email := app.config.GetAdminEmail(); email != "" {
		if err := app.bootstrapAdmin(ctx, app.config.GetAdminName(), email, app.config.GetAdminPassword()); err != nil {
			return err
		}
	}

	ctx = entity.WithSession(ctx, entity.Session{Role: entity.UserRoleAdmin, FullName: "Seeder"})

	users := make([]*entity.User, 0, 3)
	for _, in := range []usecasecontract.RegisterInput{
		{
			FullName: "Sarah Connor",
			Email:    "sarah@reporter.com",
			Role:     "Reporter",
			Status:   "Active",
			Bio:      "Experienced local news reporter covering social issues.",
			Address:  "Los Angeles, CA",
			Position: "Senior Reporter",
		},
		{
			FullName: "John Doe",
			Email:    "john@reporter.com",
			Role:     "Reporter",
			Status:   "Pending",
			Bio:      "Tech enthusiast looking to cover gadget launches.",
			Address:  "New York, NY",
			Position: "Freelance Journalist",
		},
		{
			FullName: "Alice Johnson",
			Email:    "alice@user.com",
			Role:     "User",
			Status:   "Active",
			Address:  "Chicago, IL",
		},
	} {
		in.Password = seedPassword
		user, err := app.users.Register(ctx, in)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", in.Email, err)
		}
		users = append(users, user)
	}
	app.logger.Infof("Users seeded.")
	sarah, john, alice := users[0], users[1], users[2]

	for _, in := range []usecasecontract.CreateNewsInput{
		{
			Title:    "New Community Library Opens",
			Content:  "The city has officially opened its largest library wing to date, offering over 50,000 new books.",
			Author:   sarah.FullName,
			Category: "Local",
			Status:   "Published",
		},
		{
			Title:    "Tech Merger Shakes Market",
			Content:  "Two of the biggest tech giants have announced a surprise merger, causing stock prices to soar.",
			Author:   "Admin",
			Category: "Business",
			Status:   "Pending",
		},
		{
			Title:    "Local Sports Final Tonight",
			Content:  "The regional football finals are set to kick off tonight at 8 PM at the City Stadium.",
			Author:   sarah.FullName,
			Category: "Sports",
			Status:   "Published",
		},
	} {
		if _, err := app.news.CreateNews(ctx, in); err != nil {
			return fmt.Errorf("seed news %q: %w", in.Title, err)
		}
	}
	app.logger.Infof("News seeded.")

	for _, in := range []usecasecontract.CreateCommunityInput{
		{
			Name:        "Tech Enthusiasts",
			Description: "A place for everyone who loves gadgets and coding.",
			Type:        "Public",
			Status:      "Active",
			Members:     []string{sarah.ID, john.ID},
		},
		{
			Name:        "Local Farmers Market",
			Description: "Connecting local growers with the community.",
			Type:        "Public",
			Status:      "Active",
			Members:     []string{alice.ID},
		},
		{
			Name:        "Press Circle",
			Description: "Private community for verified journalists.",
			Type:        "Private",
			Status:      "Active",
			Members:     []string{sarah.ID},
		},
	} {
		if _, err := app.community.CreateCommunity(ctx, in); err != nil {
			return fmt.Errorf("seed community %s: %w", in.Name, err)
		}
	}
	app.logger.Infof("Communities seeded.")

	for _, in := range []usecasecontract.CreatePostInput{
		{
			Author:     sarah.ID,
			AuthorName: sarah.FullName,
			Community:  "Tech Enthusiasts",
			Content:    "Just tried the new M3 chip, it is incredibly fast!",
			Type:       "Public",
			Likes:      45,
			Comments:   12,
		},
		{
			Author:     alice.ID,
			AuthorName: alice.FullName,
			Community:  "Local Farmers Market",
			Content:    "The organic apples are hitting the stalls tomorrow morning!",
			Type:       "Public",
			Likes:      23,
			Comments:   5,
		},
	} {
		if _, err := app.community.CreatePost(ctx, in); err != nil {
			return fmt.Errorf("seed post in %s: %w", in.Community, err)
		}
	}
	app.logger.Infof("Posts seeded.")

	for _, in := range []usecasecontract.CreateEventInput{
		{
			Title:     "Annual Tech Meetup",
			Organizer: "Tech Enthusiasts",
			Date:      "2026-02-15",
			Location:  "Convention Center",
			Category:  "Meeting",
			Status:    "Upcoming",
			Type:      "Community",
		},
		{
			Title:     "Press Freedom Forum",
			Organizer: sarah.FullName,
			Date:      "2026-03-10",
			Location:  "Grand Hall",
			Category:  "Workshop",
			Status:    "Upcoming",
			Type:      "Reporter",
		},
		{
			Title:     "Grand Bhandara",
			Organizer: "Local Community",
			Date:      "2026-01-20",
			Location:  "City Temple",
			Category:  "Cultural",
			Status:    "Upcoming",
			Type:      "Community",
		},
	} {
		if _, err := app.events.CreateEvent(ctx, in); err != nil {
			return fmt.Errorf("seed event %q: %w", in.Title, err)
		}
	}
	app.logger.Infof("Events seeded.")

	for _, in := range []usecasecontract.CreateReportInput{
		{
			Type:          "Spam",
			TargetContent: "Comment #1234: Buy cheap watches now!",
			Reporter:      "alice_unfiltered",
			Status:        "Pending",
			Severity:      "Low",
		},
		{
			Type:          "Harassment",
			TargetContent: "User: Trolls_R_Us",
			Reporter:      "bob_the_builder",
			Status:        "Investigating",
			Severity:      "High",
		},
	} {
		if _, err := app.moderation.CreateReport(ctx, in); err != nil {
			return fmt.Errorf("seed report %s: %w", in.Type, err)
		}
	}
	app.logger.Infof("Moderation reports seeded.")
	app.logger.Infof("Seeding completed successfully!")
	return nil
}
