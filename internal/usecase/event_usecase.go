package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// accepted event date layouts, most specific first
var eventDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

type EventUseCase struct {
	eventRepo     contract.IEventRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	hooks         writeHooks
	now           func() time.Time
}

func NewEventUseCase(
	eventRepo contract.IEventRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	activity usecasecontract.IActivityRecorder,
	analytics cacheInvalidator,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:     eventRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		hooks:         writeHooks{activity: activity, analytics: analytics},
		now:           time.Now,
	}
}

var _ usecasecontract.IEventUseCase = (*EventUseCase)(nil)

func parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, entity.NewValidationError("date", "Path `date` is required.")
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, entity.NewValidationError("date", fmt.Sprintf("Cast to date failed for value %q at path `date`", raw))
}

// CreateEvent stores an event. Status is taken as given and never derived from the date.
func (uc *EventUseCase) CreateEvent(ctx context.Context, in usecasecontract.CreateEventInput) (*entity.Event, error) {
	date, err := parseEventDate(in.Date)
	if err != nil {
		return nil, err
	}
	eventType, err := entity.ParseEventType(in.Type)
	if err != nil {
		return nil, err
	}
	status := entity.EventStatusUpcoming
	if in.Status != "" {
		if status, err = entity.ParseEventStatus(in.Status); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	event := &entity.Event{
		ID:        uc.uuidGenerator.NewUUID(),
		Title:     strings.TrimSpace(in.Title),
		Organizer: in.Organizer,
		Date:      date,
		Location:  in.Location,
		Category:  in.Category,
		Status:    status,
		Type:      eventType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	uc.hooks.done(ctx, "Event Created", fmt.Sprintf("%s on %s", event.Title, event.Date.Format("2006-01-02")))
	return event, nil
}

func (uc *EventUseCase) GetEvents(ctx context.Context, eventType string) ([]*entity.Event, error) {
	if eventType == "" {
		return uc.eventRepo.GetEvents(ctx, nil)
	}
	parsed, err := entity.ParseEventType(eventType)
	if err != nil {
		return nil, err
	}
	return uc.eventRepo.GetEvents(ctx, &parsed)
}

func (uc *EventUseCase) UpdateEventStatus(ctx context.Context, id, status string) (*entity.Event, error) {
	target, err := entity.ParseEventStatus(status)
	if err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.UpdateEventStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "Event Status Updated", fmt.Sprintf("%s set to %s", event.Title, event.Status))
	return event, nil
}
