package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// ModerationUseCase queues and resolves moderation reports.
type ModerationUseCase struct {
	reportRepo    contract.IModerationRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	hooks         writeHooks
	now           func() time.Time
}

func NewModerationUseCase(
	reportRepo contract.IModerationRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	activity usecasecontract.IActivityRecorder,
	analytics cacheInvalidator,
) *ModerationUseCase {
	return &ModerationUseCase{
		reportRepo:    reportRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		hooks:         writeHooks{activity: activity, analytics: analytics},
		now:           time.Now,
	}
}

var _ usecasecontract.IModerationUseCase = (*ModerationUseCase)(nil)

func (uc *ModerationUseCase) CreateReport(ctx context.Context, in usecasecontract.CreateReportInput) (*entity.ModerationReport, error) {
	status := entity.ReportStatusPending
	if in.Status != "" {
		parsed, err := entity.ParseReportStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	severity := entity.ReportSeverityLow
	if in.Severity != "" {
		parsed, err := entity.ParseEnum("severity", in.Severity, entity.ReportSeverities)
		if err != nil {
			return nil, err
		}
		severity = parsed
	}
	reporter := in.Reporter
	if reporter == "" {
		reporter = entity.ActorFromContext(ctx)
	}

	now := uc.now()
	report := &entity.ModerationReport{
		ID:            uc.uuidGenerator.NewUUID(),
		Type:          in.Type,
		TargetContent: in.TargetContent,
		Reporter:      reporter,
		Status:        status,
		Severity:      severity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	uc.hooks.done(ctx, "Report Submitted", fmt.Sprintf("%s report (%s) by %s", report.Type, report.Severity, report.Reporter))
	return report, nil
}

func (uc *ModerationUseCase) GetReports(ctx context.Context) ([]*entity.ModerationReport, error) {
	return uc.reportRepo.GetReports(ctx)
}

func (uc *ModerationUseCase) UpdateReportStatus(ctx context.Context, id, status string) (*entity.ModerationReport, error) {
	target, err := entity.ParseReportStatus(status)
	if err != nil {
		return nil, err
	}
	report, err := uc.reportRepo.UpdateReportStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "Report "+string(report.Status), fmt.Sprintf("%s report set to %s", report.Type, report.Status))
	return report, nil
}
