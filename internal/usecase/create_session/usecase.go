package create_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	budgetClient "github.com/m04kA/SMC-SessionService/internal/integrations/budgetservice"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/duration"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/notes"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// UseCase use case для создания сессии
type UseCase struct {
	sessionRepo  SessionRepository
	factory      StrategyFactory
	budgetClient BudgetServiceClient
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	factory StrategyFactory,
	budgetClient BudgetServiceClient,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		factory:      factory,
		budgetClient: budgetClient,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// plan итог расчета сессии до сохранения
type plan struct {
	start    types.TimeString
	hours    float64
	notes    string
	summary  string
	degraded bool
	budget   float64
}

// Execute выполняет use case создания сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.TrainerChoice == "" {
		req.TrainerChoice = domain.TrainerChoiceAny
	}

	uc.logger.Info("CreateSession: user=%d, mode=%s, date=%s, time=%s",
		req.UserID, req.Mode, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateSession: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем остаток часов пользователя
	remaining, degraded, err := uc.remainingHours(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Рассчитываем маршрут, длительность и заметки
	p := plan{degraded: degraded, budget: remaining}
	st, hasItinerary := uc.factory.Get(req.Mode)
	if hasItinerary {
		// 4.1. Применяем поля поверх пустого маршрута режима
		data := store.Patch(st.InitializeData(req.ParentAddress), store.Conform(st.Template, req.Itinerary))

		// 4.2. Маршрут должен быть заполнен полностью
		result := st.Validate(data)
		if !result.Valid {
			uc.logger.Warn("CreateSession: itinerary for mode=%s is incomplete: %v", req.Mode, result.MissingFields)
			return nil, &IncompleteItineraryError{MissingFields: result.MissingFields}
		}

		// 4.3. Длительность ограничена остатком часов
		p.hours = st.CalculateDuration(data, remaining)

		// 4.4. Время начала по умолчанию - время выезда
		p.start = req.StartTime
		if req.StartTime.IsZero() {
			p.start = st.GetEffectivePickupTime(data)
		}

		// 4.5. Блок маршрута дописывается к свободным заметкам
		codec, ok := notes.ForMode(req.Mode)
		if !ok {
			uc.logger.Error("CreateSession: no notes codec for mode=%s", req.Mode)
			return nil, fmt.Errorf("%w: no notes codec for mode %s", ErrInternal, req.Mode)
		}
		p.notes = codec.Format(data, notes.ExtractAdditionalNotes(req.Notes))
		p.summary = st.PreviewSummary(data)
	} else {
		// Режим без маршрута: проверки маршрута пропускаются, заметки сохраняются как есть
		if req.DurationHours == nil {
			return nil, fmt.Errorf("%w: durationHours is required for mode %s", ErrInvalidInput, req.Mode)
		}
		p.hours = duration.Clamp(*req.DurationHours, remaining)
		p.start = req.StartTime
		p.notes = req.Notes
	}

	if p.start.IsZero() {
		uc.logger.Warn("CreateSession: start time is unknown for mode=%s", req.Mode)
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	return uc.persist(ctx, req, p)
}

// remainingHours возвращает остаток часов и признак graceful degradation
func (uc *UseCase) remainingHours(ctx context.Context, userID int64) (float64, bool, error) {
	hours, err := uc.budgetClient.GetRemainingHoursWithGracefulDegradation(ctx, userID)
	switch {
	case err == nil:
		return hours, false, nil
	case errors.Is(err, budgetClient.ErrUserNotFound):
		uc.logger.Warn("CreateSession: user id=%d has no hours package", userID)
		return 0, false, ErrNoHoursPackage
	case errors.Is(err, budgetClient.ErrServiceDegraded):
		uc.logger.Warn("CreateSession: using default remaining hours=%.2f for user id=%d", hours, userID)
		uc.metrics.ObserveBudgetDegraded()
		return hours, true, nil
	default:
		uc.logger.Error("CreateSession: failed to get remaining hours for user id=%d: %v", userID, err)
		return 0, false, fmt.Errorf("%w: failed to get remaining hours: %v", ErrInternal, err)
	}
}

func (uc *UseCase) persist(ctx context.Context, req *Request, p plan) (*Response, error) {
	start, err := types.NewTimeStringFromString(p.start.String())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, p.start)
	}

	end, err := endTime(start, p.hours)
	if err != nil {
		uc.logger.Warn("CreateSession: %v", err)
		return nil, err
	}

	activityIDs := req.SelectedActivityIDs
	if activityIDs == nil {
		activityIDs = []int64{}
	}
	custom := req.CustomActivities
	if custom == nil {
		custom = []string{}
	}

	var trainerID *int64
	if req.TrainerChoice == domain.TrainerChoiceSpecific {
		trainerID = req.TrainerID
	}

	session := &domain.Session{
		UserID:              req.UserID,
		Mode:                req.Mode,
		Date:                req.Date,
		StartTime:           start,
		DurationHours:       p.hours,
		EndTime:             end,
		SelectedActivityIDs: activityIDs,
		CustomActivities:    custom,
		TrainerChoice:       req.TrainerChoice,
		TrainerID:           trainerID,
		Notes:               p.notes,
	}

	created, err := uc.sessionRepo.Create(ctx, session)
	if err != nil {
		uc.logger.Error("CreateSession: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	uc.metrics.ObserveSessionCreated(req.Mode.String())
	uc.logger.Info("CreateSession: successfully created session id=%d, duration=%.2fh", created.ID, created.DurationHours)

	return &Response{
		ID:                  created.ID,
		UserID:              created.UserID,
		Mode:                created.Mode,
		Date:                created.Date,
		StartTime:           created.StartTime,
		EndTime:             created.EndTime,
		DurationHours:       created.DurationHours,
		RemainingHours:      p.budget,
		BudgetDegraded:      p.degraded,
		SelectedActivityIDs: created.SelectedActivityIDs,
		CustomActivities:    created.CustomActivities,
		TrainerChoice:       created.TrainerChoice,
		TrainerID:           created.TrainerID,
		Notes:               created.Notes,
		Summary:             p.summary,
		CreatedAt:           created.CreatedAt,
		UpdatedAt:           created.UpdatedAt,
	}, nil
}
