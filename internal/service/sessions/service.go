package sessions

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SessionService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/notes"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/internal/service/sessions/models"
)

// Service сервис для работы с сохраненными сессиями
type Service struct {
	sessionRepo SessionRepository
	factory     StrategyFactory
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	factory StrategyFactory,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		factory:     factory,
		logger:      logger,
	}
}

// GetUserSessions получает историю сессий пользователя
func (s *Service) GetUserSessions(ctx context.Context, userID int64) (*models.SessionListResponse, error) {
	s.logger.Info("GetUserSessions: fetching sessions for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	list, err := s.sessionRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserSessions: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserSessions: successfully fetched %d sessions for user=%d", len(list), userID)
	return models.FromDomainSessionList(list), nil
}

// UpdateItinerary перезаписывает блок маршрута в заметках сессии
// Время и длительность сессии не меняются: они согласованы с бюджетом при создании
func (s *Service) UpdateItinerary(ctx context.Context, req *models.UpdateItineraryRequest) (*models.SessionResponse, error) {
	s.logger.Info("UpdateItinerary: session=%d, user=%d", req.SessionID, req.UserID)

	if utf8.RuneCountInString(req.Notes) > domain.MaxFreeformNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxFreeformNotesLength)
	}

	// Получаем сессию
	session, err := s.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("UpdateItinerary: session id=%d not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("UpdateItinerary: repository error for session id=%d: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: UpdateItinerary - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !session.BelongsTo(req.UserID) {
		s.logger.Warn("UpdateItinerary: access denied for user=%d to session id=%d", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	st, ok := s.factory.Get(session.Mode)
	codec, hasCodec := notes.ForMode(session.Mode)
	if !ok || !hasCodec {
		s.logger.Warn("UpdateItinerary: mode=%s of session id=%d has no itinerary", session.Mode, session.ID)
		return nil, fmt.Errorf("%w: %s", ErrModeNotSupported, session.Mode)
	}

	// Маршрут применяется поверх пустого, как при создании сессии
	data := store.Patch(st.InitializeData(""), store.Conform(st.Template, req.Itinerary))
	if result := st.Validate(data); !result.Valid {
		s.logger.Warn("UpdateItinerary: incomplete itinerary for session id=%d: %v", session.ID, result.MissingFields)
		return nil, &IncompleteItineraryError{MissingFields: result.MissingFields}
	}

	formatted := codec.Format(data, notes.ExtractAdditionalNotes(req.Notes))
	if err := s.sessionRepo.UpdateNotes(ctx, session.ID, formatted); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("UpdateItinerary: failed to update notes for session id=%d: %v", session.ID, err)
		return nil, fmt.Errorf("%w: UpdateItinerary - repository error: %v", ErrInternal, err)
	}

	session.Notes = formatted
	s.logger.Info("UpdateItinerary: session id=%d itinerary updated", session.ID)
	return models.FromDomainSession(session), nil
}
