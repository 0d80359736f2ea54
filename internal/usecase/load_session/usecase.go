package load_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SessionService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/notes"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/records"
)

// UseCase use case загрузки сессии для редактирования
type UseCase struct {
	sessionRepo SessionRepository
	factory     StrategyFactory
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	factory StrategyFactory,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		factory:     factory,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute загружает сессию и разбирает её заметки на маршрут и свободный текст
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadSession: session=%d, user=%d", req.SessionID, req.UserID)

	if req.SessionID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: sessionID and userID must be positive", ErrInvalidInput)
	}

	// 1. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("LoadSession: session id=%d not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("LoadSession: failed to get session id=%d: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа
	if !session.BelongsTo(req.UserID) {
		uc.logger.Warn("LoadSession: access denied for user=%d to session id=%d", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	resp := &Response{
		Session:         session,
		Itinerary:       domain.NewItineraryData(),
		AdditionalNotes: session.Notes,
	}

	// 3. Выбираем кодек: по режиму сессии, для старых записей - по заголовку
	codec, ok := notes.ForMode(session.Mode)
	if !ok {
		codec, ok = notes.Detect(session.Notes)
	}
	if !ok {
		uc.metrics.ObserveNotesParsed(session.Mode.String(), false)
		return resp, nil
	}

	// 4. Разбираем заметки
	parsed := codec.Parse(session.Notes)
	uc.metrics.ObserveNotesParsed(codec.Mode().String(), parsed.Recognized)

	resp.Recognized = parsed.Recognized
	resp.Itinerary = parsed.Data
	resp.AdditionalNotes = parsed.AdditionalNotes

	if parsed.Recognized {
		record, err := records.FromData(codec.Mode(), parsed.Data)
		if err != nil {
			uc.logger.Error("LoadSession: failed to build record for mode=%s: %v", codec.Mode(), err)
			return nil, fmt.Errorf("%w: failed to build record: %v", ErrInternal, err)
		}
		resp.Record = record
	}

	// 5. Старые сессии могут содержать неполный маршрут - сообщаем, что нужно дозаполнить
	if st, ok := uc.factory.Get(codec.Mode()); ok {
		result := st.Validate(parsed.Data)
		resp.Validation = &result
	}

	uc.logger.Info("LoadSession: session id=%d loaded, itinerary recognized=%t", session.ID, parsed.Recognized)
	return resp, nil
}
