package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SessionService/internal/api/handlers"
	"github.com/m04kA/SMC-SessionService/internal/api/middleware"
	createSession "github.com/m04kA/SMC-SessionService/internal/usecase/create_session"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты (YYYY-MM-DD) или времени начала (HH:MM)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgItineraryIncomplete  = "маршрут заполнен не полностью"
	msgNoHoursPackage       = "у пользователя нет оплаченных часов"
	msgInvalidSessionDate   = "дата сессии в прошлом"
	msgInvalidSessionParams = "некорректные параметры сессии"
)

type Handler struct {
	useCase CreateSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var incomplete *createSession.IncompleteItineraryError
		switch {
		case errors.As(err, &incomplete):
			h.logger.Warn("POST /sessions - Itinerary incomplete: user_id=%d, mode=%s, missing=%v",
				userID, req.Mode, incomplete.MissingFields)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, IncompleteItineraryResponse{
				Code:          http.StatusUnprocessableEntity,
				Message:       msgItineraryIncomplete,
				MissingFields: incomplete.MissingFields,
			})

		case errors.Is(err, createSession.ErrNoHoursPackage):
			h.logger.Warn("POST /sessions - No hours package: user_id=%d", userID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgNoHoursPackage)

		case errors.Is(err, createSession.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Session date in the past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidSessionDate)

		case errors.Is(err, createSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSessionParams)

		default:
			h.logger.Error("POST /sessions - Failed to create session: user_id=%d, mode=%s, error=%v",
				userID, req.Mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions - Session created successfully: session_id=%d, user_id=%d, mode=%s",
		result.ID, userID, result.Mode)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
