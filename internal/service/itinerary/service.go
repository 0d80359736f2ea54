package itinerary

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/disclosure"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/notes"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/records"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/store"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/templates"
	"github.com/m04kA/SMC-SessionService/internal/service/itinerary/models"
)

// Service сервис расчета маршрута для форм бронирования
// Не хранит состояние: каждый вызов работает только с переданными данными
type Service struct {
	factory               StrategyFactory
	metrics               MetricsRecorder
	defaultRemainingHours float64
	logger                Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(
	factory StrategyFactory,
	metrics MetricsRecorder,
	defaultRemainingHours float64,
	logger Logger,
) *Service {
	return &Service{
		factory:               factory,
		metrics:               metrics,
		defaultRemainingHours: defaultRemainingHours,
		logger:                logger,
	}
}

// Modes возвращает все режимы с маршрутом в порядке отображения
func (s *Service) Modes(ctx context.Context) *models.ModeListResponse {
	list := s.factory.List()

	modes := make([]models.ModeResponse, 0, len(list))
	for _, st := range list {
		modes = append(modes, models.FromStrategy(st))
	}

	return &models.ModeListResponse{Modes: modes}
}

// Initialize возвращает пустой маршрут режима с адресом родителя в качестве адреса выезда
func (s *Service) Initialize(ctx context.Context, req *models.InitializeRequest) (*models.InitializeResponse, error) {
	st, err := s.strategy(req.Mode)
	if err != nil {
		return nil, err
	}

	data := st.InitializeData(strings.TrimSpace(req.ParentAddress))
	if len(req.Prefill) > 0 {
		data = store.Patch(data, store.FromStrings(st.Template, req.Prefill))
	}

	return &models.InitializeResponse{
		Mode:       req.Mode.String(),
		Itinerary:  data,
		Disclosure: disclosure.Initial(st.SectionNames()),
	}, nil
}

// ResetForNextBooking очищает время и адреса после успешного бронирования
// Названия, флаги и (по запросу) адрес выезда сохраняются
func (s *Service) ResetForNextBooking(ctx context.Context, req *models.ResetRequest) (*models.InitializeResponse, error) {
	st, err := s.strategy(req.Mode)
	if err != nil {
		return nil, err
	}

	data := store.Patch(st.InitializeData(""), store.Conform(st.Template, req.Itinerary))

	return &models.InitializeResponse{
		Mode:       req.Mode.String(),
		Itinerary:  store.ResetForNextBooking(st.Template, data, req.KeepPickupAddress),
		Disclosure: disclosure.Initial(st.SectionNames()),
	}, nil
}

// Preview применяет изменения к маршруту и пересчитывает всё, что от него зависит
func (s *Service) Preview(ctx context.Context, req *models.PreviewRequest) (*models.PreviewResponse, error) {
	// 1. Находим стратегию режима
	st, err := s.strategy(req.Mode)
	if err != nil {
		return nil, err
	}

	remaining := s.defaultRemainingHours
	if req.RemainingHours != nil {
		if *req.RemainingHours < 0 {
			return nil, fmt.Errorf("%w: remainingHours must not be negative", ErrInvalidInput)
		}
		remaining = *req.RemainingHours
	}

	// 2. Применяем изменения к текущему маршруту
	// Ключи вне шаблона режима отбрасываются, флаги приводятся к bool
	parent := strings.TrimSpace(req.ParentAddress)
	var current domain.ItineraryData
	if req.PreviousMode != "" && req.PreviousMode != req.Mode {
		// Смена режима: переносим поля, общие для обоих шаблонов
		current = store.Reinitialize(st.Template, req.Current, parent)
	} else {
		current = store.Patch(st.InitializeData(parent), store.Conform(st.Template, req.Current))
	}

	patch := store.Conform(st.Template, req.Patch)
	if len(req.Record) > 0 {
		record, err := records.Decode(req.Mode, req.Record)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		patch = record.ToData().Merge(patch)
	}
	data := store.Patch(current, patch)

	// 3. Проверяем заполненность
	result := st.Validate(data)
	sections := st.SectionValidations(data)
	s.metrics.ObserveValidation(req.Mode.String(), result.Valid)

	// 4. Состояние мастера формы
	order := st.SectionNames()
	prev := disclosure.Initial(order)
	if req.Disclosure != nil {
		prev = *req.Disclosure
	}
	state := disclosure.Next(prev, order, sections)
	if req.OpenSection != "" {
		opened, ok := disclosure.Open(state, req.OpenSection)
		if !ok {
			s.logger.Warn("Preview: section=%s is not available for mode=%s", req.OpenSection, req.Mode)
		}
		state = opened
	}

	// 5. Длительность и время выезда
	hours := st.CalculateDuration(data, remaining)
	s.metrics.ObserveEstimate(req.Mode.String())

	return &models.PreviewResponse{
		Mode:                req.Mode.String(),
		Itinerary:           data,
		Validation:          result,
		Sections:            sections,
		Disclosure:          state,
		DurationHours:       hours,
		Breakdown:           models.FromBreakdown(st.DurationBreakdown(data)),
		PickupSuggestions:   models.FromTimeStrings(st.GetPickupSuggestions(data)),
		EffectivePickupTime: st.GetEffectivePickupTime(data).String(),
		Summary:             st.PreviewSummary(data),
	}, nil
}

// FormatNotes дописывает блок маршрута к свободным заметкам
func (s *Service) FormatNotes(ctx context.Context, req *models.FormatNotesRequest) (*models.FormatNotesResponse, error) {
	codec, ok := notes.ForMode(req.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModeNotSupported, req.Mode)
	}

	tpl, _ := templates.GetTemplateForMode(req.Mode)

	// Старый блок маршрута в свободных заметках не дублируем
	freeform := notes.ExtractAdditionalNotes(req.Notes)
	if utf8.RuneCountInString(freeform) > domain.MaxFreeformNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxFreeformNotesLength)
	}

	return &models.FormatNotesResponse{
		Notes: codec.Format(store.Conform(tpl, req.Itinerary), freeform),
	}, nil
}

// ParseNotes восстанавливает маршрут и свободные заметки из текста
// Если режим не указан, он определяется по заголовку блока
func (s *Service) ParseNotes(ctx context.Context, req *models.ParseNotesRequest) (*models.ParseNotesResponse, error) {
	var (
		codec *notes.Codec
		ok    bool
	)
	if req.Mode == "" {
		codec, ok = notes.Detect(req.Notes)
		if !ok {
			// Заметки без блока маршрута: весь текст остается свободными заметками
			s.metrics.ObserveNotesParsed("unknown", false)
			return &models.ParseNotesResponse{
				Itinerary:       domain.NewItineraryData(),
				AdditionalNotes: req.Notes,
			}, nil
		}
	} else {
		codec, ok = notes.ForMode(req.Mode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrModeNotSupported, req.Mode)
		}
	}

	parsed := codec.Parse(req.Notes)
	s.metrics.ObserveNotesParsed(codec.Mode().String(), parsed.Recognized)

	resp := &models.ParseNotesResponse{
		Mode:            codec.Mode().String(),
		Recognized:      parsed.Recognized,
		Itinerary:       parsed.Data,
		AdditionalNotes: parsed.AdditionalNotes,
	}

	if parsed.Recognized {
		record, err := records.FromData(codec.Mode(), parsed.Data)
		if err != nil {
			s.logger.Error("ParseNotes: failed to build record for mode=%s: %v", codec.Mode(), err)
			return nil, fmt.Errorf("%w: ParseNotes - build record: %v", ErrInternal, err)
		}
		resp.Record = record
	}

	return resp, nil
}

func (s *Service) strategy(mode domain.Mode) (*strategy.Strategy, error) {
	st, ok := s.factory.Get(mode)
	if !ok {
		s.logger.Warn("mode=%s has no itinerary", mode)
		return nil, fmt.Errorf("%w: %s", ErrModeNotSupported, mode)
	}
	return st, nil
}
