package models

import (
	"encoding/json"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/disclosure"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/duration"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/records"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/strategy"
	"github.com/m04kA/SMC-SessionService/internal/itinerary/validation"
	"github.com/m04kA/SMC-SessionService/pkg/types"
)

// Request модели

// InitializeRequest запрос на пустой маршрут режима
type InitializeRequest struct {
	Mode          domain.Mode
	ParentAddress string
	// Prefill значения полей из строки запроса; поля, которых нет в шаблоне, игнорируются
	Prefill map[string]string
}

// PreviewRequest запрос на пересчет маршрута после изменения полей
type PreviewRequest struct {
	Mode          domain.Mode          `json:"-"`
	ParentAddress string               `json:"parentAddress,omitempty"`
	Current       domain.ItineraryData `json:"current"`
	Patch         domain.ItineraryData `json:"patch"`
	// PreviousMode режим, в котором заполнялся Current; при смене режима совпадающие поля переносятся
	PreviousMode domain.Mode `json:"previousMode,omitempty"`
	// Record типизированный маршрут режима; применяется перед Patch
	Record json.RawMessage `json:"record,omitempty"`
	// RemainingHours остаток часов пользователя; если не указан, используется значение по умолчанию
	RemainingHours *float64          `json:"remainingHours,omitempty"`
	Disclosure     *disclosure.State `json:"disclosure,omitempty"`
	// OpenSection секция, которую пользователь раскрыл вручную
	OpenSection string `json:"openSection,omitempty"`
}

// ResetRequest запрос на очистку маршрута для следующего бронирования
type ResetRequest struct {
	Mode              domain.Mode          `json:"-"`
	Itinerary         domain.ItineraryData `json:"itinerary"`
	KeepPickupAddress bool                 `json:"keepPickupAddress"`
}

// FormatNotesRequest запрос на сериализацию маршрута в заметки
type FormatNotesRequest struct {
	Mode      domain.Mode          `json:"-"`
	Itinerary domain.ItineraryData `json:"itinerary"`
	Notes     string               `json:"notes"`
}

// ParseNotesRequest запрос на разбор заметок; пустой Mode означает автоопределение по заголовку
type ParseNotesRequest struct {
	Mode  domain.Mode `json:"-"`
	Notes string      `json:"notes"`
}

// Response модели

// ModeResponse описание режима бронирования
type ModeResponse struct {
	Key      string        `json:"key"`
	Meta     strategy.Meta `json:"meta"`
	Sections []string      `json:"sections"`
	Fields   []string      `json:"fields"`
}

// ModeListResponse список режимов
type ModeListResponse struct {
	Modes []ModeResponse `json:"modes"`
}

// InitializeResponse пустой маршрут режима
type InitializeResponse struct {
	Mode       string               `json:"mode"`
	Itinerary  domain.ItineraryData `json:"itinerary"`
	Disclosure disclosure.State     `json:"disclosure"`
}

// PreviewResponse результат пересчета маршрута
type PreviewResponse struct {
	Mode                string               `json:"mode"`
	Itinerary           domain.ItineraryData `json:"itinerary"`
	Validation          validation.Result    `json:"validation"`
	Sections            map[string]bool      `json:"sections"`
	Disclosure          disclosure.State     `json:"disclosure"`
	DurationHours       float64              `json:"durationHours"`
	Breakdown           BreakdownResponse    `json:"breakdown"`
	PickupSuggestions   []string             `json:"pickupSuggestions"`
	EffectivePickupTime string               `json:"effectivePickupTime"`
	Summary             string               `json:"summary"`
}

// BreakdownResponse составляющие расчета длительности (до ограничения бюджетом)
type BreakdownResponse struct {
	OnSite   float64 `json:"onSite"`
	Outbound float64 `json:"outbound"`
	Return   float64 `json:"return"`
	Total    float64 `json:"total"`
}

// FormatNotesResponse заметки с блоком маршрута
type FormatNotesResponse struct {
	Notes string `json:"notes"`
}

// ParseNotesResponse результат разбора заметок
type ParseNotesResponse struct {
	Mode            string               `json:"mode,omitempty"`
	Recognized      bool                 `json:"recognized"`
	Itinerary       domain.ItineraryData `json:"itinerary"`
	Record          records.Record       `json:"record,omitempty"`
	AdditionalNotes string               `json:"additionalNotes"`
}

// FromBreakdown конвертирует расчет длительности в ответ
func FromBreakdown(b duration.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		OnSite:   b.OnSite,
		Outbound: b.Outbound,
		Return:   b.Return,
		Total:    b.Total(),
	}
}

// FromTimeStrings конвертирует список времени в строки
func FromTimeStrings(times []types.TimeString) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}

// FromStrategy конвертирует стратегию в описание режима
func FromStrategy(s *strategy.Strategy) ModeResponse {
	keys := s.Template.Keys()
	fields := make([]string, len(keys))
	for i, key := range keys {
		fields[i] = string(key)
	}

	return ModeResponse{
		Key:      s.Key.String(),
		Meta:     s.Meta,
		Sections: s.SectionNames(),
		Fields:   fields,
	}
}
