package budgetservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с BudgetService
type Client struct {
	baseURL      string
	httpClient   *http.Client
	defaultHours float64
	log          Logger
}

// NewClient создает новый экземпляр клиента BudgetService
// defaultHours возвращается при недоступности сервиса
func NewClient(baseURL string, timeout time.Duration, defaultHours float64, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		defaultHours: defaultHours,
		log:          log,
	}
}

// GetRemainingHours получает остаток оплаченных часов пользователя
func (c *Client) GetRemainingHours(ctx context.Context, userID int64) (float64, error) {
	url := fmt.Sprintf("%s/internal/users/%d/remaining-hours", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return 0, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return 0, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var result RemainingHours
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.RemainingHours < 0 {
		return 0, fmt.Errorf("%w: negative remaining hours %v", ErrInvalidResponse, result.RemainingHours)
	}

	return result.RemainingHours, nil
}

// GetRemainingHoursWithGracefulDegradation получает остаток часов с graceful degradation
// При недоступности BudgetService возвращает остаток по умолчанию вместе с ErrServiceDegraded,
// чтобы вызывающий код мог продолжить работу и зафиксировать деградацию
func (c *Client) GetRemainingHoursWithGracefulDegradation(ctx context.Context, userID int64) (float64, error) {
	c.log.Info("Fetching remaining hours for user_id=%d", userID)

	hours, err := c.GetRemainingHours(ctx, userID)
	if err != nil {
		// Отсутствие пакета часов - бизнес-ошибка, пробрасываем её дальше
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("No hours package found for user_id=%d", userID)
			return 0, err
		}

		c.log.Error("BudgetService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return c.defaultHours, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched remaining hours for user_id=%d: %.2f", userID, hours)
	return hours, nil
}
