package calendarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/infra/ledger"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего календарного сервиса (booking ledger, backend = "calendar")
// Работает с REST API в стиле Google Calendar: events list/insert/patch/delete,
// extended properties для данных клиента
type Client struct {
	baseURL    string
	calendarID string
	apiToken   string
	timezone   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календарного сервиса
func NewClient(baseURL, calendarID, apiToken, timezone string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		apiToken:   apiToken,
		timezone:   timezone,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListBookings возвращает бронирования в окне [timeMin, timeMax),
// упорядоченные по времени начала
func (c *Client) ListBookings(ctx context.Context, timeMin, timeMax time.Time) ([]*domain.Appointment, error) {
	query := url.Values{}
	query.Set("timeMin", timeMin.Format(time.RFC3339))
	query.Set("timeMax", timeMax.Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	return c.listEvents(ctx, query)
}

// FindBookingsByPhone возвращает будущие бронирования клиента по номеру телефона
// Поиск идет по extended property customer_phone
func (c *Client) FindBookingsByPhone(ctx context.Context, phone string, horizonDays int) ([]*domain.Appointment, error) {
	now := time.Now()

	query := url.Values{}
	query.Set("timeMin", now.Format(time.RFC3339))
	query.Set("timeMax", now.AddDate(0, 0, horizonDays).Format(time.RFC3339))
	query.Set("privateExtendedProperty", propCustomerPhone+"="+phone)
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	return c.listEvents(ctx, query)
}

// CreateBooking создает событие и возвращает присвоенный календарем eventID
// Статус 409 от календаря означает, что окно занято (финальный арбитраж ledger'а)
func (c *Client) CreateBooking(ctx context.Context, appt *domain.Appointment) (string, error) {
	event := eventFromAppointment(appt, c.timezone)

	body, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.mapTransportError("CreateBooking", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return "", ledger.ErrEventConflict
	default:
		return "", c.unexpectedStatus("CreateBooking", resp)
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode created event: %v", ErrInvalidResponse, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: created event has empty id", ErrInvalidResponse)
	}

	appt.EventID = created.ID
	return created.ID, nil
}

// DeleteBooking удаляет событие по eventID
func (c *Client) DeleteBooking(ctx context.Context, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.mapTransportError("DeleteBooking", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return ledger.ErrEventNotFound
	default:
		return c.unexpectedStatus("DeleteBooking", resp)
	}
}

// UpdateBooking переносит событие на новое время через PATCH start/end
func (c *Client) UpdateBooking(ctx context.Context, eventID string, newStart time.Time, newDurationMinutes int) error {
	newEnd := newStart.Add(time.Duration(newDurationMinutes) * time.Minute)

	patch := Event{
		Start: EventTime{DateTime: newStart.Format(time.RFC3339), TimeZone: c.timezone},
		End:   EventTime{DateTime: newEnd.Format(time.RFC3339), TimeZone: c.timezone},
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal patch: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.mapTransportError("UpdateBooking", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return ledger.ErrEventNotFound
	case http.StatusConflict:
		return ledger.ErrEventConflict
	default:
		return c.unexpectedStatus("UpdateBooking", resp)
	}
}

func (c *Client) listEvents(ctx context.Context, query url.Values) ([]*domain.Appointment, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s",
		c.baseURL, url.PathEscape(c.calendarID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapTransportError("listEvents", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus("listEvents", resp)
	}

	var list EventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode event list: %v", ErrInvalidResponse, err)
	}

	appointments := make([]*domain.Appointment, 0, len(list.Items))
	for _, event := range list.Items {
		appt, err := event.toAppointment()
		if err != nil {
			// Событие с битыми датами пропускаем, но логируем:
			// в календаре могут лежать события, созданные не нами
			c.log.Warn("calendarapi: skipping malformed event id=%s: %v", event.ID, err)
			continue
		}
		appointments = append(appointments, appt)
	}

	return appointments, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
}

// mapTransportError классифицирует транспортную ошибку: таймауты и обрывы сети
// считаются временной недоступностью ledger'а, а не конфликтом
func (c *Client) mapTransportError(op string, err error) error {
	c.log.Error("calendarapi: %s transport error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ledger.ErrUnavailable, op, err)
}

func (c *Client) unexpectedStatus(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s: status %d: %s", ledger.ErrUnavailable, op, resp.StatusCode, string(body))
	}

	return fmt.Errorf("%w: %s: unexpected status code %d: %s", ErrInvalidResponse, op, resp.StatusCode, string(body))
}
