package calendarapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// Ключи extended properties, по которым хранятся данные клиента
// Телефон используется для последующего поиска бронирований клиента
const (
	propCustomerName    = "customer_name"
	propCustomerPhone   = "customer_phone"
	propServiceName     = "service_name"
	propStaffName       = "staff_name"
	propNotes           = "notes"
	propDurationMinutes = "duration_minutes"
	propBookedVia       = "booked_via"
)

const bookedViaValue = "voice_scheduler"

// EventTime время начала/окончания события в формате календарного API
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// ExtendedProperties произвольные свойства события
type ExtendedProperties struct {
	Private map[string]string `json:"private,omitempty"`
}

// Event модель события календарного сервиса
type Event struct {
	ID                 string              `json:"id,omitempty"`
	Summary            string              `json:"summary,omitempty"`
	Description        string              `json:"description,omitempty"`
	Start              EventTime           `json:"start"`
	End                EventTime           `json:"end"`
	ExtendedProperties *ExtendedProperties `json:"extendedProperties,omitempty"`
	Created            string              `json:"created,omitempty"`
}

// EventList модель ответа со списком событий
type EventList struct {
	Items []Event `json:"items"`
}

// ErrorResponse модель ошибки календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// eventFromAppointment собирает событие календаря из доменного бронирования
// Данные клиента дублируются в summary/description для людей и в extended
// properties для машинного чтения
func eventFromAppointment(appt *domain.Appointment, tz string) Event {
	private := map[string]string{
		propCustomerName:    appt.CustomerName,
		propCustomerPhone:   appt.CustomerPhone,
		propServiceName:     appt.ServiceName,
		propDurationMinutes: strconv.Itoa(appt.DurationMinutes),
		propBookedVia:       bookedViaValue,
	}
	if appt.StaffName != nil {
		private[propStaffName] = *appt.StaffName
	}
	if appt.Notes != nil {
		private[propNotes] = *appt.Notes
	}

	description := fmt.Sprintf(
		"Appointment details:\n- Customer: %s\n- Phone: %s\n- Service: %s",
		appt.CustomerName, appt.CustomerPhone, appt.ServiceName,
	)
	if appt.Notes != nil && *appt.Notes != "" {
		description += "\n- Notes: " + *appt.Notes
	}

	return Event{
		Summary:     fmt.Sprintf("%s - %s", appt.ServiceName, appt.CustomerName),
		Description: description,
		Start: EventTime{
			DateTime: appt.Start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: EventTime{
			DateTime: appt.End().Format(time.RFC3339),
			TimeZone: tz,
		},
		ExtendedProperties: &ExtendedProperties{Private: private},
	}
}

// toAppointment конвертирует событие календаря в доменное бронирование
func (e Event) toAppointment() (*domain.Appointment, error) {
	start, err := time.Parse(time.RFC3339, e.Start.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event start %q: %v", ErrInvalidResponse, e.Start.DateTime, err)
	}
	end, err := time.Parse(time.RFC3339, e.End.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event end %q: %v", ErrInvalidResponse, e.End.DateTime, err)
	}

	duration := int(end.Sub(start).Minutes())
	if duration <= 0 {
		return nil, fmt.Errorf("%w: event %s has non-positive duration", ErrInvalidResponse, e.ID)
	}

	appt := &domain.Appointment{
		EventID:         e.ID,
		ServiceName:     e.Summary,
		Start:           start,
		DurationMinutes: duration,
	}

	if e.ExtendedProperties != nil && e.ExtendedProperties.Private != nil {
		private := e.ExtendedProperties.Private
		appt.CustomerName = private[propCustomerName]
		appt.CustomerPhone = private[propCustomerPhone]
		if svc, ok := private[propServiceName]; ok && svc != "" {
			appt.ServiceName = svc
		}
		if staff, ok := private[propStaffName]; ok && staff != "" {
			appt.StaffName = &staff
		}
		if notes, ok := private[propNotes]; ok && notes != "" {
			appt.Notes = &notes
		}
	}

	if e.Created != "" {
		if created, err := time.Parse(time.RFC3339, e.Created); err == nil {
			appt.CreatedAt = created
		}
	}

	return appt, nil
}
