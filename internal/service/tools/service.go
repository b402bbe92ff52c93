package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/find_available_slots"
	"github.com/m04kA/SMC-VoiceScheduler/internal/usecase/reschedule_appointment"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeError   = "error"
)

// Service сервис выполнения инструментов голосового агента.
// Диспетчеризует вызовы инструментов в use cases и переводит их
// доменные ошибки в плоские результаты, пригодные для озвучивания
type Service struct {
	slotFinder  SlotFinder
	booker      AppointmentBooker
	canceller   AppointmentCanceller
	rescheduler AppointmentRescheduler
	location    *time.Location
	metrics     MetricsCollector
	logger      Logger
}

// NewService создает новый экземпляр сервиса инструментов
func NewService(
	slotFinder SlotFinder,
	booker AppointmentBooker,
	canceller AppointmentCanceller,
	rescheduler AppointmentRescheduler,
	location *time.Location,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		slotFinder:  slotFinder,
		booker:      booker,
		canceller:   canceller,
		rescheduler: rescheduler,
		location:    location,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет инструмент по имени с JSON-аргументами от модели.
// Бизнес-отказы возвращаются как Result{Success: false}; ошибкой (error)
// считаются только незнакомый инструмент и внутренние сбои
func (s *Service) Execute(ctx context.Context, toolName string, arguments json.RawMessage) (*Result, error) {
	s.logger.Info("Execute: tool=%s", toolName)

	var (
		result *Result
		err    error
	)

	switch toolName {
	case ToolFindAvailableSlots:
		result, err = s.executeFindSlots(ctx, arguments)
	case ToolBookAppointment:
		result, err = s.executeBook(ctx, arguments)
	case ToolCancelAppointment:
		result, err = s.executeCancel(ctx, arguments)
	case ToolRescheduleAppointment:
		result, err = s.executeReschedule(ctx, arguments)
	default:
		s.logger.Warn("Execute: unknown tool %q", toolName)
		s.metrics.ObserveToolExecution(toolName, outcomeError)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, toolName)
	}

	switch {
	case err != nil:
		s.metrics.ObserveToolExecution(toolName, outcomeError)
	case result.Success:
		s.metrics.ObserveToolExecution(toolName, outcomeSuccess)
	default:
		s.metrics.ObserveToolExecution(toolName, outcomeFailure)
	}

	return result, err
}

func (s *Service) executeFindSlots(ctx context.Context, arguments json.RawMessage) (*Result, error) {
	var args findSlotsArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return failure(fmt.Sprintf("Invalid arguments: %v", err)), nil
	}

	startDate, err := parseDate(args.StartDate, s.location)
	if err != nil {
		return failure(err.Error()), nil
	}
	endDate, err := parseDate(args.EndDate, s.location)
	if err != nil {
		return failure(err.Error()), nil
	}

	preference := domain.TimePreference(args.TimePreference)
	if args.TimePreference == "" {
		preference = domain.PreferenceAny
	}

	resp, err := s.slotFinder.Execute(ctx, &find_available_slots.Request{
		ServiceName:    args.ServiceName,
		StartDate:      startDate,
		EndDate:        endDate,
		StaffName:      args.StaffName,
		TimePreference: preference,
	})
	if err != nil {
		switch {
		case errors.Is(err, find_available_slots.ErrInvalidInput),
			errors.Is(err, find_available_slots.ErrRangeTooLarge):
			return failure(err.Error()), nil
		case errors.Is(err, find_available_slots.ErrLedgerUnavailable):
			return failure("The scheduling system is temporarily unavailable, please try again in a moment"), nil
		default:
			s.logger.Error("executeFindSlots: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			Datetime: slot.Start.Format(time.RFC3339),
			Display:  formatSlotDisplay(slot.Start),
			Staff:    args.StaffName,
		}
	}

	if len(slots) == 0 {
		return &Result{
			Success: true,
			Slots:   slots,
			Message: fmt.Sprintf("No available slots found for %s in that date range", resp.ServiceName),
		}, nil
	}

	return &Result{
		Success: true,
		Slots:   slots,
		Message: fmt.Sprintf("Found %d available slots for %s", len(slots), resp.ServiceName),
	}, nil
}

func (s *Service) executeBook(ctx context.Context, arguments json.RawMessage) (*Result, error) {
	var args bookArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return failure(fmt.Sprintf("Invalid arguments: %v", err)), nil
	}

	start, err := parseDateTime(args.AppointmentDatetime, s.location)
	if err != nil {
		return failure(err.Error()), nil
	}

	resp, err := s.booker.Execute(ctx, &book_appointment.Request{
		CustomerName:  args.CustomerName,
		CustomerPhone: args.CustomerPhone,
		ServiceName:   args.ServiceName,
		Start:         start,
		StaffName:     args.StaffName,
		Notes:         args.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, book_appointment.ErrSlotNotAvailable):
			return failure("That time slot is no longer available, please pick another time"), nil
		case errors.Is(err, book_appointment.ErrStartInPast):
			return failure("That time is in the past, please pick a future time"), nil
		case errors.Is(err, book_appointment.ErrOutsideBusinessHours):
			return failure("That time is outside business hours"), nil
		case errors.Is(err, book_appointment.ErrInvalidInput):
			return failure(err.Error()), nil
		case errors.Is(err, book_appointment.ErrLedgerUnavailable):
			return failure("The scheduling system is temporarily unavailable, please try again in a moment"), nil
		default:
			s.logger.Error("executeBook: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Result{
		Success:       true,
		AppointmentID: resp.EventID,
		Message: fmt.Sprintf("Successfully booked %s for %s on %s",
			resp.ServiceName, resp.CustomerName, formatSlotDisplay(resp.Start)),
	}, nil
}

func (s *Service) executeCancel(ctx context.Context, arguments json.RawMessage) (*Result, error) {
	var args cancelArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return failure(fmt.Sprintf("Invalid arguments: %v", err)), nil
	}

	var start *time.Time
	if args.AppointmentDatetime != nil && *args.AppointmentDatetime != "" {
		t, err := parseDateTime(*args.AppointmentDatetime, s.location)
		if err != nil {
			return failure(err.Error()), nil
		}
		start = &t
	}

	resp, err := s.canceller.Execute(ctx, &cancel_appointment.Request{
		CustomerPhone: args.CustomerPhone,
		Start:         start,
		Reason:        args.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancel_appointment.ErrAppointmentNotFound):
			return failure("No appointment found for that phone number"), nil
		case errors.Is(err, cancel_appointment.ErrAmbiguousAppointment):
			return failure("Multiple upcoming appointments found, please specify which date and time to cancel"), nil
		case errors.Is(err, cancel_appointment.ErrInvalidInput):
			return failure(err.Error()), nil
		case errors.Is(err, cancel_appointment.ErrLedgerUnavailable):
			return failure("The scheduling system is temporarily unavailable, please try again in a moment"), nil
		default:
			s.logger.Error("executeCancel: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Result{
		Success: true,
		Message: fmt.Sprintf("Cancelled %s on %s",
			resp.ServiceName, formatSlotDisplay(resp.Start)),
	}, nil
}

func (s *Service) executeReschedule(ctx context.Context, arguments json.RawMessage) (*Result, error) {
	var args rescheduleArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return failure(fmt.Sprintf("Invalid arguments: %v", err)), nil
	}

	currentStart, err := parseDateTime(args.CurrentDatetime, s.location)
	if err != nil {
		return failure(err.Error()), nil
	}
	newStart, err := parseDateTime(args.NewDatetime, s.location)
	if err != nil {
		return failure(err.Error()), nil
	}

	resp, err := s.rescheduler.Execute(ctx, &reschedule_appointment.Request{
		CustomerPhone: args.CustomerPhone,
		CurrentStart:  currentStart,
		NewStart:      newStart,
	})
	if err != nil {
		switch {
		case errors.Is(err, reschedule_appointment.ErrAppointmentNotFound):
			return failure("No appointment found at that date and time for that phone number"), nil
		case errors.Is(err, reschedule_appointment.ErrSlotNotAvailable):
			return failure("The new time slot is not available, the original appointment is unchanged"), nil
		case errors.Is(err, reschedule_appointment.ErrStartInPast):
			return failure("The new time is in the past, please pick a future time"), nil
		case errors.Is(err, reschedule_appointment.ErrOutsideBusinessHours):
			return failure("The new time is outside business hours"), nil
		case errors.Is(err, reschedule_appointment.ErrInvalidInput):
			return failure(err.Error()), nil
		case errors.Is(err, reschedule_appointment.ErrLedgerUnavailable):
			return failure("The scheduling system is temporarily unavailable, please try again in a moment"), nil
		default:
			s.logger.Error("executeReschedule: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return &Result{
		Success: true,
		Message: fmt.Sprintf("Rescheduled %s to %s",
			resp.ServiceName, formatSlotDisplay(resp.NewStart)),
	}, nil
}

// failure результат бизнес-отказа для озвучивания моделью
func failure(message string) *Result {
	return &Result{Success: false, Error: message}
}
