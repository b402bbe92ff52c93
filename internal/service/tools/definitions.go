package tools

import (
	"encoding/json"

	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"
)

// Definitions возвращает описания инструментов для передачи модели
// в формате OpenAI function calling
func Definitions() []openaiclient.ToolDefinition {
	return []openaiclient.ToolDefinition{
		{
			Type: "function",
			Function: openaiclient.FunctionDefinition{
				Name:        ToolFindAvailableSlots,
				Description: "Search for available appointment time slots based on service, date range, and optional staff preference.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"service_name": {
							"type": "string",
							"description": "The service or treatment name (e.g., 'haircut', 'checkup', 'massage')"
						},
						"start_date": {
							"type": "string",
							"description": "Start of the date range to search (YYYY-MM-DD format)"
						},
						"end_date": {
							"type": "string",
							"description": "End of the date range to search (YYYY-MM-DD format)"
						},
						"staff_name": {
							"type": "string",
							"description": "Optional: preferred staff member or provider name"
						},
						"time_preference": {
							"type": "string",
							"enum": ["morning", "afternoon", "evening", "any"],
							"description": "Optional: preferred time of day"
						}
					},
					"required": ["service_name", "start_date", "end_date"]
				}`),
			},
		},
		{
			Type: "function",
			Function: openaiclient.FunctionDefinition{
				Name:        ToolBookAppointment,
				Description: "Book an appointment at a specific date and time. Always confirm details with customer before calling this.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"customer_name": {
							"type": "string",
							"description": "Customer's full name (first and last)"
						},
						"customer_phone": {
							"type": "string",
							"description": "Customer's phone number for confirmation and reminders"
						},
						"service_name": {
							"type": "string",
							"description": "The service being booked"
						},
						"appointment_datetime": {
							"type": "string",
							"description": "Date and time of appointment (ISO format: YYYY-MM-DDTHH:MM:SS)"
						},
						"staff_name": {
							"type": "string",
							"description": "Optional: name of preferred staff member"
						},
						"notes": {
							"type": "string",
							"description": "Optional: any special requests or notes"
						}
					},
					"required": ["customer_name", "customer_phone", "service_name", "appointment_datetime"]
				}`),
			},
		},
		{
			Type: "function",
			Function: openaiclient.FunctionDefinition{
				Name:        ToolCancelAppointment,
				Description: "Cancel an existing appointment. Requires customer phone number for verification.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"customer_phone": {
							"type": "string",
							"description": "Customer's phone number to lookup appointment"
						},
						"appointment_datetime": {
							"type": "string",
							"description": "Optional: specific appointment date/time to cancel if customer has multiple"
						},
						"reason": {
							"type": "string",
							"description": "Optional: reason for cancellation"
						}
					},
					"required": ["customer_phone"]
				}`),
			},
		},
		{
			Type: "function",
			Function: openaiclient.FunctionDefinition{
				Name:        ToolRescheduleAppointment,
				Description: "Reschedule an existing appointment to a new date/time.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"customer_phone": {
							"type": "string",
							"description": "Customer's phone number to lookup appointment"
						},
						"current_datetime": {
							"type": "string",
							"description": "Current appointment date/time (ISO format)"
						},
						"new_datetime": {
							"type": "string",
							"description": "New desired appointment date/time (ISO format)"
						}
					},
					"required": ["customer_phone", "current_datetime", "new_datetime"]
				}`),
			},
		},
	}
}
