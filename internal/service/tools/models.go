package tools

// Имена инструментов, доступных модели
const (
	ToolFindAvailableSlots    = "find_available_slots"
	ToolBookAppointment       = "book_appointment"
	ToolCancelAppointment     = "cancel_appointment"
	ToolRescheduleAppointment = "reschedule_appointment"
)

// findSlotsArgs аргументы инструмента find_available_slots
type findSlotsArgs struct {
	ServiceName    string  `json:"service_name"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	StaffName      *string `json:"staff_name,omitempty"`
	TimePreference string  `json:"time_preference,omitempty"`
}

// bookArgs аргументы инструмента book_appointment
type bookArgs struct {
	CustomerName        string  `json:"customer_name"`
	CustomerPhone       string  `json:"customer_phone"`
	ServiceName         string  `json:"service_name"`
	AppointmentDatetime string  `json:"appointment_datetime"`
	StaffName           *string `json:"staff_name,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// cancelArgs аргументы инструмента cancel_appointment
type cancelArgs struct {
	CustomerPhone       string  `json:"customer_phone"`
	AppointmentDatetime *string `json:"appointment_datetime,omitempty"`
	Reason              *string `json:"reason,omitempty"`
}

// rescheduleArgs аргументы инструмента reschedule_appointment
type rescheduleArgs struct {
	CustomerPhone   string `json:"customer_phone"`
	CurrentDatetime string `json:"current_datetime"`
	NewDatetime     string `json:"new_datetime"`
}

// SlotView слот в ответе инструмента, в виде, удобном для озвучивания
type SlotView struct {
	Datetime string  `json:"datetime"`
	Display  string  `json:"display"`
	Staff    *string `json:"staff,omitempty"`
}

// Result плоский результат выполнения инструмента.
// Бизнес-отказы (занятый слот, не найденная запись) кодируются как
// Success=false с текстом в Error - модель должна озвучить их клиенту,
// а не получить HTTP-ошибку
type Result struct {
	Success       bool       `json:"success"`
	Message       string     `json:"message,omitempty"`
	Error         string     `json:"error,omitempty"`
	Slots         []SlotView `json:"slots,omitempty"`
	AppointmentID string     `json:"appointment_id,omitempty"`
}
