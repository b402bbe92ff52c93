package domain

import "time"

// TimeSlot кандидат или подтвержденное окно бронирования
// Производное значение: вычисляется генератором сетки, нигде не хранится
type TimeSlot struct {
	Start           time.Time
	DurationMinutes int
}

// End возвращает момент окончания слота (полуоткрытый интервал [Start, End))
func (s TimeSlot) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Overlaps проверяет пересечение слота с бронированием по правилу
// полуоткрытых интервалов: [s1,e1) и [s2,e2) пересекаются, только если
// s1 < e2 И s2 < e1. Граничащие интервалы не считаются пересечением
func (s TimeSlot) Overlaps(a *Appointment) bool {
	return a.OverlapsWindow(s.Start, s.End())
}

// FilterFreeSlots отбирает кандидатов, не пересекающихся ни с одним бронированием
// Порядок кандидатов сохраняется (хронологический), дополнительный буфер
// не добавляется - он уже учтен шагом генератора
func FilterFreeSlots(candidates []TimeSlot, booked []*Appointment) []TimeSlot {
	free := make([]TimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		conflict := false
		for _, appt := range booked {
			if slot.Overlaps(appt) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, slot)
		}
	}

	return free
}

// HasConflict проверяет, пересекается ли окно [start, start+duration) хотя бы
// с одним бронированием. excludeEventID позволяет исключить из проверки
// перемещаемое бронирование при переносе
func HasConflict(start time.Time, durationMinutes int, booked []*Appointment, excludeEventID string) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, appt := range booked {
		if excludeEventID != "" && appt.EventID == excludeEventID {
			continue
		}
		if appt.OverlapsWindow(start, end) {
			return true
		}
	}

	return false
}
