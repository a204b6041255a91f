package booking

import "time"

// Appointment is a booked appointment request captured by the wizard.
type Appointment struct {
	ID            string    `json:"id"`
	Service       string    `json:"service"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
}

// Form carries the appointment wizard's field values.
type Form struct {
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
}

// ToMap flattens the form for session persistence.
func (f Form) ToMap() map[string]string {
	return map[string]string{
		string(FieldService):       f.Service,
		string(FieldPreferredDate): f.PreferredDate,
		string(FieldPreferredTime): f.PreferredTime,
		string(FieldName):          f.Name,
		string(FieldPhone):         f.Phone,
	}
}

// FormFromMap rebuilds a form from persisted session state.
func FormFromMap(m map[string]string) Form {
	return Form{
		Service:       m[string(FieldService)],
		PreferredDate: m[string(FieldPreferredDate)],
		PreferredTime: m[string(FieldPreferredTime)],
		Name:          m[string(FieldName)],
		Phone:         m[string(FieldPhone)],
	}
}
