package render

import (
	"html/template"
	"strings"

	"smart-clinic-portal/internal/domain/entity"
)

// CardAction selects the button shown on a doctor card
type CardAction string

const (
	CardActionDelete CardAction = "delete"
	CardActionBook   CardAction = "book"
)

// TableColumns is the width of the appointment table
const TableColumns = 6

var (
	doctorCardTmpl = template.Must(template.New("doctorCard").Parse(
		`<div class="doctor-card" data-doctor-id="{{.ID}}">` +
			`<div class="doctor-info">` +
			`<h3>{{.DisplayName}}</h3>` +
			`<p>Specialty: {{.Specialty}}</p>` +
			`<p>Email: {{.Email}}</p>` +
			`<p>Availability: {{range $i, $slot := .Availability}}{{if $i}}, {{end}}{{$slot}}{{else}}Not specified{{end}}</p>` +
			`</div>` +
			`<div class="card-actions">` +
			`{{if eq .Action "delete"}}<button class="delete-btn" data-action="delete-doctor" data-doctor-id="{{.ID}}">Delete</button>` +
			`{{else}}<button class="book-btn" data-action="book-appointment" data-doctor-id="{{.ID}}">Book Now</button>{{end}}` +
			`</div>` +
			`</div>`))

	patientRowTmpl = template.Must(template.New("patientRow").Parse(
		`<tr data-appointment-id="{{.AppointmentID}}">` +
			`<td class="patient-id">{{.PatientID}}</td>` +
			`<td>{{.Name}}</td>` +
			`<td>{{.Phone}}</td>` +
			`<td>{{.Email}}</td>` +
			`<td>{{.Time}}</td>` +
			`<td><button class="prescription-btn" data-action="add-prescription" data-appointment-id="{{.AppointmentID}}" data-patient-name="{{.Name}}">Add Prescription</button></td>` +
			`</tr>`))

	messageRowTmpl = template.Must(template.New("messageRow").Parse(
		`<tr><td colspan="{{.Columns}}" style="text-align: center;{{if .Error}} color: red;{{end}}">{{.Text}}</td></tr>`))

	paragraphTmpl = template.Must(template.New("paragraph").Parse(`<p>{{.}}</p>`))
)

type doctorCardView struct {
	ID           int64
	DisplayName  string
	Specialty    string
	Email        string
	Availability []string
	Action       CardAction
}

type patientRowView struct {
	AppointmentID int64
	PatientID     int64
	Name          string
	Phone         string
	Email         string
	Time          string
}

// DoctorCard renders doctor cards with the given action button
func DoctorCard(action CardAction) FragmentFunc[entity.Doctor] {
	return func(d entity.Doctor) template.HTML {
		return execute(doctorCardTmpl, doctorCardView{
			ID:           d.ID,
			DisplayName:  d.DisplayName(),
			Specialty:    d.Specialty,
			Email:        d.Email,
			Availability: d.Availability,
			Action:       action,
		})
	}
}

// PatientRow renders one appointment as a table row of its patient
func PatientRow(a entity.Appointment) template.HTML {
	view := patientRowView{
		AppointmentID: a.ID,
		PatientID:     a.Patient.ID,
		Name:          a.Patient.Name,
		Phone:         a.Patient.Phone,
		Email:         a.Patient.Email,
	}
	if !a.AppointmentTime.IsZero() {
		view.Time = a.AppointmentTime.Format("15:04") + " - " + a.EndTime().Format("15:04")
	}
	return execute(patientRowTmpl, view)
}

// Paragraph renders an escaped <p> message
func Paragraph(text string) template.HTML {
	return execute(paragraphTmpl, text)
}

// MessageRow renders a full-width table row, red when isError
func MessageRow(text string, isError bool) template.HTML {
	return execute(messageRowTmpl, struct {
		Columns int
		Text    string
		Error   bool
	}{TableColumns, text, isError})
}

// execute never fails for the fixed views above; a failure degrades to an
// empty fragment.
func execute(t *template.Template, data interface{}) template.HTML {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return ""
	}
	return template.HTML(b.String())
}
