package render

import (
	"fmt"
	"html/template"
	"strings"
	"testing"
	"time"

	"smart-clinic-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func label(n int) template.HTML {
	return template.HTML(fmt.Sprintf("<i>%d</i>", n))
}

func TestFragments_EmptyYieldsSinglePlaceholder(t *testing.T) {
	out := Fragments[int](nil, label, "<p>none</p>")
	assert.Equal(t, []template.HTML{"<p>none</p>"}, out)

	out = Fragments([]int{}, label, "<p>none</p>")
	assert.Len(t, out, 1)
}

func TestFragments_PreservesOrder(t *testing.T) {
	out := Fragments([]int{3, 1, 2}, label, "<p>none</p>")
	assert.Equal(t, []template.HTML{"<i>3</i>", "<i>1</i>", "<i>2</i>"}, out)
}

func TestList_LatestCallWins(t *testing.T) {
	region := NewRegion("content")

	List(region, []int{1, 2, 3}, label, "<p>none</p>")
	List(region, []int{}, label, "<p>none</p>")
	List(region, []int{9}, label, "<p>none</p>")

	fresh := NewRegion("content")
	List(fresh, []int{9}, label, "<p>none</p>")

	assert.Equal(t, fresh.HTML(), region.HTML())
	assert.Equal(t, 1, region.Len())
}

func TestList_IdempotentOnRepeat(t *testing.T) {
	region := NewRegion("content")

	List(region, []int{1, 2}, label, "<p>none</p>")
	first := region.HTML()
	List(region, []int{1, 2}, label, "<p>none</p>")

	assert.Equal(t, first, region.HTML())
	assert.Equal(t, 2, region.Len())
}

func TestRegion_FragmentsIsACopy(t *testing.T) {
	region := NewRegion("content")
	region.Replace("<a>", "<b>")

	got := region.Fragments()
	got[0] = "<mutated>"

	assert.Equal(t, "<a><b>", region.HTML())
	assert.Equal(t, "content", region.ID())
}

func TestDoctorCard(t *testing.T) {
	doctor := entity.Doctor{
		ID:           7,
		Name:         "Ana <Lee>",
		Specialty:    "Cardiology",
		Email:        "ana@clinic.test",
		Availability: []string{"Monday 09:00-12:00", "Friday 13:00-17:00"},
	}

	admin := string(DoctorCard(CardActionDelete)(doctor))
	assert.Contains(t, admin, "Dr. Ana &lt;Lee&gt;")
	assert.Contains(t, admin, "Specialty: Cardiology")
	assert.Contains(t, admin, "Monday 09:00-12:00, Friday 13:00-17:00")
	assert.Contains(t, admin, `data-action="delete-doctor"`)
	assert.NotContains(t, admin, "Book Now")

	patient := string(DoctorCard(CardActionBook)(doctor))
	assert.Contains(t, patient, "Book Now")
	assert.NotContains(t, patient, "delete-doctor")

	doctor.Availability = nil
	assert.Contains(t, string(DoctorCard(CardActionBook)(doctor)), "Availability: Not specified")
}

func TestPatientRow(t *testing.T) {
	row := string(PatientRow(entity.Appointment{
		ID:              5,
		AppointmentTime: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Patient:         entity.Patient{ID: 3, Name: "Jane Doe", Phone: "5551234567", Email: "jane@mail.test"},
	}))

	require.Equal(t, TableColumns, strings.Count(row, "<td"))
	assert.Contains(t, row, `data-appointment-id="5"`)
	assert.Contains(t, row, "Jane Doe")
	assert.Contains(t, row, "09:30 - 10:30")
	assert.Contains(t, row, "Add Prescription")
}

func TestMessageRowAndParagraph(t *testing.T) {
	row := string(MessageRow(`No appointments for "x"`, false))
	assert.Contains(t, row, `colspan="6"`)
	assert.Contains(t, row, "No appointments for &#34;x&#34;")
	assert.NotContains(t, row, "color: red")

	assert.Contains(t, string(MessageRow("Failed", true)), "color: red")
	assert.Equal(t, template.HTML("<p>a &amp; b</p>"), Paragraph("a & b"))
}
