package usecase

import (
	"context"
	"html/template"
	"sync"

	"smart-clinic-portal/internal/domain/entity"
	"smart-clinic-portal/internal/render"

	"github.com/sirupsen/logrus"
)

const (
	messageNoDoctors         = "No doctors found."
	messageNoMatchingDoctors = "No doctors found matching your criteria."
	messageDoctorsLoadFailed = "Failed to load doctors. Please try again later."
)

// directoryState is the UI state of a doctor list page. It lives from
// activate to deactivate.
type directoryState struct {
	filter entity.DoctorFilter
}

// doctorDirectory is the searchable doctor card list shared by the admin
// and patient dashboards.
type doctorDirectory struct {
	api    DoctorDirectoryAPI
	region render.Container
	card   render.FragmentFunc[entity.Doctor]
	log    *logrus.Logger
	page   string

	seq   sequence
	mu    sync.Mutex
	state *directoryState
}

func newDoctorDirectory(page string, api DoctorDirectoryAPI, region render.Container, card render.FragmentFunc[entity.Doctor], log *logrus.Logger) *doctorDirectory {
	return &doctorDirectory{
		api:    api,
		region: region,
		card:   card,
		log:    log,
		page:   page,
	}
}

func (d *doctorDirectory) activate(ctx context.Context) error {
	d.mu.Lock()
	d.state = &directoryState{}
	d.mu.Unlock()

	return d.load(ctx, entity.DoctorFilter{})
}

func (d *doctorDirectory) deactivate() {
	d.mu.Lock()
	d.state = nil
	d.mu.Unlock()

	d.seq.invalidate()
}

// update applies one filter change and reloads with the composed criteria
func (d *doctorDirectory) update(ctx context.Context, change func(f *entity.DoctorFilter)) error {
	d.mu.Lock()
	if d.state == nil {
		d.mu.Unlock()
		return ErrNotActive
	}
	change(&d.state.filter)
	f := d.state.filter
	d.mu.Unlock()

	return d.load(ctx, f)
}

// reload fetches again with the current criteria
func (d *doctorDirectory) reload(ctx context.Context) error {
	return d.update(ctx, func(*entity.DoctorFilter) {})
}

func (d *doctorDirectory) criteria() entity.DoctorFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == nil {
		return entity.DoctorFilter{}
	}
	return d.state.filter
}

func (d *doctorDirectory) load(ctx context.Context, f entity.DoctorFilter) error {
	id := d.seq.next()

	doctors, err := d.api.FilterDoctors(ctx, f)

	var fragments []template.HTML
	if err != nil {
		d.log.WithFields(logrus.Fields{"page": d.page}).WithError(err).Warn("doctor load failed")
		fragments = []template.HTML{render.Paragraph(messageDoctorsLoadFailed)}
	} else {
		placeholder := messageNoDoctors
		if !f.IsEmpty() {
			placeholder = messageNoMatchingDoctors
		}
		fragments = render.Fragments(doctors, d.card, render.Paragraph(placeholder))
	}

	if !d.seq.commit(id, func() { d.region.Replace(fragments...) }) {
		d.log.WithFields(logrus.Fields{"page": d.page, "request": id}).Debug("discarding stale doctor response")
		return nil
	}
	return err
}
