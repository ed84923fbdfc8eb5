package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/repository"
)

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[int64]*domain.User
	nextID int64
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*domain.User{}}
}

func (f *fakeUsers) add(u domain.User) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = &u
	return &u
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	for _, u := range f.byID {
		if u.Email == user.Email {
			f.mu.Unlock()
			return repository.ErrDuplicate
		}
	}
	f.mu.Unlock()
	user.IsActive = true
	created := f.add(*user)
	user.ID = created.ID
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id int64, update domain.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.FullName = update.FullName
	u.CollegeName = update.CollegeName
	u.Branch = update.Branch
	u.Year = update.Year
	u.Mobile = update.Mobile
	return nil
}

func (f *fakeUsers) List(context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.byID))
	for id := f.nextID; id > 0; id-- {
		if u, ok := f.byID[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.CredentialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return credential(u), nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*domain.CredentialRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return credential(u), nil
}

func credential(u *domain.User) *domain.CredentialRecord {
	return &domain.CredentialRecord{
		UserID:       u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}
}

type fakeCourses struct {
	courses     map[int64]domain.Course
	enrollments map[[2]int64]domain.Enrollment
	listCalls   int
	created     []domain.Course
}

func newFakeCourses(courses ...domain.Course) *fakeCourses {
	f := &fakeCourses{courses: map[int64]domain.Course{}, enrollments: map[[2]int64]domain.Enrollment{}}
	for _, c := range courses {
		f.courses[c.ID] = c
	}
	return f
}

func (f *fakeCourses) ListActive(context.Context) ([]domain.Course, error) {
	f.listCalls++
	out := make([]domain.Course, 0, len(f.courses))
	for _, c := range f.courses {
		if c.Status == domain.CourseStatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (f *fakeCourses) Create(_ context.Context, course *domain.Course) error {
	course.ID = int64(len(f.courses) + 1)
	if course.Status == "" {
		course.Status = domain.CourseStatusActive
	}
	f.courses[course.ID] = *course
	f.created = append(f.created, *course)
	return nil
}

func (f *fakeCourses) Enroll(_ context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	if _, ok := f.courses[courseID]; !ok {
		return nil, repository.ErrReferenceNotFound
	}
	key := [2]int64{userID, courseID}
	if _, ok := f.enrollments[key]; ok {
		return nil, repository.ErrDuplicate
	}
	e := domain.Enrollment{ID: int64(len(f.enrollments) + 1), UserID: userID, CourseID: courseID, Status: "active", EnrolledAt: time.Now()}
	f.enrollments[key] = e
	return &e, nil
}

func (f *fakeCourses) ListActiveEnrollments(_ context.Context, userID int64) ([]domain.Enrollment, error) {
	out := make([]domain.Enrollment, 0)
	for key, e := range f.enrollments {
		if key[0] == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeInternships struct {
	internships  map[int64]domain.Internship
	applications []domain.InternshipApplication
	createErr    error
}

func newFakeInternships(items ...domain.Internship) *fakeInternships {
	f := &fakeInternships{internships: map[int64]domain.Internship{}}
	for _, i := range items {
		f.internships[i.ID] = i
	}
	return f
}

func (f *fakeInternships) ListActive(context.Context) ([]domain.Internship, error) {
	out := make([]domain.Internship, 0, len(f.internships))
	for _, i := range f.internships {
		out = append(out, i)
	}
	return out, nil
}

func (f *fakeInternships) GetByID(_ context.Context, id int64) (*domain.Internship, error) {
	i, ok := f.internships[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &i, nil
}

func (f *fakeInternships) CreateApplication(_ context.Context, app *domain.InternshipApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = int64(len(f.applications) + 1)
	app.Status = domain.ApplicationPending
	app.AppliedAt = time.Now()
	f.applications = append(f.applications, *app)
	return nil
}

func (f *fakeInternships) ListRecentApplications(_ context.Context, userID int64, limit int) ([]domain.InternshipApplication, error) {
	out := make([]domain.InternshipApplication, 0)
	for i := len(f.applications) - 1; i >= 0 && len(out) < limit; i-- {
		if f.applications[i].UserID == userID {
			out = append(out, f.applications[i])
		}
	}
	return out, nil
}

func (f *fakeInternships) ListPendingApplications(context.Context) ([]domain.InternshipApplication, error) {
	out := make([]domain.InternshipApplication, 0)
	for _, a := range f.applications {
		if a.Status == domain.ApplicationPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeInternships) UpdateApplicationStatus(_ context.Context, id int64, status domain.ApplicationStatus) (*domain.InternshipApplication, error) {
	for i := range f.applications {
		if f.applications[i].ID == id {
			now := time.Now()
			f.applications[i].Status = status
			f.applications[i].ReviewedAt = &now
			a := f.applications[i]
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeWebinars struct {
	webinars      map[int64]domain.Webinar
	registrations []domain.WebinarRegistration
}

func newFakeWebinars(items ...domain.Webinar) *fakeWebinars {
	f := &fakeWebinars{webinars: map[int64]domain.Webinar{}}
	for _, w := range items {
		f.webinars[w.ID] = w
	}
	return f
}

func (f *fakeWebinars) ListUpcoming(context.Context) ([]domain.Webinar, error) {
	out := make([]domain.Webinar, 0, len(f.webinars))
	for _, w := range f.webinars {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWebinars) GetByID(_ context.Context, id int64) (*domain.Webinar, error) {
	w, ok := f.webinars[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &w, nil
}

func (f *fakeWebinars) Register(_ context.Context, reg *domain.WebinarRegistration) error {
	for _, r := range f.registrations {
		if r.UserID == reg.UserID && r.WebinarID == reg.WebinarID {
			return repository.ErrDuplicate
		}
	}
	reg.ID = int64(len(f.registrations) + 1)
	reg.RegisteredAt = time.Now()
	f.registrations = append(f.registrations, *reg)
	return nil
}

func (f *fakeWebinars) ListRegistrations(_ context.Context, userID int64) ([]domain.WebinarRegistration, error) {
	out := make([]domain.WebinarRegistration, 0)
	for _, r := range f.registrations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCertificates struct {
	certs      []domain.Certificate
	collisions int
}

func (f *fakeCertificates) Create(_ context.Context, cert *domain.Certificate) error {
	if f.collisions > 0 {
		f.collisions--
		return repository.ErrDuplicate
	}
	cert.ID = int64(len(f.certs) + 1)
	cert.IssueDate = time.Now()
	f.certs = append(f.certs, *cert)
	return nil
}

func (f *fakeCertificates) ListByUser(_ context.Context, userID int64) ([]domain.Certificate, error) {
	out := make([]domain.Certificate, 0)
	for _, c := range f.certs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCertificates) GetByCode(_ context.Context, code string) (*domain.Certificate, error) {
	for _, c := range f.certs {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeContent struct {
	learning []domain.LearningContent
	messages []domain.ContactMessage
	stats    domain.PlatformStats
}

func (f *fakeContent) ListLearning(_ context.Context, category string) ([]domain.LearningContent, error) {
	out := make([]domain.LearningContent, 0)
	for _, c := range f.learning {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContent) CreateContactMessage(_ context.Context, msg *domain.ContactMessage) error {
	msg.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeContent) Stats(context.Context) (*domain.PlatformStats, error) {
	s := f.stats
	return &s, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.events))
	for _, e := range d.events {
		out = append(out, e.Type)
	}
	return out
}
