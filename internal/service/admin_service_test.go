package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorverse/mentorverse-api/internal/cache"
	"github.com/mentorverse/mentorverse-api/internal/domain"
	"github.com/mentorverse/mentorverse-api/internal/events"
)

func TestAdminService_CreateCourseInvalidatesListing(t *testing.T) {
	store := mapStore{}
	catalogCache := cache.NewCatalog(store, time.Minute, nil, nil)
	courses := newFakeCourses(domain.Course{ID: 1, Title: "Go", Status: domain.CourseStatusActive})

	catalog := NewCatalogService(CatalogDependencies{CourseRepo: courses, Cache: catalogCache})
	admin := NewAdminService(AdminDependencies{CourseRepo: courses, Cache: catalogCache})

	listed, err := catalog.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	course := &domain.Course{Title: "Rust", Price: 0}
	require.NoError(t, admin.CreateCourse(context.Background(), course))
	assert.NotZero(t, course.ID)
	assert.True(t, course.IsFree)
	assert.Equal(t, domain.CourseStatusActive, course.Status)

	listed, err = catalog.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, 2, courses.listCalls)
}

func TestAdminService_CreateCourseValidation(t *testing.T) {
	admin := NewAdminService(AdminDependencies{CourseRepo: newFakeCourses()})

	err := admin.CreateCourse(context.Background(), &domain.Course{Title: "  "})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	err = admin.CreateCourse(context.Background(), &domain.Course{Title: "Paid", Price: -1})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestAdminService_ReviewApplication(t *testing.T) {
	internships := newFakeInternships(domain.Internship{ID: 1, Title: "Intern"})
	dispatcher := &recordingDispatcher{}
	admin := NewAdminService(AdminDependencies{InternshipRepo: internships, Dispatcher: dispatcher})

	app := &domain.InternshipApplication{UserID: 5, InternshipID: 1}
	app.FullName = "Applicant"
	app.Email = "applicant@example.com"
	require.NoError(t, internships.CreateApplication(context.Background(), app))

	pending, err := admin.PendingApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)

	reviewed, err := admin.ReviewApplication(context.Background(), app.ID, domain.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationShortlisted, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewedAt)

	pending, err = admin.PendingApplications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, events.EventApplicationStatusChanged, dispatcher.events[0].Type)
	assert.Equal(t, "applicant@example.com", dispatcher.events[0].Email)
	assert.NotEmpty(t, dispatcher.events[0].ID)
}

func TestAdminService_ReviewApplicationErrors(t *testing.T) {
	admin := NewAdminService(AdminDependencies{InternshipRepo: newFakeInternships()})

	_, err := admin.ReviewApplication(context.Background(), 1, domain.ApplicationStatus("maybe"))
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = admin.ReviewApplication(context.Background(), 404, domain.ApplicationAccepted)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Application not found", messageOf(err))
}

func TestAdminService_StatsAndUsers(t *testing.T) {
	users := newFakeUsers()
	users.add(domain.User{FullName: "First", Email: "1@x.y"})
	users.add(domain.User{FullName: "Second", Email: "2@x.y"})
	content := &fakeContent{stats: domain.PlatformStats{TotalUsers: 2, ActiveCourses: 4}}
	admin := NewAdminService(AdminDependencies{UserRepo: users, ContentRepo: content})

	stats, err := admin.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)

	list, err := admin.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].FullName)
}
