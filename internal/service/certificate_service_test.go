package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

var codePattern = regexp.MustCompile(`^MV-[0-9A-F]{12}$`)

func TestGenerateCertificateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := generateCertificateCode()
		assert.Regexp(t, codePattern, code)
		assert.False(t, seen[code])
		seen[code] = true
	}
}

func TestCertificateService_IssueAndVerify(t *testing.T) {
	users := newFakeUsers()
	holder := users.add(domain.User{FullName: "Asha Rao", Email: "asha@example.com"})
	certs := &fakeCertificates{}
	dispatcher := &recordingDispatcher{}
	svc := NewCertificateService(certs, users, dispatcher)

	ref := int64(1)
	cert, err := svc.Issue(context.Background(), IssueInput{UserID: holder.ID, Title: "Go Basics", CertificateType: domain.CertificateCourse, ReferenceID: &ref})
	require.NoError(t, err)
	assert.Regexp(t, codePattern, cert.Code)
	assert.Equal(t, "Asha Rao", cert.HolderName)

	found, err := svc.Verify(context.Background(), cert.Code)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, found.ID)

	list, err := svc.ListForUser(context.Background(), holder.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Len(t, dispatcher.events, 1)
}

func TestCertificateService_RetriesCodeCollision(t *testing.T) {
	users := newFakeUsers()
	holder := users.add(domain.User{FullName: "A", Email: "a@b.c"})
	certs := &fakeCertificates{collisions: 2}
	svc := NewCertificateService(certs, users, nil)

	codes := []string{"MV-000000000001", "MV-000000000002", "MV-000000000003"}
	svc.newCode = func() string {
		c := codes[0]
		codes = codes[1:]
		return c
	}

	cert, err := svc.Issue(context.Background(), IssueInput{UserID: holder.ID, Title: "T", CertificateType: domain.CertificateWebinar})
	require.NoError(t, err)
	assert.Equal(t, "MV-000000000003", cert.Code)
}

func TestCertificateService_CodeAttemptsExhausted(t *testing.T) {
	users := newFakeUsers()
	holder := users.add(domain.User{FullName: "A", Email: "a@b.c"})
	svc := NewCertificateService(&fakeCertificates{collisions: codeAttempts}, users, nil)

	_, err := svc.Issue(context.Background(), IssueInput{UserID: holder.ID, Title: "T", CertificateType: domain.CertificateCourse})
	assert.Equal(t, http.StatusConflict, statusOf(err))
}

func TestCertificateService_Errors(t *testing.T) {
	users := newFakeUsers()
	svc := NewCertificateService(&fakeCertificates{}, users, nil)
	ctx := context.Background()

	_, err := svc.Verify(ctx, "MV-DOESNOTEXIST")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Certificate not found", messageOf(err))

	_, err = svc.Issue(ctx, IssueInput{UserID: 1, Title: "T", CertificateType: "degree"})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = svc.Issue(ctx, IssueInput{UserID: 1, Title: "", CertificateType: domain.CertificateCourse})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = svc.Issue(ctx, IssueInput{UserID: 77, Title: "T", CertificateType: domain.CertificateCourse})
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}
