package services_test

import (
	"net/http"
	"testing"
	"time"

	"autoshop_backend/internal/models"
	"autoshop_backend/internal/repositories"
	"autoshop_backend/internal/services"
	"autoshop_backend/internal/services/dto"
	"autoshop_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactRequest(name string) *dto.ContactMessageRequest {
	return &dto.ContactMessageRequest{
		Name:    name,
		Email:   "kunde@example.dk",
		Message: "Hej, kan I skifte olie på tirsdag?",
	}
}

func TestContactService_Save(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewContactService(repositories.NewContactMessageRepository())

	before := time.Now().Add(-time.Second)
	saved, err := svc.Save(db, newContactRequest("Kunde"))
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.False(t, saved.Read)
	assert.True(t, saved.CreatedAt.After(before))

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored, saved.ID).Error)
	assert.False(t, stored.Read)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestContactService_ListOrderAndUnread(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewContactMessageRepository()
	svc := services.NewContactService(repo)

	now := time.Now()
	messages := []models.ContactMessage{
		{Name: "Old", Email: "a@example.dk", Message: "Gammel besked her", CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "New", Email: "b@example.dk", Message: "Ny besked her ...", CreatedAt: now},
		{Name: "Middle", Email: "c@example.dk", Message: "Mellem besked her", CreatedAt: now.Add(-time.Hour)},
	}
	for i := range messages {
		require.NoError(t, repo.Create(db, &messages[i]))
	}

	all, err := svc.ListAll(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "New", all[0].Name)
	assert.Equal(t, "Middle", all[1].Name)
	assert.Equal(t, "Old", all[2].Name)

	require.NoError(t, svc.MarkAsRead(db, messages[1].ID))

	unread, err := svc.ListUnread(db)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "Middle", unread[0].Name)
	assert.Equal(t, "Old", unread[1].Name)

	// повторная отметка ничего не ломает
	require.NoError(t, svc.MarkAsRead(db, messages[1].ID))
}

func TestContactService_MarkAsRead_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewContactService(repositories.NewContactMessageRepository())

	_, err := svc.Save(db, newContactRequest("Kunde"))
	require.NoError(t, err)

	err = svc.MarkAsRead(db, 404)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Contact message with id 404 not found", appErr.Message)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	unread, err := svc.ListUnread(db)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestContactService_Delete_IsHard(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewContactService(repositories.NewContactMessageRepository())

	saved, err := svc.Save(db, newContactRequest("Kunde"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, saved.ID))

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)

	requireAppError(t, svc.Delete(db, saved.ID), http.StatusNotFound)
}
