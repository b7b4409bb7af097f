package handlers

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	contactsRepo "yalasafari/database/repository/contacts"
	"yalasafari/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memContactRepo struct {
	mu       sync.Mutex
	messages map[string]*models.ContactMessage
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{messages: make(map[string]*models.ContactMessage)}
}

func (r *memContactRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *m
	r.messages[m.ID] = &copied
	return nil
}

func (r *memContactRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, contactsRepo.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *memContactRepo) List(ctx context.Context, filter contactsRepo.ListFilter) ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ContactMessage
	for _, m := range r.messages {
		if filter.UnreadOnly && m.IsRead {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *memContactRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return contactsRepo.ErrNotFound
	}
	m.IsRead = true
	return nil
}

func (r *memContactRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return contactsRepo.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

// contactNotifier records contact dispatches and ignores the rest of
// the notification surface.
type contactNotifier struct {
	mu       sync.Mutex
	contacts []string
}

func (n *contactNotifier) Contacts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.contacts...)
}

func (n *contactNotifier) ContactReceived(ctx context.Context, m *models.ContactMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.contacts = append(n.contacts, m.Email)
	return nil
}

func (n *contactNotifier) SafariBookingReceived(ctx context.Context, b *models.SafariBooking) error {
	return nil
}

func (n *contactNotifier) SafariBookingConfirmed(ctx context.Context, b *models.SafariBooking) error {
	return nil
}

func (n *contactNotifier) SafariBookingRejected(ctx context.Context, b *models.SafariBooking, reason string) error {
	return nil
}

func (n *contactNotifier) RoomBookingReceived(ctx context.Context, b *models.RoomBooking, room *models.Room) error {
	return nil
}

func (n *contactNotifier) TaxiBookingReceived(ctx context.Context, b *models.TaxiBooking, taxi *models.Taxi) error {
	return nil
}

func newContactRouter(repo contactsRepo.Repository, notifier *contactNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContactHandler(repo, notifier)
	r.POST("/api/contact", h.Submit)
	r.GET("/api/contact", h.List)
	r.PATCH("/api/contact/:id/read", h.MarkRead)
	return r
}

func TestContactSubmitRequiresNameEmailMessage(t *testing.T) {
	repo := newMemContactRepo()
	r := newContactRouter(repo, &contactNotifier{})

	cases := []gin.H{
		{"email": "asha@example.com", "message": "Do you run night tours?"},
		{"name": "Asha Perera", "message": "Do you run night tours?"},
		{"name": "Asha Perera", "email": "asha@example.com"},
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/contact", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Empty(t, repo.messages)
}

func TestContactSubmitPersistsAndNotifies(t *testing.T) {
	repo := newMemContactRepo()
	notifier := &contactNotifier{}
	r := newContactRouter(repo, notifier)

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Asha Perera",
		"email":   "asha@example.com",
		"phone":   "+94 77 123 4567",
		"subject": "Group visit",
		"message": "We are a party of six planning a morning safari.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you for your message")

	list, err := repo.List(context.Background(), contactsRepo.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Group visit", list[0].Subject)
	assert.False(t, list[0].IsRead)

	// Dispatch happens on a goroutine after the response is written.
	require.Eventually(t, func() bool {
		return len(notifier.Contacts()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"asha@example.com"}, notifier.Contacts())
}

func TestContactMarkRead(t *testing.T) {
	repo := newMemContactRepo()
	r := newContactRouter(repo, &contactNotifier{})

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Asha Perera",
		"email":   "asha@example.com",
		"message": "Availability for October?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	list, err := repo.List(context.Background(), contactsRepo.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	w = doJSON(t, r, http.MethodPatch, "/api/contact/"+list[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	unread, err := repo.List(context.Background(), contactsRepo.ListFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, unread)

	w = doJSON(t, r, http.MethodPatch, "/api/contact/missing/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
