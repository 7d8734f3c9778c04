package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// stubNotificationRepo keeps notification rows in memory and mirrors the
// store contract: mark-read is scoped to the recipient and marking a row
// twice, or a row that does not exist, is a no-op rather than an error.
type stubNotificationRepo struct {
	rows map[string]*models.Notification
}

func (s *stubNotificationRepo) CreateNotification(n *models.Notification) error {
	s.rows[n.ID] = n
	return nil
}

func (s *stubNotificationRepo) CreateNotifications(ns []models.Notification) error {
	for i := range ns {
		s.rows[ns[i].ID] = &ns[i]
	}
	return nil
}

func (s *stubNotificationRepo) GetByRecipientID(recipientID string, page, limit int) ([]models.NotificationWithSender, int64, error) {
	return nil, 0, nil
}

func (s *stubNotificationRepo) GetUnreadCount(recipientID string) (int64, error) {
	var count int64
	for _, n := range s.rows {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *stubNotificationRepo) MarkAsRead(notificationID, recipientID string) error {
	if n, ok := s.rows[notificationID]; ok && n.RecipientID == recipientID {
		n.IsRead = true
	}
	return nil
}

func (s *stubNotificationRepo) MarkAllAsRead(recipientID string) error {
	for _, n := range s.rows {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

func (s *stubNotificationRepo) readCount() int {
	count := 0
	for _, n := range s.rows {
		if n.IsRead {
			count++
		}
	}
	return count
}

func newMarkReadContext(t *testing.T, userID, notificationID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/notifications/:id/read")
	c.SetParamNames("id")
	c.SetParamValues(notificationID)
	c.Set("user", &models.JwtCustomClaims{UserID: userID, Username: userID})
	return c, rec
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	repo := &stubNotificationRepo{rows: map[string]*models.Notification{
		"n1": {ID: "n1", RecipientID: "reader", SenderID: "liker", Kind: models.NotificationPostLike},
		"n2": {ID: "n2", RecipientID: "reader", SenderID: "liker", Kind: models.NotificationPostLike},
	}}
	h := NewNotificationHandler(repo)

	for i := 0; i < 2; i++ {
		c, rec := newMarkReadContext(t, "reader", "n1")
		if err := h.MarkAsRead(c); err != nil {
			t.Fatalf("MarkAsRead call %d returned %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}

	if got := repo.readCount(); got != 1 {
		t.Errorf("%d rows read after marking n1 twice, want 1", got)
	}
	if !repo.rows["n1"].IsRead {
		t.Error("n1 is not read")
	}
	if repo.rows["n2"].IsRead {
		t.Error("n2 was marked read but never targeted")
	}
}

func TestMarkAsReadIgnoresForeignNotification(t *testing.T) {
	repo := &stubNotificationRepo{rows: map[string]*models.Notification{
		"n1": {ID: "n1", RecipientID: "owner", SenderID: "liker", Kind: models.NotificationPostLike},
	}}
	h := NewNotificationHandler(repo)

	c, rec := newMarkReadContext(t, "intruder", "n1")
	if err := h.MarkAsRead(c); err != nil {
		t.Fatalf("MarkAsRead returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if repo.rows["n1"].IsRead {
		t.Error("another user's notification was marked read")
	}
}

func TestMarkAsReadMissingNotification(t *testing.T) {
	repo := &stubNotificationRepo{rows: map[string]*models.Notification{}}
	h := NewNotificationHandler(repo)

	c, rec := newMarkReadContext(t, "reader", "gone")
	if err := h.MarkAsRead(c); err != nil {
		t.Fatalf("MarkAsRead returned %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMarkAllAsRead(t *testing.T) {
	repo := &stubNotificationRepo{rows: map[string]*models.Notification{
		"n1": {ID: "n1", RecipientID: "reader", IsRead: false},
		"n2": {ID: "n2", RecipientID: "reader", IsRead: true},
		"n3": {ID: "n3", RecipientID: "other", IsRead: false},
	}}
	h := NewNotificationHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.JwtCustomClaims{UserID: "reader", Username: "reader"})

	if err := h.MarkAllAsRead(c); err != nil {
		t.Fatalf("MarkAllAsRead returned %v", err)
	}

	if !repo.rows["n1"].IsRead || !repo.rows["n2"].IsRead {
		t.Error("reader's notifications are not all read")
	}
	if repo.rows["n3"].IsRead {
		t.Error("another user's notification was marked read")
	}
}
