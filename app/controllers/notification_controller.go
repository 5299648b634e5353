package controllers

import (
	"net/http"

	"github.com/shborse/Task-Manager/app/services"
)

// NotificationController serves a user's notification feed.
type NotificationController struct {
	Service *services.NotificationService
}

// NewNotificationController creates a new NotificationController.
func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{Service: service}
}

// GetNotifications handles GET /api/notifications?username=U. Elements
// are either task objects or plain strings.
func (c *NotificationController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.GetNotifications(r.URL.Query().Get("username")))
}
