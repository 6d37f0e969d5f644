package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

// InterfacePushService defines web-push subscription management and delivery
type InterfacePushService interface {
	Subscribe(userID uint, req *PushSubscribeRequest) error
	Unsubscribe(userID uint, endpoint string) error
	PublicKey() string
	SendToUser(userID uint, title, message string)
}

// PushSubscribeRequest mirrors the browser PushSubscription JSON shape
type PushSubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// PushService stores browser subscriptions and delivers notifications over
// web push. Delivery is best effort; dead subscriptions are pruned when the
// push service reports them gone.
type PushService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPushService creates a new push service
func NewPushService(db *gorm.DB, cfg *config.Config) *PushService {
	return &PushService{
		DB:     db,
		Config: cfg,
	}
}

// PublicKey returns the VAPID public key the frontend subscribes with
func (s *PushService) PublicKey() string {
	return s.Config.VAPIDPublicKey
}

// Subscribe stores or refreshes a subscription for the user
func (s *PushService) Subscribe(userID uint, req *PushSubscribeRequest) error {
	if req.Endpoint == "" {
		return fmt.Errorf("endpoint is required: %w", ErrValidation)
	}

	var existing models.PushSubscription
	err := s.DB.Where("endpoint = ?", req.Endpoint).First(&existing).Error
	if err == nil {
		existing.UserID = userID
		existing.P256dh = req.Keys.P256dh
		existing.Auth = req.Keys.Auth
		return s.DB.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	sub := models.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	}
	return s.DB.Create(&sub).Error
}

// Unsubscribe removes a subscription owned by the user
func (s *PushService) Unsubscribe(userID uint, endpoint string) error {
	return s.DB.Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&models.PushSubscription{}).Error
}

// SendToUser pushes a notification to every subscription of the user
func (s *PushService) SendToUser(userID uint, title, message string) {
	if s.Config.VAPIDPublicKey == "" || s.Config.VAPIDPrivateKey == "" {
		return
	}

	var subs []models.PushSubscription
	if err := s.DB.Where("user_id = ?", userID).Find(&subs).Error; err != nil {
		config.Warning("push subscription lookup failed for user %d: %v", userID, err)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"title":   title,
		"message": message,
	})
	if err != nil {
		return
	}

	for _, sub := range subs {
		resp, err := webpush.SendNotification(payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, &webpush.Options{
			VAPIDPublicKey:  s.Config.VAPIDPublicKey,
			VAPIDPrivateKey: s.Config.VAPIDPrivateKey,
			Subscriber:      s.Config.VAPIDSubject,
			TTL:             60,
		})
		if err != nil {
			config.Warning("web push to user %d failed: %v", userID, err)
			continue
		}
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			// the browser dropped this subscription
			s.DB.Delete(&models.PushSubscription{}, sub.ID)
		}
		resp.Body.Close()
	}
}
