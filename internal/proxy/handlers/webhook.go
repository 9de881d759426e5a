package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pysugar/kreuzungen-auth/internal/logging"
)

// maxWebhookEventBytes caps an activity event body.
const maxWebhookEventBytes = 64 << 10

// webhookEvent is the push-subscription event the provider posts.
type webhookEvent struct {
	AspectType     string            `json:"aspect_type"`
	ObjectType     string            `json:"object_type"`
	ObjectID       int64             `json:"object_id"`
	OwnerID        int64             `json:"owner_id"`
	SubscriptionID int64             `json:"subscription_id"`
	EventTime      int64             `json:"event_time"`
	Updates        map[string]string `json:"updates,omitempty"`
}

// WebhookVerifyHandler answers the provider's subscription validation
// handshake by echoing hub.challenge when hub.verify_token matches.
func WebhookVerifyHandler(verifyToken string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context(), logger)
		q := r.URL.Query()
		mode, token := q.Get("hub.mode"), q.Get("hub.verify_token")

		if mode == "" || token == "" {
			writeError(w, http.StatusBadRequest, "Subscription mode and verify token required.")
			return
		}
		if mode != "subscribe" || subtle.ConstantTimeCompare([]byte(token), []byte(verifyToken)) != 1 {
			log.Warn("webhook verification rejected", zap.String("mode", mode))
			writeError(w, http.StatusForbidden, "Verification failed.")
			return
		}

		log.Info("webhook verified")
		writeJSON(w, http.StatusOK, map[string]string{"hub.challenge": q.Get("hub.challenge")})
	}
}

// WebhookEventHandler acknowledges activity events. Events are logged only;
// the provider retries anything that is not answered with 200.
func WebhookEventHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context(), logger)

		var ev webhookEvent
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookEventBytes))
		if err == nil {
			err = json.Unmarshal(body, &ev)
		}
		if err != nil {
			log.Warn("unreadable webhook event",
				zap.Error(err),
				zap.String("body", logging.TruncateBody(body)),
			)
		} else {
			log.Info("webhook event received",
				zap.String("aspect_type", ev.AspectType),
				zap.String("object_type", ev.ObjectType),
				zap.Int64("object_id", ev.ObjectID),
				zap.Int64("owner_id", ev.OwnerID),
				zap.Int64("subscription_id", ev.SubscriptionID),
			)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "EVENT_RECEIVED")
	}
}
