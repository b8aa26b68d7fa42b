package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/services"
)

// PendingRequestSubscriber opens a live view of incoming requests.
type PendingRequestSubscriber interface {
	SubscribePendingIncoming(ctx context.Context) (*services.Subscription, error)
}

// NewIncomingRequestsStreamHandler returns an HTTP handler streaming the
// caller's pending incoming requests as server-sent events. Every "requests"
// event carries the full current list.
// @Summary Stream incoming requests
// @Tags friends
// @Produce text/event-stream
// @Success 200 {object} handlers.FriendRequestsResponse "Stream of request lists"
// @Router /friends/requests/incoming/stream [get]
// @Security BearerAuth
func NewIncomingRequestsStreamHandler(svc PendingRequestSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "streaming unsupported"})
			return
		}

		ctx := r.Context()
		sub, err := svc.SubscribePendingIncoming(ctx)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer sub.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		for {
			select {
			case <-ctx.Done():
				return
			case requests, ok := <-sub.Updates():
				if !ok {
					if err := sub.Err(); err != nil {
						logger.Log.Warnw("incoming request stream ended", "error", err)
						writeEvent(w, "error", ErrorResponse{Error: services.ErrTransientStore.Error()})
						flusher.Flush()
					}
					return
				}
				writeEvent(w, "requests", FriendRequestsResponse{Requests: requests})
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to encode event", "event", event, "error", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
}
