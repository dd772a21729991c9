package response

// WebhookAckResponse acknowledges a notification. Applied, ignored and
// replayed notifications get the same body.
type WebhookAckResponse struct {
	Status string `json:"status" example:"accepted"`
}

func WebhookAccepted() WebhookAckResponse {
	return WebhookAckResponse{Status: "accepted"}
}

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
