package controllers

import (
	"net/http"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	chatsvc "github.com/khaldoun-digital/baytkum-backend/internal/chat"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type chatMessagePayload struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type chatRequest struct {
	Messages []chatMessagePayload `json:"messages" validate:"required,min=1,max=20,dive"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// ChatAsk proxies the visitor conversation to the configured model.
func ChatAsk(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload chatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		history := make([]chatsvc.Message, 0, len(payload.Messages))
		for _, msg := range payload.Messages {
			history = append(history, chatsvc.Message{Role: msg.Role, Content: msg.Content})
		}

		reply, err := svc.Ask(r.Context(), i18n.FromContext(r.Context()), history)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, chatResponse{Reply: reply})
	}
}
