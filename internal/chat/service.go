package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

const (
	maxHistoryMessages = 20
	maxMessageLength   = 2000

	// RoleUser and RoleAssistant are the accepted history roles.
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation history sent by the widget.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Service answers visitor questions through an OpenAI-compatible upstream.
type Service interface {
	Ask(ctx context.Context, lang i18n.Lang, history []Message) (string, error)
}

type service struct {
	cfg    config.ChatConfig
	client *http.Client
	log    *logger.Logger
}

// NewService builds the chat proxy.
func NewService(cfg config.ChatConfig, log *logger.Logger) (Service, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("chat base url required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}, nil
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *service) systemPrompt(lang i18n.Lang) string {
	if lang == i18n.LangAR {
		return s.cfg.SystemPromptAR
	}
	return s.cfg.SystemPromptEN
}

func validateHistory(history []Message) error {
	if len(history) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one message is required")
	}
	if len(history) > maxHistoryMessages {
		return pkgerrors.New(pkgerrors.CodeValidation, "conversation history is too long")
	}
	for _, msg := range history {
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			return pkgerrors.New(pkgerrors.CodeValidation, "message role must be user or assistant")
		}
		if strings.TrimSpace(msg.Content) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "message content is required")
		}
		if len(msg.Content) > maxMessageLength {
			return pkgerrors.New(pkgerrors.CodeValidation, "message content is too long")
		}
	}
	if history[len(history)-1].Role != RoleUser {
		return pkgerrors.New(pkgerrors.CodeValidation, "the last message must come from the user")
	}
	return nil
}

// Ask forwards the conversation with the language-matched system prompt
// prepended. The upstream API key never reaches the browser.
func (s *service) Ask(ctx context.Context, lang i18n.Lang, history []Message) (string, error) {
	if err := validateHistory(history); err != nil {
		return "", err
	}
	if s.cfg.APIKey == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "chat is not configured")
	}

	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{Role: "system", Content: s.systemPrompt(lang)})
	messages = append(messages, history...)

	payload, err := json.Marshal(completionRequest{
		Model:    s.cfg.Model,
		Messages: messages,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode chat request")
	}

	url := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call chat upstream")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read chat response")
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", pkgerrors.New(pkgerrors.CodeRateLimit, "chat upstream is rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Warn(ctx, fmt.Sprintf("chat upstream returned %d", resp.StatusCode))
		return "", pkgerrors.New(pkgerrors.CodeDependency, "chat upstream failed")
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode chat response")
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "chat upstream returned no answer")
	}
	return parsed.Choices[0].Message.Content, nil
}
