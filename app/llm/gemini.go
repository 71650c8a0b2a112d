package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// TextGenerator is the "generate text" capability the advisory engine needs.
// sessionID scopes conversational context; implementations may ignore it.
type TextGenerator interface {
	Generate(ctx context.Context, sessionID, system, message string) (string, error)
}

// GeminiClient backs TextGenerator with the Gemini API, keeping one chat
// session per session key so follow-up turns carry prior context.
type GeminiClient struct {
	client *genai.Client
	model  string

	mu       sync.Mutex
	sessions map[string]*genai.Chat
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{
		client:   client,
		model:    model,
		sessions: make(map[string]*genai.Chat),
	}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, sessionID, system, message string) (string, error) {
	chat, err := g.session(ctx, sessionID, system)
	if err != nil {
		return "", err
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		// Drop the session so a later call starts clean.
		g.mu.Lock()
		delete(g.sessions, sessionID)
		g.mu.Unlock()
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

// session returns the cached chat for the key, creating it with the given
// system instruction on first use. The system prompt of later turns is
// ignored for an existing session: it was fixed when the session started.
func (g *GeminiClient) session(ctx context.Context, sessionID, system string) (*genai.Chat, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if chat, ok := g.sessions[sessionID]; ok {
		return chat, nil
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	chat, err := g.client.Chats.Create(ctx, g.model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	g.sessions[sessionID] = chat
	return chat, nil
}
