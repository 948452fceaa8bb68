package aicontent

import "context"

type AIContentContainer struct {
	Handler *Handler
}

func NewAIContentContainer() *AIContentContainer {
	ctx := context.Background()
	provider, _ := NewGeminiProvider(ctx)
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIContentContainer{
		Handler: handler,
	}
}
