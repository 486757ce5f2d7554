package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumefill/pkg/config"
	"github.com/artem13815/resumefill/pkg/llm/gemini"
	"github.com/artem13815/resumefill/pkg/llm/openrouter"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	m, err := New(ctx, config.Config{Provider: config.ProviderGemini, GeminiAPIKey: "k", GeminiModel: "gemini-2.5-pro", ExtractTimeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, m)
	assert.Equal(t, "gemini-2.5-pro", m.Name())

	m, err = New(ctx, config.Config{Provider: config.ProviderOpenRouter, OpenRouterAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &openrouter.Client{}, m)
	assert.Equal(t, openrouter.DefaultModel, m.Name())

	m, err = New(ctx, config.Config{Provider: config.ProviderGemini})
	assert.Error(t, err)
	assert.Nil(t, m)

	_, err = New(ctx, config.Config{Provider: "bard"})
	assert.Error(t, err)
}
