package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOllamaEmbeddingService_Validation(t *testing.T) {
	t.Run("EmptyServerURL", func(t *testing.T) {
		svc, err := NewOllamaEmbeddingService("", "nomic-embed-text")
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "server URL cannot be empty")
	})

	t.Run("EmptyModelName", func(t *testing.T) {
		svc, err := NewOllamaEmbeddingService("http://localhost:11434", "")
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "model name cannot be empty")
	})

	t.Run("ValidArguments", func(t *testing.T) {
		// Client construction does not dial the server.
		svc, err := NewOllamaEmbeddingService("http://localhost:11434", "nomic-embed-text")
		assert.NoError(t, err)
		assert.NotNil(t, svc)
		assert.NotNil(t, svc.Embedder())
	})
}

func TestOllamaEmbeddingService_Generate_EmptyText(t *testing.T) {
	svc, err := NewOllamaEmbeddingService("http://localhost:11434", "nomic-embed-text")
	assert.NoError(t, err)

	vector, err := svc.Generate(context.Background(), "")
	assert.Error(t, err)
	assert.Nil(t, vector)
}

func TestHashString_Stable(t *testing.T) {
	a := hashString("the same text")
	b := hashString("the same text")
	c := hashString("different text")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
