package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexName(t *testing.T) {
	assert.Equal(t, "mentorloop_material_01hgw2", IndexName("mentorloop_material", "01HGW2"))
	assert.Equal(t, "idx_abc", IndexName("idx", "abc"))
}

func TestNewChromaProvider_Validation(t *testing.T) {
	_, err := NewChromaProvider("", "idx", nil)
	assert.Error(t, err)

	_, err = NewChromaProvider("http://localhost:8000", "idx", nil)
	assert.Error(t, err)
}

func TestNewRedisProvider_Validation(t *testing.T) {
	_, err := NewRedisProvider("", "idx", nil, nil)
	assert.Error(t, err)

	_, err = NewRedisProvider("redis://localhost:6379", "idx", nil, nil)
	assert.Error(t, err)
}
