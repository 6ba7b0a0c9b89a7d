package dal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/covidboard/api/covid/domain"
)

func TestInMemoryStore(t *testing.T) {
	store := NewInMemoryStore()

	dataset, ok := store.Dataset()
	assert.False(t, ok)
	assert.Nil(t, dataset)

	first := &domain.Dataset{Records: []domain.Record{{Location: "Canada", Date: "2021-01-01"}}}
	store.Replace(first)

	dataset, ok = store.Dataset()
	assert.True(t, ok)
	assert.Equal(t, first, dataset)

	second := &domain.Dataset{Records: []domain.Record{{Location: "France", Date: "2021-01-02"}}}
	store.Replace(second)

	dataset, ok = store.Dataset()
	assert.True(t, ok)
	assert.Equal(t, second, dataset)
}
