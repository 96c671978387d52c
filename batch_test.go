package textnorm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishNormalizeAll(t *testing.T) {
	en := newTestEnglish(t, WithWorkers(3))

	texts := make([]string, 50)
	want := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("item %d costs twenty dollars", i)
		want[i] = fmt.Sprintf("item %d costs $20", i)
	}
	want[1] = "item one costs $20"

	got, err := en.NormalizeAll(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBasicNormalizeAll(t *testing.T) {
	b := NewBasic(WithLogger(discardLogger()), WithWorkers(2))

	got, err := b.NormalizeAll(context.Background(), []string{"A, B", "(x) C!"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c"}, got)
}

func TestNormalizeAllEmpty(t *testing.T) {
	en := newTestEnglish(t)

	got, err := en.NormalizeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeAllCancelled(t *testing.T) {
	en := newTestEnglish(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := en.NormalizeAll(ctx, []string{"one", "two"})
	require.ErrorIs(t, err, context.Canceled)
}
