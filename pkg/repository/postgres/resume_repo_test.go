package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func TestBuildUpdateSet(t *testing.T) {
	t.Run("whitelisted fields only", func(t *testing.T) {
		set, args, err := buildUpdateSet(map[string]any{
			"name":   "Ada",
			"email":  "ada@example.com",
			"foo":    "bar",
			"id":     "must-not-pass",
			"status": "archived",
		})
		require.NoError(t, err)
		assert.Equal(t, "name = $1, email = $2, status = $3", set)
		assert.Equal(t, []any{"Ada", "ada@example.com", "archived"}, args)
	})

	t.Run("no whitelisted field present", func(t *testing.T) {
		_, _, err := buildUpdateSet(map[string]any{"foo": "bar", "uploaded_at": "2024-01-01"})
		assert.ErrorIs(t, err, resume.ErrNoFields)
	})

	t.Run("empty body", func(t *testing.T) {
		_, _, err := buildUpdateSet(map[string]any{})
		assert.ErrorIs(t, err, resume.ErrNoFields)
	})

	t.Run("explicit null is not an update", func(t *testing.T) {
		_, _, err := buildUpdateSet(map[string]any{"name": nil, "resume_rating": nil})
		assert.ErrorIs(t, err, resume.ErrNoFields)
	})

	t.Run("null fields are dropped alongside real ones", func(t *testing.T) {
		set, args, err := buildUpdateSet(map[string]any{"name": nil, "email": "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "email = $1", set)
		assert.Equal(t, []any{"ada@example.com"}, args)
	})

	t.Run("rating arrives as json float", func(t *testing.T) {
		set, args, err := buildUpdateSet(map[string]any{"resume_rating": float64(7)})
		require.NoError(t, err)
		assert.Equal(t, "resume_rating = $1", set)
		assert.Equal(t, []any{7}, args)
	})

	t.Run("analysis result is marshaled", func(t *testing.T) {
		set, args, err := buildUpdateSet(map[string]any{
			"analysis_result": map[string]any{"summary": "updated"},
		})
		require.NoError(t, err)
		assert.Equal(t, "analysis_result = $1", set)
		require.Len(t, args, 1)
		assert.JSONEq(t, `{"summary":"updated"}`, string(args[0].([]byte)))
	})

	t.Run("clause order is deterministic", func(t *testing.T) {
		first, _, err := buildUpdateSet(map[string]any{"status": "a", "name": "b", "summary": "c"})
		require.NoError(t, err)
		second, _, err := buildUpdateSet(map[string]any{"summary": "c", "status": "a", "name": "b"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, "name = $1, summary = $2, status = $3", first)
	})
}
