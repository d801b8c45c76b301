package encryption

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadMarshal(t *testing.T) {
	t.Run("Preserves Insertion Order", func(t *testing.T) {
		payload := NewPayload().
			Set("zulu", "1").
			Set("alpha", "2").
			Set("mike", "3")

		encoded, err := json.Marshal(payload)

		require.NoError(t, err)
		assert.Equal(t, `{"zulu":"1","alpha":"2","mike":"3"}`, string(encoded))
	})

	t.Run("Compact Output", func(t *testing.T) {
		payload := NewPayload().
			Set("amount", "1000").
			Set("count", 3).
			Set("active", true)

		encoded, err := json.Marshal(payload)

		require.NoError(t, err)
		assert.Equal(t, `{"amount":"1000","count":3,"active":true}`, string(encoded))
	})

	t.Run("Overwrite Keeps Original Position", func(t *testing.T) {
		payload := NewPayload().
			Set("first", "a").
			Set("second", "b").
			Set("first", "c")

		encoded, err := json.Marshal(payload)

		require.NoError(t, err)
		assert.Equal(t, `{"first":"c","second":"b"}`, string(encoded))
		assert.Equal(t, 2, payload.Len())
	})

	t.Run("Nested Values", func(t *testing.T) {
		payload := NewPayload().
			Set("meta", []map[string]string{{"key": "value"}}).
			Set("email", "a@b.com")

		encoded, err := json.Marshal(payload)

		require.NoError(t, err)
		assert.Equal(t, `{"meta":[{"key":"value"}],"email":"a@b.com"}`, string(encoded))
	})

	t.Run("Empty Payload Marshals To Empty Object", func(t *testing.T) {
		encoded, err := json.Marshal(NewPayload())

		require.NoError(t, err)
		assert.Equal(t, "{}", string(encoded))
	})

	t.Run("String Escaping", func(t *testing.T) {
		payload := NewPayload().Set("name", `O"Brien`)

		encoded, err := json.Marshal(payload)

		require.NoError(t, err)
		assert.Equal(t, `{"name":"O\"Brien"}`, string(encoded))
	})
}

func TestPayloadAccessors(t *testing.T) {
	t.Run("SetNonEmpty Skips Empty Strings", func(t *testing.T) {
		payload := NewPayload().
			SetNonEmpty("present", "value").
			SetNonEmpty("absent", "")

		_, hasPresent := payload.Get("present")
		_, hasAbsent := payload.Get("absent")

		assert.True(t, hasPresent)
		assert.False(t, hasAbsent)
		assert.Equal(t, []string{"present"}, payload.Keys())
	})

	t.Run("Get Returns Stored Value", func(t *testing.T) {
		payload := NewPayload().Set("amount", "1000")

		value, ok := payload.Get("amount")

		require.True(t, ok)
		assert.Equal(t, "1000", value)
	})

	t.Run("Keys Returns A Copy", func(t *testing.T) {
		payload := NewPayload().Set("a", 1).Set("b", 2)

		keys := payload.Keys()
		keys[0] = "mutated"

		assert.Equal(t, []string{"a", "b"}, payload.Keys())
	})
}
