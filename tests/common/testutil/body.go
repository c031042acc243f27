//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to JSON fields.
type Mutation func(map[string]any)

// RequestMap turns a request DTO into its JSON field map and applies the mutations in order.
func RequestMap(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	fields := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, mut := range muts {
		if mut != nil {
			mut(fields)
		}
	}
	return fields
}

// With sets key to value. A nil value removes the key.
func With(key string, value any) Mutation {
	return func(fields map[string]any) {
		if value == nil {
			delete(fields, key)
			return
		}
		fields[key] = value
	}
}
