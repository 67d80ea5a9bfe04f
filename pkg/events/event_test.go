package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	original := InteractionFlagged("u1", "DB00945", "DB00682")

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, TypeInteractionFlagged, decoded.EventType())
	assert.Equal(t, "DB00682", decoded.Payload()["secondary_id"])
	assert.True(t, original.Timestamp().Equal(decoded.Timestamp()))
}

func TestDecode_RejectsUntyped(t *testing.T) {
	_, err := Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}
