package neon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_PreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"z": 1, "a": 2}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, v.Obj().Keys())
}

func TestJSON_RoundTrip(t *testing.T) {
	input := []byte(`{"id":1,"name":"alice","active":true,"tags":["a","b"],"meta":null}`)
	v, err := FromJSON(input)
	require.NoError(t, err)

	out, err := ToJSON(v, "")
	require.NoError(t, err)

	v2, err := FromJSON(out)
	require.NoError(t, err)
	assert.True(t, Equal(v, v2))
}

func TestJSON_ThroughNEON(t *testing.T) {
	input := []byte(`{"id":1,"name":"alice","active":true}`)
	v, err := FromJSON(input)
	require.NoError(t, err)

	neonText, err := Encode(v)
	require.NoError(t, err)

	decoded, err := Decode(neonText)
	require.NoError(t, err)
	assert.True(t, Equal(v, decoded))
}
