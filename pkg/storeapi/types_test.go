package storeapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatAcceptsStringsAndNumbers(t *testing.T) {
	var v struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
		C FlexFloat `json:"c"`
		D FlexFloat `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "59.99", "b": 12, "c": null, "d": "garbage"}`), &v))

	assert.Equal(t, FlexFloat(59.99), v.A)
	assert.Equal(t, FlexFloat(12), v.B)
	assert.Equal(t, FlexFloat(0), v.C)
	assert.Equal(t, FlexFloat(0), v.D)
}

func TestFlexStringAcceptsBareNumbers(t *testing.T) {
	var v struct {
		ID FlexString `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &v))
	assert.Equal(t, FlexString("42"), v.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "prod-7"}`), &v))
	assert.Equal(t, FlexString("prod-7"), v.ID)
}

func TestFlexBoolAcceptsPHPShapes(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`1`:       true,
		`0`:       false,
		`"1"`:     true,
		`"0"`:     false,
		`"true"`:  true,
		`"false"`: false,
		`null`:    false,
	}
	for raw, want := range cases {
		var b FlexBool
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, want, bool(b), "input %s", raw)
	}
}

func TestImagePayloadSrcPrefersImageURL(t *testing.T) {
	assert.Equal(t, "new.jpg", ImagePayload{ImageURL: "new.jpg", URL: "old.jpg"}.Src())
	assert.Equal(t, "old.jpg", ImagePayload{URL: "old.jpg"}.Src())
}
