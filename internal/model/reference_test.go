package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_DecodeAliases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reference
	}{
		{"lowercase", `{"name":"Acme","value":"42"}`, Reference{Name: "Acme", Value: "42"}},
		{"pascal case", `{"Name":"Acme","Value":"42"}`, Reference{Name: "Acme", Value: "42"}},
		{"mixed", `{"NAME":"Acme","value":"42","Type":"Customer"}`, Reference{Type: "Customer", Name: "Acme", Value: "42"}},
		{"value only", `{"value":"7"}`, Reference{Value: "7"}},
		{"null member", `{"name":null,"value":"7"}`, Reference{Value: "7"}},
		{"lowercase wins", `{"Value":"1","value":"2"}`, Reference{Value: "2"}},
		{"unknown keys ignored", `{"value":"3","extra":true}`, Reference{Value: "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Reference
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReference_DecodeInvalid(t *testing.T) {
	var r Reference
	assert.Error(t, json.Unmarshal([]byte(`"42"`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"value":42}`), &r))
}

func TestReference_EncodeCanonical(t *testing.T) {
	data, err := json.Marshal(NamedRef("42", "Acme"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme","value":"42"}`, string(data))

	data, err = json.Marshal(Ref("42"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"42"}`, string(data))
}

func TestReference_IsSet(t *testing.T) {
	var nilRef *Reference
	assert.False(t, nilRef.IsSet())
	assert.False(t, (&Reference{Name: "Acme"}).IsSet())
	assert.True(t, Ref("1").IsSet())
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "42", Ref("42").String())
	assert.Equal(t, "Acme (42)", NamedRef("42", "Acme").String())
}
