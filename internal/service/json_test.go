package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtoolkit/devtoolkit-go/internal/model"
)

func strPtr(s string) *string { return &s }

func TestPrettify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "flat object",
			content: `{"key":"value"}`,
			want:    "{\n    \"key\": \"value\"\n}",
		},
		{
			name:    "key order and numbers preserved",
			content: `{"b":1.50,"a":[1,2e3,{"z":null,"y":true}]}`,
			want: "{\n    \"b\": 1.50,\n    \"a\": [\n        1,\n        2e3,\n        {\n" +
				"            \"z\": null,\n            \"y\": true\n        }\n    ]\n}",
		},
		{
			name:    "scalar",
			content: ` 42 `,
			want:    "42",
		},
		{
			name:    "empty containers",
			content: `{"a":{},"b":[]}`,
			want:    "{\n    \"a\": {},\n    \"b\": []\n}",
		},
		{
			name:    "string escapes",
			content: `["café","line\nbreak","\u0041<b>"]`,
			want:    "[\n    \"café\",\n    \"line\\nbreak\",\n    \"A<b>\"\n]",
		},
		{
			name:    "duplicate key keeps last value in first position",
			content: `{"a":1,"b":2,"a":3}`,
			want:    "{\n    \"a\": 3,\n    \"b\": 2\n}",
		},
		{
			name:    "duplicate key collapses",
			content: `{"a":1,"a":2}`,
			want:    "{\n    \"a\": 2\n}",
		},
		{
			name:    "nested duplicate key",
			content: `[{"k":{"x":1},"k":[]}]`,
			want:    "[\n    {\n        \"k\": []\n    }\n]",
		},
	}

	svc := NewJSONService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Prettify(model.PrettifyRequest{Content: strPtr(tt.content)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Prettified)
		})
	}
}

func TestPrettify_Idempotent(t *testing.T) {
	svc := NewJSONService()
	first, err := svc.Prettify(model.PrettifyRequest{Content: strPtr(`{"x":[1,{"y":"z"}],"w":false}`)})
	require.NoError(t, err)

	second, err := svc.Prettify(model.PrettifyRequest{Content: strPtr(first.Prettified)})
	require.NoError(t, err)
	assert.Equal(t, first.Prettified, second.Prettified)
}

func TestPrettify_InvalidJSON(t *testing.T) {
	svc := NewJSONService()
	for _, content := range []string{"{name: Jameelah", "", "{}}", `{"a":1,}`, "[1 2]", "[1,]", "{} {}", "   "} {
		_, err := svc.Prettify(model.PrettifyRequest{Content: strPtr(content)})
		require.ErrorIs(t, err, ErrInvalidJSON, "content %q", content)
		assert.Equal(t, "Invalid JSON string.", err.Error())
	}
}

func TestPrettify_NestingLimit(t *testing.T) {
	svc := NewJSONService()

	deep := strings.Repeat("[", maxNestingDepth+2) + strings.Repeat("]", maxNestingDepth+2)
	_, err := svc.Prettify(model.PrettifyRequest{Content: strPtr(deep)})
	assert.ErrorIs(t, err, ErrInvalidJSON)

	ok := strings.Repeat("[", 100) + strings.Repeat("]", 100)
	_, err = svc.Prettify(model.PrettifyRequest{Content: strPtr(ok)})
	assert.NoError(t, err)
}

func TestPrettify_MissingContent(t *testing.T) {
	_, err := NewJSONService().Prettify(model.PrettifyRequest{})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content is required", verr.Error())
}
