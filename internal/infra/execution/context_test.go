package execution

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"evolution-connector/internal/domain/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeParameters(t *testing.T, raw string) map[string]any {
	t.Helper()
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	var parameters map[string]any
	require.NoError(t, decoder.Decode(&parameters))
	return parameters
}

func TestInputDataDefaultsToSingleItem(t *testing.T) {
	ctx := NewContext(nil, nil, false)
	assert.Len(t, ctx.InputData(), 1)

	ctx = NewContext(nil, []dto.Item{{"a": 1}, {"b": 2}}, true)
	assert.Len(t, ctx.InputData(), 2)
	assert.True(t, ctx.ContinueOnFail())
}

func TestStringParameter(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"title":"Menu","remoteJid":5511999999999,"empty":""}`), nil, false)

	title, err := ctx.StringParameter("title", 0)
	require.NoError(t, err)
	assert.Equal(t, "Menu", title)

	number, err := ctx.StringParameter("remoteJid", 0)
	require.NoError(t, err)
	assert.Equal(t, "5511999999999", number)

	empty, err := ctx.StringParameter("empty", 0)
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestStringParameterMissing(t *testing.T) {
	ctx := NewContext(map[string]any{}, nil, false)

	_, err := ctx.StringParameter("instanceName", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not get parameter")

	var paramErr *ParameterError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "instanceName", paramErr.Name)
}

func TestStringParameterWrongType(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"title":{"nested":true}}`), nil, false)

	_, err := ctx.StringParameter("title", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not get parameter")
}

func TestItemIndexOutOfRange(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"title":"Menu"}`), nil, false)

	_, err := ctx.StringParameter("title", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not get parameter")
}

func TestBoolParameter(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"enableAutoRows":true,"bad":"yes"}`), nil, false)

	value, err := ctx.BoolParameter("enableAutoRows", 0, false)
	require.NoError(t, err)
	assert.True(t, value)

	value, err = ctx.BoolParameter("missing", 0, true)
	require.NoError(t, err)
	assert.True(t, value)

	_, err = ctx.BoolParameter("bad", 0, false)
	assert.Error(t, err)
}

func TestDecodeParameterDottedPath(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{
		"sectionsManual": {
			"sectionValuesManual": [
				{"title": "Drinks", "rows": {"rowValuesManual": [{"title": "Coffee"}]}}
			]
		},
		"options_message": {"delay": 1200}
	}`), nil, false)

	var sections []dto.SectionValueManual
	require.NoError(t, ctx.DecodeParameter("sectionsManual.sectionValuesManual", 0, &sections))
	require.Len(t, sections, 1)
	assert.Equal(t, "Drinks", sections[0].Title)
	require.NotNil(t, sections[0].Rows)
	assert.Equal(t, "Coffee", sections[0].Rows.RowValuesManual[0].Title)

	var options dto.MessageOptions
	require.NoError(t, ctx.DecodeParameter("options_message", 0, &options))
	assert.Equal(t, float64(1200), options.Delay)
}

func TestDecodeParameterMissingKeepsFallback(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"sectionsAuto":"not-an-object"}`), nil, false)

	sections := []dto.SectionValueAuto{}
	require.NoError(t, ctx.DecodeParameter("sectionsAuto.sectionValuesAuto", 0, &sections))
	assert.Empty(t, sections)

	require.NoError(t, ctx.DecodeParameter("sectionsManual.sectionValuesManual", 0, &sections))
	assert.NotNil(t, sections)
}

func TestDecodeParameterTypeMismatch(t *testing.T) {
	ctx := NewContext(decodeParameters(t, `{"options_message":{"delay":"soon"}}`), nil, false)

	var options dto.MessageOptions
	err := ctx.DecodeParameter("options_message", 0, &options)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not get parameter")
}
