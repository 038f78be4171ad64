package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-journal/models"
)

func TestParse_FullDocument(t *testing.T) {
	data := []byte(`{
		"bull_points": ["Strong close", "Gap up"],
		"bear_points": ["Lower high"],
		"tr_points":   ["Inside bar"],
		"bias_points": ["Always in long"],
		"extra":       {"ignored": true}
	}`)

	set, defaulted, err := Parse(data)

	require.NoError(t, err)
	assert.Empty(t, defaulted)
	assert.Equal(t, []string{"Strong close", "Gap up"}, set.Bull)
	assert.Equal(t, []string{"Lower high"}, set.Bear)
	assert.Equal(t, []string{"Inside bar"}, set.TR)
	assert.Equal(t, []string{"Always in long"}, set.Bias)
}

func TestParse_NormalizesEntries(t *testing.T) {
	data := []byte(`{"bias_points": ["  Bull bias  ", 42, 1.0, -2.50, false, null, ["x"], {"y": 1}, "", "\t"]}`)

	set, _, err := Parse(data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Bull bias", "42", "1.0", "-2.50", "false"}, set.Bias)
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	set, defaulted, err := Parse([]byte(`{"bull_points": ["first"], "bull_points": ["second"]}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, set.Bull)
	assert.NotContains(t, defaulted, models.KindBull)
}

func TestParse_DuplicateKeyLastInvalidFallsBack(t *testing.T) {
	set, defaulted, err := Parse([]byte(`{"bear_points": ["first"], "bear_points": 5}`))

	require.NoError(t, err)
	assert.Equal(t, DefaultLabels(models.KindBear), set.Bear)
	assert.Contains(t, defaulted, models.KindBear)
}

func TestParse_KeepsDuplicatesAndOrder(t *testing.T) {
	set, _, err := Parse([]byte(`{"tr_points": ["b", "a", "b"]}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "b"}, set.TR)
}

func TestParse_PerKeyFallback(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing key", data: `{}`},
		{name: "string value", data: `{"bull_points": "Strong close"}`},
		{name: "object value", data: `{"bull_points": {"a": "b"}}`},
		{name: "null value", data: `{"bull_points": null}`},
		{name: "number value", data: `{"bull_points": 3}`},
		{name: "empty array", data: `{"bull_points": []}`},
		{name: "blank entries", data: `{"bull_points": ["", "   ", null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, defaulted, err := Parse([]byte(tt.data))

			require.NoError(t, err)
			assert.Equal(t, DefaultLabels(models.KindBull), set.Bull)
			assert.Contains(t, defaulted, models.KindBull)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty", data: ``, wantErr: ErrMalformedJSON},
		{name: "garbage", data: `bull_points: [a]`, wantErr: ErrMalformedJSON},
		{name: "unterminated", data: `{"bull_points": [`, wantErr: ErrMalformedJSON},
		{name: "array root", data: `[]`, wantErr: ErrNotAnObject},
		{name: "number root", data: `7`, wantErr: ErrNotAnObject},
		{name: "null root", data: `null`, wantErr: ErrNotAnObject},
		{name: "invalid utf-8 in label", data: "{\"bull_points\": [\"a\xff\xfeb\"]}", wantErr: ErrMalformedJSON},
		{name: "invalid utf-8 in unused key", data: "{\"notes\": \"\xc3\x28\"}", wantErr: ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaults_EveryKindNonEmpty(t *testing.T) {
	d := Defaults()
	for _, k := range models.Kinds {
		assert.NotEmpty(t, d.Labels(k), "kind %s", k)
		for _, label := range d.Labels(k) {
			assert.NotEmpty(t, label)
		}
	}
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	d := Defaults()
	d.Bear[0] = "changed"
	DefaultLabels(models.KindTR)[0] = "changed"

	assert.NotEqual(t, "changed", Defaults().Bear[0])
	assert.NotEqual(t, "changed", Defaults().TR[0])
}
