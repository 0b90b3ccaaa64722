package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code    string
		want    language.Tag
		wantErr bool
	}{
		{"", language.German, false},
		{"de", language.German, false},
		{"en", language.English, false},
		{"fr", language.Und, true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Parse(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported language")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_T(t *testing.T) {
	de := NewPrinter(language.German)
	assert.Equal(t, "Reale Entwicklung: Sozialleistungen vs. BIP pro Kopf (Index 2015=100)", de.T(ChartTitle, "2015"))
	assert.Equal(t, "Jahr", de.T(ChartXLabel))
	assert.Equal(t,
		"Die kombinierte Grafik wurde erfolgreich als 'sozialleistungen_vs_bip_final.png' gespeichert.",
		de.T(Saved, "sozialleistungen_vs_bip_final.png"))

	en := NewPrinter(language.English)
	assert.Equal(t, "Index (2010=100)", en.T(ChartYLabel, "2010"))
	assert.Equal(t, "Real GDP per capita", en.T(ChartOutput))
	assert.Equal(t, language.English, en.Tag())
}

func TestEveryKeyTranslated(t *testing.T) {
	de, en := messages[language.German], messages[language.English]
	assert.Len(t, en, len(de))
	for key := range de {
		_, ok := en[key]
		assert.True(t, ok, "missing english message %s", key)
	}
}

func TestPrinter_Number(t *testing.T) {
	de := NewPrinter(language.German)
	en := NewPrinter(language.English)

	assert.Equal(t, "10.924,6", de.Number(10924.626929621605, 1))
	assert.Equal(t, "10,924.6", en.Number(10924.626929621605, 1))
	assert.Equal(t, "100,00", de.Number(100, 2))
	assert.Equal(t, "100.00", en.Number(100, 2))
}
