package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintf_BadFormat(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "", want: "Unrecognized column format 'projectheader.bogus'"},
		{locale: "en", want: "Unrecognized column format 'projectheader.bogus'"},
		{locale: "de", want: "Unbekanntes Spaltenformat 'projectheader.bogus'"},
	}

	for _, tt := range tests {
		t.Run("locale "+tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPrinter(tt.locale).Sprintf(ColumnBadFormat, "projectheader", "bogus"))
		})
	}
}

func TestNewPrinter(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "default locale", locale: "", key: ProjectLabel, want: "Project"},
		{name: "english", locale: "en-US", key: ProjectLabel, want: "Project"},
		{name: "german", locale: "de", key: ProjectLabel, want: "Projekt"},
		{name: "german falls back to english", locale: "de", key: ProjectExampleParent, want: "home"},
		{name: "unsupported locale", locale: "ja", key: DescLabel, want: "Description"},
		{name: "malformed locale", locale: "not a locale!", key: IDLabel, want: "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPrinter(tt.locale).Sprintf(tt.key))
		})
	}
}

func TestSprintf_UnknownKeyEchoesKey(t *testing.T) {
	assert.Equal(t, "no.such.key", NewPrinter("").Sprintf("no.such.key"))
}
