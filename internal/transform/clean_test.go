package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain ascii untouched",
			in:   "hello, world",
			want: "hello, world",
		},
		{
			name: "astral plane character replaced",
			in:   "ok \U0001F600 ok",
			want: "ok � ok",
		},
		{
			name: "combining sequence composed to NFC",
			in:   "café",
			want: "café",
		},
		{
			name: "bmp characters kept",
			in:   "Résoørt �",
			want: "Résoørt �",
		},
		{
			name: "invalid utf8 replaced",
			in:   "bad\xffbyte",
			want: "bad�byte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_OutputIsNFC(t *testing.T) {
	in := "Å" // A + combining ring above
	got := Clean(in)
	assert.True(t, norm.NFC.IsNormalString(got))
	assert.Equal(t, "Å", got)
}
