package domain_test

import (
	"encoding/base64"
	"testing"

	"naamkaran/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestHyphenateName(t *testing.T) {
	cases := map[string]string{
		"Rahul Sharma":     "Rahul-Sharma",
		"Aarav  Mehta":     "Aarav-Mehta",
		"  Priya Patel  ":  "Priya-Patel",
		"Single":           "Single",
		"tab\tseparated":   "tab-separated",
		"multi word name ": "multi-word-name",
	}

	for in, want := range cases {
		require.Equal(t, want, domain.HyphenateName(in))
	}
}

func TestDownloadFilename(t *testing.T) {
	require.Equal(t, "Naamkaran-Invitation-Rahul-Sharma.png", domain.DownloadFilename("Rahul Sharma"))
}

func TestAttachmentFilename(t *testing.T) {
	require.Equal(t, "Invitation-Aarav-Mehta.png", domain.AttachmentFilename("Aarav Mehta"))
}

func TestDecodeAttachment_roundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	img := domain.RenderedImage{Encoding: domain.PNGEncoding, Payload: base64.StdEncoding.EncodeToString(raw)}

	got, err := domain.DecodeAttachment(img.DataURI())
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestDecodeAttachment_bareBase64(t *testing.T) {
	raw := []byte("card bytes")

	got, err := domain.DecodeAttachment(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestDecodeAttachment_invalid(t *testing.T) {
	_, err := domain.DecodeAttachment("data:image/png;base64,!!!not-base64!!!")
	require.Error(t, err)
}

func TestRenderedImage_Bytes(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	img := domain.RenderedImage{Encoding: domain.PNGEncoding, Payload: base64.StdEncoding.EncodeToString(raw)}

	got, err := img.Bytes()
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestValidEmailAddress(t *testing.T) {
	valid := []string{"aarav@example.com", "a.b+c@mail.example.org"}
	invalid := []string{"", "no-at-sign", "missing@dot", "spaces in@example.com", "@example.com"}

	for _, addr := range valid {
		require.True(t, domain.ValidEmailAddress(addr), addr)
	}
	for _, addr := range invalid {
		require.False(t, domain.ValidEmailAddress(addr), addr)
	}
}
