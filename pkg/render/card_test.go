package render_test

import (
	"testing"

	"naamkaran/pkg/render"

	"github.com/stretchr/testify/require"
)

func TestCardHTML(t *testing.T) {
	html, err := render.CardHTML(render.CardData{
		GuestName: "Asha Kulkarni",
		Details:   render.DefaultDetails(),
	})
	require.NoError(t, err)

	require.Contains(t, html, "Asha Kulkarni")
	require.Contains(t, html, "The Dabhade Family")
	require.Contains(t, html, "Cordially invites")
	require.Contains(t, html, "To the Naamkaran Ceremony of")
	require.Contains(t, html, "Sun, Feb 14th, 2026")
	require.Contains(t, html, "5:30 PM Onwards")
	require.Contains(t, html, "data-card-root")
	require.Contains(t, html, "data-hide-download")
}

func TestCardHTMLEscapesGuestName(t *testing.T) {
	html, err := render.CardHTML(render.CardData{
		GuestName: `<script>alert("x")</script>`,
		Details:   render.DefaultDetails(),
	})
	require.NoError(t, err)

	require.NotContains(t, html, `<script>alert`)
	require.Contains(t, html, "&lt;script&gt;")
}
