package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// Details carries the ceremony facts printed on the invitation card.
type Details struct {
	FamilyName string // FamilyName is the inviting family, e.g. "The Dabhade Family".
	Honoree    string // Honoree is whose ceremony it is, e.g. "Baby Boy".
	Parents    string // Parents is the parenthesized parents line.
	Date       string
	Time       string
	Venue      string
}

// DefaultDetails returns the ceremony details for the Dabhade family event.
func DefaultDetails() Details {
	return Details{
		FamilyName: "The Dabhade Family",
		Honoree:    "Baby Boy",
		Parents:    "(Son of Mr. & Mrs. Dabhade)",
		Date:       "Sun, Feb 14th, 2026",
		Time:       "5:30 PM Onwards",
		Venue:      "SukhSundar Bhavan, Plot No. 7, Vrundavan Colony, Near Sai Baba School, Nagpur",
	}
}

// CardData is everything the card template needs for one guest.
type CardData struct {
	GuestName string
	Details   Details
}

// cardTemplate is the full invitation document. The screenshot pipeline keys
// off three hooks in this markup: [data-card-root] marks the element whose
// on-screen scroll constraints get lifted before capture, [data-hide-download]
// marks purely interactive or animated chrome that must not appear in the
// saved image, and the text-transparent/bg-clip-text pair marks gradient text
// that gets flattened to a solid ink the rasterizer can reproduce.
var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Naamkaran Invitation</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="https://fonts.googleapis.com/css2?family=Great+Vibes&family=Cinzel:wght@500;700&family=Playfair+Display:ital@0;1&display=swap" rel="stylesheet">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    background: #fffcf5;
    font-family: 'Playfair Display', serif;
    color: #78350f;
    display: flex;
    justify-content: center;
  }
  .card {
    width: 420px;
    max-height: 640px;
    padding: 48px 36px 24px;
    text-align: center;
    background: linear-gradient(175deg, #fffcf5 0%, #fef3c7 100%);
    border: 1px solid #fcd34d;
  }
  .overflow-y-auto { overflow-y: auto; }
  .custom-scrollbar::-webkit-scrollbar { width: 4px; }
  .custom-scrollbar::-webkit-scrollbar-thumb { background: #fcd34d; }
  .family {
    font-family: 'Cinzel', serif;
    font-size: 22px;
    letter-spacing: 4px;
    text-transform: uppercase;
  }
  .intro {
    font-style: italic;
    font-size: 15px;
    margin-top: 18px;
    color: #92400e;
  }
  .guest-wrap { position: relative; margin: 20px 0 8px; }
  .guest {
    font-family: 'Great Vibes', cursive;
    font-size: 52px;
    line-height: 1.2;
    color: #b45309;
    text-shadow: 0 1px 0 #fde68a, 0 2px 6px rgba(180, 83, 9, 0.35);
  }
  .guest-shine {
    position: absolute;
    inset: 0;
    font-family: 'Great Vibes', cursive;
    font-size: 52px;
    line-height: 1.2;
    animation: shine 3s linear infinite;
  }
  .text-transparent { color: transparent; }
  .bg-clip-text {
    background-image: linear-gradient(100deg, #d97706 40%, #fef3c7 50%, #d97706 60%);
    background-size: 200% 100%;
    -webkit-background-clip: text;
    background-clip: text;
  }
  @keyframes shine {
    from { background-position: 200% 0; }
    to { background-position: -200% 0; }
  }
  .with-family { font-size: 14px; letter-spacing: 2px; color: #92400e; }
  .ceremony { margin-top: 26px; font-style: italic; font-size: 15px; }
  .honoree {
    font-family: 'Cinzel', serif;
    font-size: 30px;
    font-weight: 700;
    margin-top: 8px;
    letter-spacing: 2px;
  }
  .parents { font-size: 13px; color: #92400e; margin-top: 4px; }
  .divider {
    width: 120px;
    margin: 22px auto;
    border: 0;
    border-top: 1px solid #fcd34d;
  }
  .fact { margin-top: 12px; font-size: 15px; }
  .fact .label {
    font-family: 'Cinzel', serif;
    font-size: 11px;
    letter-spacing: 3px;
    text-transform: uppercase;
    color: #b45309;
    display: block;
    margin-bottom: 2px;
  }
  .download-bar { margin-top: 28px; }
  .download-bar button {
    font-family: 'Playfair Display', serif;
    font-size: 14px;
    padding: 10px 28px;
    border: 1px solid #d97706;
    background: #d97706;
    color: #fffcf5;
    cursor: pointer;
  }
</style>
</head>
<body>
  <div class="card overflow-y-auto custom-scrollbar" data-card-root>
    <div class="family">{{.Details.FamilyName}}</div>
    <div class="intro">Cordially invites</div>
    <div class="guest-wrap">
      <div class="guest">{{.GuestName}}</div>
      <div class="guest-shine text-transparent bg-clip-text" data-hide-download aria-hidden="true">{{.GuestName}}</div>
    </div>
    <div class="with-family">- with Family -</div>
    <div class="ceremony">To the Naamkaran Ceremony of</div>
    <div class="honoree">{{.Details.Honoree}}</div>
    <div class="parents">{{.Details.Parents}}</div>
    <hr class="divider">
    <div class="fact"><span class="label">Date</span>{{.Details.Date}}</div>
    <div class="fact"><span class="label">Time</span>{{.Details.Time}}</div>
    <div class="fact"><span class="label">Venue</span>{{.Details.Venue}}</div>
    <div class="download-bar" data-hide-download>
      <button type="button">Download Invitation</button>
    </div>
  </div>
</body>
</html>
`))

// CardHTML renders the invitation document for the given data.
func CardHTML(data CardData) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("could not execute card template: %w", err)
	}

	return buf.String(), nil
}
