package reading

import (
	"math/rand"
	"strings"
	"text/template"

	"soultether/internal/models"
)

// readingTemplate lays out the full textual reading: header, alignment
// section, natal anchors, the personal planets, and a closing line.
var readingTemplate = template.Must(template.New("reading").Parse(
	`╔ SOUL TETHER ╗
Birth: {{.Chart.Birth}}
Location: {{.Chart.Location}} ({{printf "%.4f" .Chart.Latitude}}°, {{printf "%.4f" .Chart.Longitude}}°)
{{.Rule}}
{{if .Hits}}
🌸 FLOWER OF LIFE NODE ALIGNMENTS (within {{printf "%.0f" .Orb}}°):
{{range .Hits}}
  ★ {{.Hit.Body}} @ {{.Hit.Sign}} {{printf "%.2f" .Hit.Longitude}}°
     FOL Node: {{printf "%.2f" .Hit.Node}}° | Orb: {{printf "%.2f" .Hit.Distance}}°
     House: {{.Hit.House}} | {{.Interpretation}}
{{end}}{{else}}
No celestial bodies align with Flower of Life nodes (within {{printf "%.0f" .Orb}}°).
{{end}}
{{.Rule}}
NATAL CHART ANCHORS:
  Ascendant: {{.Chart.Ascendant}}
  Midheaven: {{.Chart.Midheaven}}
{{range .Personal}}
  {{.Name}}: {{.Sign}} {{printf "%.1f" .Degree}}° (House {{.House}}){{end}}

{{.General}}
{{.Rule}}
`))

// personalBodies are the placements spelled out in the anchors section.
var personalBodies = []models.Body{
	models.Sun, models.Moon, models.Mercury, models.Venus, models.Mars,
}

type renderedHit struct {
	Hit            models.AlignmentHit
	Interpretation string
}

type templateData struct {
	Chart    *models.ChartRecord
	Hits     []renderedHit
	Personal []*models.PlanetRecord
	Orb      float64
	General  string
	Rule     string
}

// Renderer builds readings from charts and alignment hits.
type Renderer struct {
	interp *Interpreter
	rng    *rand.Rand
	orb    float64
}

// NewRenderer creates a Renderer. The rng drives only the closing general
// line; pass a seeded source for reproducible output in tests.
func NewRenderer(interp *Interpreter, rng *rand.Rand, orb float64) *Renderer {
	return &Renderer{interp: interp, rng: rng, orb: orb}
}

// Render produces the long-form textual reading. Interpretation text per
// hit is keyed on (body, sign, house); the chart math never feeds the
// wording, only the keys.
func (r *Renderer) Render(chart *models.ChartRecord, hits []models.AlignmentHit) (string, error) {
	data := templateData{
		Chart: chart,
		Orb:   r.orb,
		Rule:  strings.Repeat("=", 70),
	}

	for _, h := range hits {
		data.Hits = append(data.Hits, renderedHit{
			Hit:            h,
			Interpretation: r.interp.Describe(h.Body, h.Sign, h.House),
		})
	}

	for _, body := range personalBodies {
		if rec, ok := chart.Planets[body]; ok {
			data.Personal = append(data.Personal, rec)
		}
	}

	data.General = r.interp.dataset.General(r.rng)

	var b strings.Builder
	if err := readingTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
