package property

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/typecms/typecms/pkg/formname"
	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// dateTimeScript converts between the visible datetime-local control (user's
// timezone) and the hidden RFC3339 field that is actually submitted.
// Placeholders: input id, hidden id, form id.
const dateTimeScript = `
const input = document.getElementById("%s");
const hidden = document.getElementById("%s");
if (hidden.value) {
    const d = new Date(hidden.value);
    input.value = d.getFullYear() + "-" + (d.getMonth()+1).toString().padStart(2, "0") + "-" + d.getDate().toString().padStart(2, "0") + "T" + d.getHours().toString().padStart(2, "0") + ":" + d.getMinutes().toString().padStart(2, "0");
}
document.getElementById("%s").addEventListener("submit", () => {
    hidden.value = new Date(input.value).toISOString();
});
`

// DateTime is a timestamp property. Go representation: time.Time. The wire
// value is RFC3339 in a hidden field; a client script handles timezone
// conversion for the visible control.
type DateTime struct{}

func (DateTime) RenderInput(value any, path formname.Path, _ string, required bool, fc *FormContext, _ *i18n.Translator) g.Node {
	inputID := uuid.NewString()
	hiddenID := uuid.NewString()
	return g.Group([]g.Node{
		html.Input(html.Type("datetime-local"), html.ID(inputID), html.Class("cms-datetime-input")),
		html.Input(
			html.Type("hidden"),
			html.Name(path.String()),
			html.ID(hiddenID),
			g.Iff(value != nil, func() g.Node {
				return html.Value(value.(time.Time).Format(time.RFC3339))
			}),
			g.If(required, html.Required()),
		),
		html.Script(html.Type("module"), g.Raw(fmt.Sprintf(dateTimeScript, inputID, hiddenID, fc.FormID))),
		html.NoScript(g.Text("JavaScript is required to enter dates in your local timezone. Please enter dates in UTC (Coordinated Universal Time) instead.")),
	})
}

func (DateTime) RenderColumn(value any, _ *i18n.Translator) g.Node {
	ts, ok := value.(time.Time)
	if !ok {
		return nil
	}
	return g.El("time",
		g.Attr("datetime", ts.Format(time.RFC3339)),
		g.Text(ts.Format("2006-01-02 15:04:05 MST")),
	)
}

func (DateTime) DecodeForm(node qs.Node) (any, error) {
	s, err := formString(node)
	if err != nil {
		return nil, err
	}
	return parseRFC3339(s)
}

func (DateTime) DecodeJSON(v any) (any, error) {
	if ts, ok := v.(time.Time); ok {
		return ts, nil
	}
	s, err := jsonString(v)
	if err != nil {
		return nil, err
	}
	return parseRFC3339(s)
}

func parseRFC3339(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrType, s)
	}
	return ts, nil
}
