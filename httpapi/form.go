package httpapi

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/tagfold/server/vault"
)

// formPage is the selection UI: checkboxes populated from the option
// scanner, a date range, and a submit that posts to the aggregate API.
var formPage = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>tagfold</title>
</head>
<body>
  <h1>Aggregate notes</h1>
  <form method="post" action="/api/aggregate">
    <fieldset>
      <legend>Tags (none selected = all notes)</legend>
      {{range .Tags}}
      <label><input type="checkbox" name="tags" value="{{.}}"> {{.}}</label><br>
      {{else}}
      <p>No tags found.</p>
      {{end}}
    </fieldset>
    <fieldset>
      <legend>Privacy levels (none selected = no constraint)</legend>
      {{range .PrivacyLevels}}
      <label><input type="checkbox" name="privacy" value="{{.}}"> {{.}}</label><br>
      {{else}}
      <p>No privacy levels found.</p>
      {{end}}
    </fieldset>
    <fieldset>
      <legend>Date range (inclusive, YYYY-MM-DD)</legend>
      <label>From <input type="date" name="start_date"></label>
      <label>To <input type="date" name="end_date"></label>
    </fieldset>
    <button type="submit">Aggregate</button>
  </form>
</body>
</html>
`))

func (s *Server) handleIndex(c *fiber.Ctx) error {
	opts, err := vault.New(s.cfg.NotesDir, s.log).Scan()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	var buf bytes.Buffer
	if err := formPage.Execute(&buf, opts); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
