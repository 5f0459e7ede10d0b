package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/playbill/pkg/adapters"
	"github.com/de-tools/playbill/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const statementTemplate = `Statement for {{.Customer}}
{{range .Lines}}  {{.PlayName}}: {{usd .Charge}} ({{.Audience}} seats)
{{end}}Amount owed is {{usd .TotalCharge}}
You earned {{.TotalCredits}} credits
`

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount in cents as US dollars, e.g. $1,234.56.
// Dollars and cents are formatted as integers, so large amounts stay exact.
func FormatUSD(amount domain.Money) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	dollars := int64(amount / domain.SubunitsPerUnit)
	cents := int64(amount % domain.SubunitsPerUnit)
	return sign + usPrinter.Sprintf("$%d", dollars) + fmt.Sprintf(".%02d", cents)
}

// Reporter writes statements to the output in text or JSON form.
type Reporter struct {
	writer io.Writer
	format Format
	tmpl   *template.Template
}

func NewReporter(writer io.Writer, format Format) (*Reporter, error) {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}

	tmpl, err := template.New("statement").
		Funcs(template.FuncMap{"usd": FormatUSD}).
		Parse(statementTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Reporter{
		writer: writer,
		format: format,
		tmpl:   tmpl,
	}, nil
}

func (r *Reporter) Handle(statement domain.Statement) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapStatementDomainToApi(statement))
	default:
		return r.tmpl.Execute(r.writer, statement)
	}
}
