package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/reliability-atlas/pkg/models/domain"
)

type TableConfig struct {
	TypeWidth    int
	CountWidth   int
	CoveredWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TypeWidth:    58,
		CountWidth:   9,
		CoveredWidth: 17,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(resourceType string, count interface{}, covered string) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*s |",
				c.config.TypeWidth, resourceType,
				c.config.CountWidth, count,
				c.config.CoveredWidth, covered)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.TypeWidth+2),
				strings.Repeat("-", c.config.CountWidth+2),
				strings.Repeat("-", c.config.CoveredWidth+2))
		},
		"yesno": func(v bool) string {
			if v {
				return "Yes"
			}
			return "No"
		},
	}

	tmpl := `
Reliability assessment {{.Run.RunID}}
Tenant: {{.Run.TenantID}}
Started: {{.Run.StartedAt.Format "2006-01-02 15:04:05"}} UTC, took {{printf "%.1f" .Run.Duration.Seconds}}s
Subscriptions: {{.Run.SubscriptionCount}}, resources in scope: {{.Run.ResourceCount}}

Impacted resources: {{len .ImpactedResources}}
Advisor recommendations: {{len .Advisories}}
Outages: {{len .Outages}}, retirements: {{len .Retirements}}
Service health alerts: {{len .ServiceHealth}}, support tickets: {{len .SupportTickets}}

{{separator}}
{{formatRow "Resource Type" "Count" "In APRL/Advisor"}}
{{separator}}
{{range .ResourceTypes}}{{formatRow .Type .Count (yesno .CoveredByCatalog)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
