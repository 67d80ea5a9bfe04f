package response

import (
	"fmt"
	"sort"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
)

// Citation lists what a grounded answer was built from.
type Citation struct {
	Primary   *entity.Drug
	Secondary *entity.Drug
	sources   map[string]struct{}
}

func NewCitation(primary, secondary *entity.Drug) *Citation {
	return &Citation{
		Primary:   primary,
		Secondary: secondary,
		sources:   make(map[string]struct{}),
	}
}

// AddSource records a passage id or structured source label.
func (c *Citation) AddSource(sources ...string) {
	for _, s := range sources {
		if s != "" {
			c.sources[s] = struct{}{}
		}
	}
}

// Sources returns the recorded sources sorted and unique.
func (c *Citation) Sources() []string {
	out := make([]string, 0, len(c.sources))
	for s := range c.sources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Block renders the citation appended to the answer, "" when there are no sources.
func (c *Citation) Block() string {
	sources := c.Sources()
	if len(sources) == 0 || c.Primary == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(strings.Repeat("-", constant.CitationRuleWidth))
	sb.WriteString("\n")
	sb.WriteString(constant.CitationTitle)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, constant.CitationPrimary, c.Primary.Name, c.Primary.DrugbankId)
	sb.WriteString("\n")
	if c.Secondary != nil && c.Secondary.DrugbankId != c.Primary.DrugbankId {
		fmt.Fprintf(&sb, constant.CitationSecondary, c.Secondary.Name, c.Secondary.DrugbankId)
		sb.WriteString("\n")
	}
	sb.WriteString(constant.CitationSourcesHead)
	sb.WriteString("\n")

	lines := make([]string, len(sources))
	for i, s := range sources {
		lines[i] = "- " + s
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
