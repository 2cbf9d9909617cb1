package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// DateLayout is used for every date shown to the user.
const DateLayout = "2006-01-02"

// DateTimeLayout is used for event start and end times.
const DateTimeLayout = "2006-01-02 15:04"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDate renders an optional date, or a dim "--" when unset.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Dim("--")
	}
	return t.Format(DateLayout)
}

// FormatHours renders a duration as whole hours and minutes, e.g. "2h 30m".
func FormatHours(d time.Duration) string {
	min := int(d.Round(time.Minute).Minutes())
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatMoney rounds an amount to grosze and appends the currency.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + " zł"
}

// FormatQuantity trims trailing zeros, e.g. 2.50 becomes "2.5".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// FormatPercent renders a percentage without needless decimals.
func FormatPercent(d decimal.Decimal) string {
	return d.String() + "%"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
