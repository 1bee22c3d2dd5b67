package sqltool

// #region imports
import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// #endregion

// #region errors

// ErrNoTemplate means the question matched none of the known SQL templates.
var ErrNoTemplate = errors.New(
	"no SQL template matched; try: 'Show top 5 customers by total orders' or 'Top 3 customers by total spent'",
)

// #endregion

// #region templates

var topNPattern = regexp.MustCompile(`top\s+(\d+)`)

// TemplateFor maps a natural-language question onto one of the known
// deterministic SQL templates. No model involved; unsupported questions
// return ErrNoTemplate.
func TemplateFor(question string) (string, error) {
	q := strings.ToLower(question)

	limit := 5
	if m := topNPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			limit = n
		}
	}

	mentionsTop := strings.Contains(q, "top") || strings.Contains(q, "most")

	if strings.Contains(q, "customer") && strings.Contains(q, "order") && mentionsTop {
		return fmt.Sprintf(
			`SELECT c.id, c.name, COUNT(o.id) AS total_orders `+
				`FROM customers c JOIN orders o ON o.customer_id = c.id `+
				`GROUP BY c.id, c.name ORDER BY total_orders DESC LIMIT %d`, limit), nil
	}

	spendWords := strings.Contains(q, "spent") || strings.Contains(q, "revenue") || strings.Contains(q, "total amount")
	if strings.Contains(q, "customer") && spendWords && mentionsTop {
		return fmt.Sprintf(
			`SELECT c.id, c.name, COALESCE(SUM(o.amount), 0) AS total_spent `+
				`FROM customers c JOIN orders o ON o.customer_id = c.id `+
				`GROUP BY c.id, c.name ORDER BY total_spent DESC LIMIT %d`, limit), nil
	}

	if strings.Contains(q, "ticket") && (strings.Contains(q, "status") || strings.Contains(q, "open") || strings.Contains(q, "closed")) {
		return `SELECT status, COUNT(*) AS total FROM tickets GROUP BY status ORDER BY total DESC LIMIT 50`, nil
	}

	return "", ErrNoTemplate
}

// #endregion
