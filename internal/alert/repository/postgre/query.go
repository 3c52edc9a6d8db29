package postgres

import (
	"fmt"
	"strings"

	"pulse-srv/internal/alert/repository"
	"pulse-srv/pkg/paginator"
)

const (
	alertColumns = 9

	selectAlertColumns = `id, ts, hospital_id, type, severity, title, message, metrics_json, status, ack_by, ack_ts`

	insertAlertPrefix = `INSERT INTO operational_alerts (id, ts, hospital_id, type, severity, title, message, metrics_json, status) VALUES `

	detailAlertQuery = `SELECT ` + selectAlertColumns + ` FROM operational_alerts WHERE id = $1`

	resolveAlertQuery = `UPDATE operational_alerts SET status = $2, ack_by = $3, ack_ts = $4
WHERE id = $1 AND status = $5
RETURNING ` + selectAlertColumns
)

// buildGetQuery returns the page query, the count query and their shared args.
func (r *implRepository) buildGetQuery(opts repository.GetOptions, pq paginator.PaginateQuery) (string, string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if opts.Filter.HospitalID != "" {
		add("hospital_id", opts.Filter.HospitalID)
	}
	if opts.Filter.Status != "" {
		add("status", string(opts.Filter.Status))
	}
	if opts.Filter.Severity != "" {
		add("severity", string(opts.Filter.Severity))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	count := `SELECT COUNT(*) AS total FROM operational_alerts` + where
	page := fmt.Sprintf(`SELECT %s FROM operational_alerts%s ORDER BY %s, ts DESC LIMIT %d OFFSET %d`,
		selectAlertColumns, where, severityOrder, pq.Limit, pq.Offset())
	return page, count, args
}

const severityOrder = `CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END`
