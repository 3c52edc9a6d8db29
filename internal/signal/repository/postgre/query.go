package postgres

const (
	forecastColumns = 7

	listAdmissionsQuery = `SELECT date_trunc('day', ts) AS day, SUM(count)::float8 AS count
FROM patient_inflow
WHERE hospital_id = $1 AND department_id = $2 AND ts >= $3 AND ts < $4
GROUP BY day ORDER BY day`

	listAQIQuery = `SELECT date_trunc('day', ts) AS day, MAX(aqi)::float8 AS aqi
FROM context_signals
WHERE hospital_id = $1 AND ts >= $2 AND ts < $3
GROUP BY day ORDER BY day`

	listWeatherQuery = `SELECT DISTINCT ON (date_trunc('day', ts)) date_trunc('day', ts) AS day, weather_json
FROM context_signals
WHERE hospital_id = $1 AND ts >= $2 AND ts < $3
ORDER BY date_trunc('day', ts), ts DESC`

	listBedsQuery = `SELECT DISTINCT ON (date_trunc('day', ts)) date_trunc('day', ts) AS day, beds_occupied, beds_total
FROM resource_snapshot
WHERE hospital_id = $1 AND ts >= $2 AND ts < $3
ORDER BY date_trunc('day', ts), ts DESC`

	listFestivalsQuery = `SELECT name, date, expected_impact
FROM festivals
WHERE (hospital_id = $1 OR hospital_id IS NULL) AND date >= $2 AND date < $3
ORDER BY date`

	listInventoryQuery = `SELECT item_id, item_name, current_stock, min_threshold
FROM inventory
WHERE hospital_id = $1
ORDER BY item_name`

	latestSnapshotQuery = `SELECT ts, beds_total, beds_occupied, icu_total, icu_occupied, staff_on_shift, supplies_json
FROM resource_snapshot
WHERE hospital_id = $1
ORDER BY ts DESC LIMIT 1`

	latestContextQuery = `SELECT ts, aqi, festival_flag, epidemic_tag, weather_json
FROM context_signals
WHERE hospital_id = $1
ORDER BY ts DESC LIMIT 1`

	insertForecastPrefix = `INSERT INTO forecasts (hospital_id, department_id, horizon_date, inflow_pred, inflow_ci_low, inflow_ci_high, model_version) VALUES `

	insertShortageQuery = `INSERT INTO shortages (hospital_id, department_id, horizon_date, beds_gap, staff_gap, supply_gaps_json, severity)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
)
