package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

const (
	LevelDebug  = "debug"
	LevelInfo   = "info"
	LevelWarn   = "warn"
	LevelError  = "error"
	LevelFatal  = "fatal"
	LevelPanic  = "panic"
	LevelDPanic = "dpanic"
)

// Field keys attached to per-run log lines.
const (
	KeyHospital   = "hospital_id"
	KeyDepartment = "department_id"
	KeyRunID      = "run_id"
	KeyService    = "service"
)
