package version

const (
	AppName        = "Aurelia"
	AppDescription = "A slowly-evolving affective entity fed by journal entries."
	AppVersion     = "0.3.0"
)
