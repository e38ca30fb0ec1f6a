package goenergy

var (
	// Version of goenergy, set at build time.
	Version = "v0.1.0"

	// Build timestamp, set at build time.
	Build = "n/a"
)
