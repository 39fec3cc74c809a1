package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# AirdropSim configuration
version: "1.0"

api:
  # Root address of the analysis service. Requests go to <base_url>/api/analyze.
  # Can also be set with AIRDROPSIM_API_URL (a .env file is read as well).
  base_url: "http://localhost:8000"
  # HTTP client timeout; 0 waits for the backend indefinitely.
  timeout: 0s
  # Sent to the service as "language" (en, es); passed through unchanged.
  # Leave empty to omit the field.
  language: ""

output:
  # Format for "airdropsim analyze": text, json, markdown
  default_format: "text"
  # auto, always, never
  color_mode: "auto"
  verbose: false
  # Diagnostics file used while the interactive UI owns the terminal.
  log_file: ""

ui:
  # default, high-contrast, minimal
  theme: "default"
  no_emoji: false
`
}

// MinimalSampleConfig returns a configuration file with only essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
api:
  base_url: "http://localhost:8000"
`
}
