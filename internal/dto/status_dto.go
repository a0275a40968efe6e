package dto

type RootResponse struct {
	Message string `json:"message"`
}

// StatusResponse mirrors the live store probe. Store failures are reported
// inside Database as descriptive strings, never as error status codes.
type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
