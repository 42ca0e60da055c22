package domain

// FieldDefinition and FieldValue mirror the people directory's custom field
// storage: values reference definitions by ID and carry loosely typed data.
type FieldDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FieldValue struct {
	FieldDefinitionID string `json:"field_definition_id"`
	Value             any    `json:"value"`
}

// RawBackgroundCheck is a background check as reported by the screening
// provider, dates still unparsed.
type RawBackgroundCheck struct {
	Status      string `json:"status"`
	CompletedAt string `json:"completed_at"`
	ExpiresOn   string `json:"expires_on"`
}

type PersonRecord struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	FieldDefinitions []FieldDefinition    `json:"field_definitions"`
	FieldValues      []FieldValue         `json:"field_values"`
	BackgroundChecks []RawBackgroundCheck `json:"background_checks"`
}
