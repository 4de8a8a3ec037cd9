package entities

type Inspector struct {
	InspectorID int    `json:"inspector_id" db:"inspector_id"`
	FullName    string `json:"full_name" db:"full_name"`
}
