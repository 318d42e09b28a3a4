package entities

import (
	"encoding/json"
	"time"
)

// Dispatch is the record of one sendList attempt.
type Dispatch struct {
	ID           string          `json:"id" bson:"_id"`
	InstanceName string          `json:"instanceName" bson:"instance_name"`
	Number       string          `json:"number" bson:"number"`
	SectionCount int             `json:"sectionCount" bson:"section_count"`
	RowCount     int             `json:"rowCount" bson:"row_count"`
	Success      bool            `json:"success" bson:"success"`
	Response     json.RawMessage `json:"response,omitempty" bson:"response,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty" bson:"error_message,omitempty"`
	ErrorCode    string          `json:"errorCode,omitempty" bson:"error_code,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" bson:"created_at"`
}
