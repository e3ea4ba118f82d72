package core

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/ir"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Report summarizes one finished session.
type Report struct {
	SessionID    string          `json:"session_id"`
	BackendName  string          `json:"backend_name"`
	Platform     string          `json:"platform"`
	Device       string          `json:"device,omitempty"`
	QubitsUsed   int             `json:"qubits_used"`
	Instructions int             `json:"instructions"`
	StartedAt    strfmt.DateTime `json:"started_at"`
	EndedAt      strfmt.DateTime `json:"ended_at"`
}

func (r *Report) String() string {
	st, err := jsonIter.Marshal(r)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal core.Report/reason:%s", err))
		return ""
	}
	return string(st)
}

// Submission is what a backend receives when a session closes.
type Submission struct {
	SessionID   string
	BackendName string
	Platform    string
	Device      string
	Root        *ir.Composite
	Report      *Report
}
