package driver

import (
	"encoding/json"
	"fmt"
	"strings"

	"zomlang/internal/diag"
	"zomlang/internal/source"
)

// timingPhase is one timed stage of a front-end run. The JSON field names
// are the contract diagfmt's timing-note renderer parses.
type timingPhase struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

type timingPayload struct {
	Kind    string        `json:"kind"`
	Path    string        `json:"path,omitempty"`
	TotalMS float64       `json:"total_ms"`
	Phases  []timingPhase `json:"phases"`
}

// reportTimings emits one ObsTimings diagnostic through the engine: a short
// human-readable summary as the message, with the machine-readable payload
// attached as a JSON note so diagfmt can render the structured table.
func (d *CompilerDriver) reportTimings(payload timingPayload) {
	if payload.Kind == "" {
		payload.Kind = "frontend"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	d.diags.Report(diag.ObsTimings, diag.SevNote, source.Span{}, timingSummary(payload),
		[]diag.Note{{Msg: string(data)}}, nil)
}

func timingSummary(payload timingPayload) string {
	var b strings.Builder
	for _, phase := range payload.Phases {
		if phase.Name == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" • ")
		}
		fmt.Fprintf(&b, "%s %.2fms", phase.Name, phase.DurationMS)
		if phase.Note != "" {
			fmt.Fprintf(&b, " (%s)", phase.Note)
		}
	}
	if b.Len() > 0 {
		b.WriteString(" • ")
	}
	fmt.Fprintf(&b, "total %.2fms", payload.TotalMS)
	msg := fmt.Sprintf("timings (%s): %s", payload.Kind, b.String())
	if payload.Path != "" {
		msg = fmt.Sprintf("%s — %s", msg, payload.Path)
	}
	return msg
}
