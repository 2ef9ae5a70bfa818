package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Placeholder stands in for absent values in the logs table and the export.
const Placeholder = "—"

// ID is an opaque backend identifier. The backend has served ids both as JSON
// strings and as numbers, so decoding accepts either.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// RefOption is one selectable entry of a reference list (barges, locations,
// supervisors, labor teams).
type RefOption struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// ReferenceData bundles the four lookup lists the entry form selects from.
type ReferenceData struct {
	Barges      []RefOption
	Locations   []RefOption
	Supervisors []RefOption
	LaborTeams  []RefOption
}

// Statuses are the six barge lifecycle labels, in selector order. No ordering
// is enforced between them: any status may follow any other.
var Statuses = []string{
	"Parked",
	"At Port",
	"En Route to Mother Vessel",
	"At Mother Vessel",
	"En Route to Unloading",
	"Unloaded",
}

// EntryDraft is the create payload for one barge log entry. Every field is a
// string and is forwarded to the backend exactly as typed; the backend owns
// validation and coercion.
type EntryDraft struct {
	BargeID       string `json:"bargeId" form:"bargeId"`
	Status        string `json:"status" form:"status"`
	LocationID    string `json:"locationId" form:"locationId"`
	ArrivalTime   string `json:"arrivalTime" form:"arrivalTime"`
	BerthingTime  string `json:"berthingTime" form:"berthingTime"`
	CastOffTime   string `json:"castOffTime" form:"castOffTime"`
	DraftIn       string `json:"draftIn" form:"draftIn"`
	DraftOut      string `json:"draftOut" form:"draftOut"`
	FuelQuantity  string `json:"fuelQuantity" form:"fuelQuantity"`
	FuelTimestamp string `json:"fuelTimestamp" form:"fuelTimestamp"`
	MotherVessel  string `json:"motherVessel" form:"motherVessel"`
	SupervisorID  string `json:"supervisorId" form:"supervisorId"`
	LaborTeamID   string `json:"laborTeamId" form:"laborTeamId"`
}

// LogEntry mirrors one historical record from the backend. Foreign references
// carry both the id and, when the backend resolved it, a display name.
type LogEntry struct {
	ID             ID       `json:"id"`
	BargeID        ID       `json:"barge_id"`
	BargeName      string   `json:"barge_name"`
	Status         string   `json:"status"`
	LocationID     ID       `json:"location_id"`
	LocationName   string   `json:"location_name"`
	ArrivalTime    string   `json:"arrival_time"`
	BerthingTime   string   `json:"berthing_time"`
	CastOffTime    string   `json:"cast_off_time"`
	DraftIn        *float64 `json:"draft_in"`
	DraftOut       *float64 `json:"draft_out"`
	FuelQuantity   *float64 `json:"fuel_quantity"`
	FuelTimestamp  string   `json:"fuel_timestamp"`
	MotherVessel   string   `json:"mother_vessel"`
	SupervisorID   ID       `json:"supervisor_id"`
	SupervisorName string   `json:"supervisor_name"`
	LaborTeamID    ID       `json:"labor_team_id"`
	LaborTeamName  string   `json:"labor_team_name"`
}

// LogColumns is the fixed column order of the logs table and the exported
// workbook.
var LogColumns = []string{
	"ID",
	"Barge",
	"Status",
	"Location",
	"Arrival",
	"Berthing",
	"Cast-Off",
	"Draft In",
	"Draft Out",
	"Fuel Qty",
	"Fuel Time",
	"Mother Vessel",
	"Supervisor",
	"Labor Team",
}

// Cells renders the entry as display strings, one per LogColumns entry.
// References fall back from name to raw id to the placeholder.
func (e LogEntry) Cells() []string {
	return []string{
		orPlaceholder(string(e.ID)),
		refLabel(e.BargeName, e.BargeID),
		orPlaceholder(e.Status),
		refLabel(e.LocationName, e.LocationID),
		FormatTimestamp(e.ArrivalTime),
		FormatTimestamp(e.BerthingTime),
		FormatTimestamp(e.CastOffTime),
		formatQuantity(e.DraftIn),
		formatQuantity(e.DraftOut),
		formatQuantity(e.FuelQuantity),
		FormatTimestamp(e.FuelTimestamp),
		orPlaceholder(e.MotherVessel),
		refLabel(e.SupervisorName, e.SupervisorID),
		refLabel(e.LaborTeamName, e.LaborTeamID),
	}
}

func refLabel(name string, id ID) string {
	if name != "" {
		return name
	}
	return orPlaceholder(string(id))
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func formatQuantity(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// timestampLayouts covers what the backend emits: RFC3339 with or without
// fractional seconds, plus the datetime-local shape entries are submitted in.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatTimestamp renders a backend timestamp in local display form, the
// placeholder when absent, or the raw value when unparseable.
func FormatTimestamp(s string) string {
	if s == "" {
		return Placeholder
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local().Format("Jan 2, 2006 3:04 PM")
		}
	}
	return s
}
