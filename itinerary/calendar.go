package itinerary

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	calendarProductID = "-//Valentine//EN"
	eventDuration     = time.Hour + 30*time.Minute
	icalLocalLayout   = "20060102T150405"
)

// uidNamespace scopes the name-based event UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("ja-nei:plan"))

// CalendarExporter renders one iCalendar event per entry
// Entries whose time is not HH:MM have no slot on the calendar and are left out
type CalendarExporter struct{}

func (CalendarExporter) Format() string { return "ics" }

func (CalendarExporter) Export(plan Plan) (Artifact, error) {
	return Artifact{
		Filename:  plan.Filename("ics"),
		MediaType: "text/calendar;charset=utf-8",
		Data:      []byte(BuildCalendar(plan)),
	}, nil
}

// BuildCalendar serializes the plan with floating local start/end times on
// the plan date, each event lasting an hour and a half
func BuildCalendar(plan Plan) string {
	cal := ics.NewCalendar()
	cal.SetProductId(calendarProductID)

	y, m, d := plan.Date.Date()
	stamp := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	for idx, it := range plan.Entries() {
		hour, minute, err := it.Clock()
		if err != nil {
			continue
		}
		start := time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
		end := start.Add(eventDuration)

		event := cal.AddEvent(EventUID(plan, idx, it))
		event.SetDtStampTime(stamp)
		event.SetProperty(ics.ComponentPropertyDtStart, start.Format(icalLocalLayout))
		event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icalLocalLayout))
		event.SetSummary(it.Activity)
	}

	// RFC 5545 lines end in CRLF on every host
	return cal.Serialize(ics.WithNewLineWindows)
}

// EventUID is stable across exports of the same plan
func EventUID(plan Plan, idx int, it Item) string {
	name := fmt.Sprintf("%s/%d/%s/%s", plan.Date.Format("2006-01-02"), idx, it.Time, it.Activity)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@local"
}
