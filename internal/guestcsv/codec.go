// Package guestcsv implements the guest CSV wire format: a fixed, ordered
// 18-column header, RFC4180-style quoting, and a lossless round trip
// (export, import, re-export yields byte-identical output).
//
// The wire format is pinned to one escaping dialect: quote on comma, quote
// or newline; double internal quotes; \n record separator. The importer
// reports header mismatches positionally and keeps scanning past bad rows.
package guestcsv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hmorales/wedplan/internal/models"
)

// Header is the fixed column list, in wire order. Case-sensitive.
var Header = []string{
	"groupId",
	"firstName",
	"lastName",
	"email",
	"phone",
	"ageType",
	"guestType",
	"dietaryRestrictions",
	"plusOneName",
	"plusOneAttending",
	"arrivalDate",
	"departureDate",
	"airportCode",
	"flightNumber",
	"invitationSent",
	"invitationSentDate",
	"rsvpDeadline",
	"notes",
}

// nullable marks the columns where an empty string means null.
var nullable = map[string]bool{
	"email":               true,
	"phone":               true,
	"dietaryRestrictions": true,
	"plusOneName":         true,
	"arrivalDate":         true,
	"departureDate":       true,
	"airportCode":         true,
	"flightNumber":        true,
	"invitationSentDate":  true,
	"rsvpDeadline":        true,
	"notes":               true,
}

// LineError records a problem with one data row. Line numbers are 1-based
// positions in the document, so the first data row is line 2.
type LineError struct {
	Line    int    `json:"line"`
	Message string `json:"error"`
}

// HeaderError reports a header row that does not match Header exactly.
type HeaderError struct {
	Message string
}

func (e *HeaderError) Error() string { return e.Message }

// ErrNoData is returned when the document contains a valid header but no
// data rows.
var ErrNoData = fmt.Errorf("CSV must contain at least one data row")

// ErrEmptyInput is returned for blank input.
var ErrEmptyInput = fmt.Errorf("CSV content is required")

// escapeField encodes a single field value. Fields containing a comma, a
// double quote, or a newline are wrapped in quotes with internal quotes
// doubled; everything else is emitted as-is.
func escapeField(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func stringField(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// fieldValue stringifies one guest column. Booleans become the literal
// strings "true"/"false"; nil pointers become empty strings.
func fieldValue(g *models.Guest, column string) string {
	switch column {
	case "groupId":
		return g.GroupID
	case "firstName":
		return g.FirstName
	case "lastName":
		return g.LastName
	case "email":
		return stringField(g.Email)
	case "phone":
		return stringField(g.Phone)
	case "ageType":
		return string(g.AgeType)
	case "guestType":
		return string(g.GuestType)
	case "dietaryRestrictions":
		return stringField(g.DietaryRestrictions)
	case "plusOneName":
		return stringField(g.PlusOneName)
	case "plusOneAttending":
		return strconv.FormatBool(g.PlusOneAttending)
	case "arrivalDate":
		return stringField(g.ArrivalDate)
	case "departureDate":
		return stringField(g.DepartureDate)
	case "airportCode":
		return stringField(g.AirportCode)
	case "flightNumber":
		return stringField(g.FlightNumber)
	case "invitationSent":
		return strconv.FormatBool(g.InvitationSent)
	case "invitationSentDate":
		return stringField(g.InvitationSentDate)
	case "rsvpDeadline":
		return stringField(g.RSVPDeadline)
	case "notes":
		return stringField(g.Notes)
	}
	return ""
}

// Export encodes guests as a CSV document: the fixed header row followed by
// one row per guest, rows joined by \n. An empty slice yields a header-only
// document.
func Export(guests []models.Guest) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	for i := range guests {
		b.WriteByte('\n')
		for j, column := range Header {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(fieldValue(&guests[i], column)))
		}
	}
	return b.String()
}

// ParseLine splits one CSV line into fields with a single left-to-right scan.
// A doubled quote inside a quoted field emits one literal quote; a comma
// outside quotes closes the current field.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// setField assigns one parsed column to the guest input. Empty values in
// nullable columns stay nil; boolean columns accept the literals true/false
// case-insensitively.
func setField(in *models.CreateGuestInput, column, value string) {
	if value == "" && nullable[column] {
		return
	}
	switch column {
	case "groupId":
		in.GroupID = value
	case "firstName":
		in.FirstName = value
	case "lastName":
		in.LastName = value
	case "email":
		in.Email = &value
	case "phone":
		in.Phone = &value
	case "ageType":
		in.AgeType = models.AgeType(value)
	case "guestType":
		in.GuestType = models.GuestType(value)
	case "dietaryRestrictions":
		in.DietaryRestrictions = &value
	case "plusOneName":
		in.PlusOneName = &value
	case "plusOneAttending":
		in.PlusOneAttending = strings.EqualFold(value, "true")
	case "arrivalDate":
		in.ArrivalDate = &value
	case "departureDate":
		in.DepartureDate = &value
	case "airportCode":
		in.AirportCode = &value
	case "flightNumber":
		in.FlightNumber = &value
	case "invitationSent":
		in.InvitationSent = strings.EqualFold(value, "true")
	case "invitationSentDate":
		in.InvitationSentDate = &value
	case "rsvpDeadline":
		in.RSVPDeadline = &value
	case "notes":
		in.Notes = &value
	}
}

// Row pairs a parsed guest input with its source line number.
type Row struct {
	Line  int
	Guest models.CreateGuestInput
}

// Parse decodes a CSV document into guest inputs.
//
// It returns ErrEmptyInput for blank input, a *HeaderError when the header
// row differs from Header in count or order, and ErrNoData for a header-only
// document. Rows with the wrong field count are collected as LineErrors and
// parsing continues; the caller decides whether any line error aborts the
// batch. Line endings are normalized (\r\n → \n) before splitting.
func Parse(content string) ([]Row, []LineError, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, ErrEmptyInput
	}

	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	headers := ParseLine(lines[0])
	if len(headers) != len(Header) {
		return nil, nil, &HeaderError{Message: fmt.Sprintf(
			"CSV header mismatch: expected %d columns, got %d. Expected: %s",
			len(Header), len(headers), strings.Join(Header, ", "),
		)}
	}
	for i := range headers {
		if headers[i] != Header[i] {
			return nil, nil, &HeaderError{Message: fmt.Sprintf(
				"CSV header mismatch at column %d: expected %q, got %q",
				i+1, Header[i], headers[i],
			)}
		}
	}

	if len(lines) < 2 {
		return nil, nil, ErrNoData
	}

	var rows []Row
	var lineErrs []LineError
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		fields := ParseLine(line)
		if len(fields) != len(Header) {
			lineErrs = append(lineErrs, LineError{
				Line:    i + 1,
				Message: fmt.Sprintf("expected %d fields, got %d", len(Header), len(fields)),
			})
			continue
		}

		var in models.CreateGuestInput
		for j, column := range Header {
			setField(&in, column, fields[j])
		}
		rows = append(rows, Row{Line: i + 1, Guest: in})
	}

	return rows, lineErrs, nil
}
