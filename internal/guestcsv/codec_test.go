package guestcsv

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
)

func sptr(s string) *string { return &s }

func sampleGuest() models.Guest {
	return models.Guest{
		ID:               "g-1",
		GroupID:          "11111111-1111-1111-1111-111111111111",
		FirstName:        "Aoife",
		LastName:         "O'Brien",
		Email:            sptr("aoife@example.com"),
		AgeType:          models.AgeAdult,
		GuestType:        models.GuestWedding,
		PlusOneAttending: false,
		InvitationSent:   true,
		Notes:            sptr(`Allergic to "shellfish"`),
	}
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain value", "hello", "hello"},
		{"empty value", "", ""},
		{"embedded comma", "a,b", `"a,b"`},
		{"embedded quote", `say "hi"`, `"say ""hi"""`},
		{"embedded newline", "line1\nline2", "\"line1\nline2\""},
		{"only a quote", `"`, `""""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeField(tt.value); got != tt.want {
				t.Errorf("escapeField(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple fields", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields", "a,,c", []string{"a", "", "c"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"doubled quotes", `a,"say ""hi""",c`, []string{"a", `say "hi"`, "c"}},
		{"quoted field with both", `"a,""b""",c`, []string{`a,"b"`, "c"}},
		{"single field", "solo", []string{"solo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLine(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestExportHeaderOnly(t *testing.T) {
	got := Export(nil)
	want := strings.Join(Header, ",")
	if got != want {
		t.Errorf("Export(nil) = %q, want header-only %q", got, want)
	}
}

func TestExportFieldCount(t *testing.T) {
	csv := Export([]models.Guest{sampleGuest(), {GroupID: "g2", FirstName: "Ben", LastName: "Ng"}})
	for i, line := range strings.Split(csv, "\n") {
		if n := len(ParseLine(line)); n != len(Header) {
			t.Errorf("line %d has %d fields, want %d", i+1, n, len(Header))
		}
	}
}

func TestExportEscaping(t *testing.T) {
	csv := Export([]models.Guest{sampleGuest()})
	if !strings.Contains(csv, `"Allergic to ""shellfish"""`) {
		t.Errorf("export did not escape notes field: %q", csv)
	}
	// Unquoted boolean literals.
	if !strings.Contains(csv, ",false,") || !strings.Contains(csv, ",true,") {
		t.Errorf("export missing boolean literals: %q", csv)
	}
}

func TestParseRejectsBlankInput(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\n"} {
		if _, _, err := Parse(content); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyInput", content, err)
		}
	}
}

func TestParseHeaderMismatch(t *testing.T) {
	t.Run("wrong column count", func(t *testing.T) {
		_, _, err := Parse("firstName,lastName\nA,B")
		var headerErr *HeaderError
		if !errors.As(err, &headerErr) {
			t.Fatalf("expected HeaderError, got %v", err)
		}
		if !strings.Contains(headerErr.Message, "expected 18 columns") {
			t.Errorf("message = %q", headerErr.Message)
		}
	})

	t.Run("wrong column order", func(t *testing.T) {
		swapped := make([]string, len(Header))
		copy(swapped, Header)
		swapped[0], swapped[1] = swapped[1], swapped[0]
		_, _, err := Parse(strings.Join(swapped, ",") + "\na,b")
		var headerErr *HeaderError
		if !errors.As(err, &headerErr) {
			t.Fatalf("expected HeaderError, got %v", err)
		}
		if !strings.Contains(headerErr.Message, "column 1") {
			t.Errorf("message should name the first bad column: %q", headerErr.Message)
		}
	})
}

func TestParseHeaderOnlyIsDistinctError(t *testing.T) {
	_, _, err := Parse(strings.Join(Header, ","))
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	var headerErr *HeaderError
	if errors.As(err, &headerErr) {
		t.Error("header-only document must not be reported as a header mismatch")
	}
}

func TestParseCollectsLineErrorsAndContinues(t *testing.T) {
	good := Export([]models.Guest{sampleGuest()})
	content := good + "\nonly,three,fields\n" + strings.Split(Export([]models.Guest{{
		GroupID: "22222222-2222-2222-2222-222222222222", FirstName: "Ben", LastName: "Ng",
		AgeType: models.AgeAdult, GuestType: models.GuestWedding,
	}}), "\n")[1]

	rows, lineErrs, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (scan must continue past bad line)", len(rows))
	}
	if len(lineErrs) != 1 {
		t.Fatalf("got %d line errors, want 1", len(lineErrs))
	}
	if lineErrs[0].Line != 3 {
		t.Errorf("line error at %d, want 3", lineErrs[0].Line)
	}
}

func TestParseNullableAndBooleanConversion(t *testing.T) {
	g := sampleGuest()
	rows, lineErrs, err := Parse(Export([]models.Guest{g}))
	if err != nil || len(lineErrs) > 0 {
		t.Fatalf("Parse failed: err=%v lineErrs=%v", err, lineErrs)
	}
	in := rows[0].Guest

	if in.Phone != nil {
		t.Errorf("empty phone should stay nil, got %q", *in.Phone)
	}
	if in.Email == nil || *in.Email != "aoife@example.com" {
		t.Errorf("email = %v, want aoife@example.com", in.Email)
	}
	if in.PlusOneAttending {
		t.Error("plusOneAttending should be false")
	}
	if !in.InvitationSent {
		t.Error("invitationSent should be true")
	}
	if in.Notes == nil || *in.Notes != `Allergic to "shellfish"` {
		t.Errorf("notes = %v, want unescaped quote value", in.Notes)
	}
}

func TestParseBooleanCaseInsensitive(t *testing.T) {
	line := strings.Split(Export([]models.Guest{sampleGuest()}), "\n")[1]
	upper := strings.Replace(line, ",false,", ",TRUE,", 1)
	rows, _, err := Parse(strings.Join(Header, ",") + "\n" + upper)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !rows[0].Guest.PlusOneAttending {
		t.Error("TRUE literal should parse as true")
	}
}

// Export → parse → re-export must be byte-identical for any valid guest set.
func TestRoundTrip(t *testing.T) {
	guests := []models.Guest{
		sampleGuest(),
		{
			GroupID:   "33333333-3333-3333-3333-333333333333",
			FirstName: "Maya",
			LastName:  "Keller, Jr.",
			AgeType:   models.AgeChild,
			GuestType: models.GuestWeddingParty,
			Phone:     sptr("+1 555 0100"),
			Notes:     sptr("prefers window seat, \"aisle\" if possible"),
		},
	}

	first := Export(guests)
	rows, lineErrs, err := Parse(first)
	if err != nil || len(lineErrs) > 0 {
		t.Fatalf("Parse failed: err=%v lineErrs=%v", err, lineErrs)
	}

	reconstructed := make([]models.Guest, len(rows))
	for i, row := range rows {
		reconstructed[i] = guestFromInput(row.Guest)
	}

	second := Export(reconstructed)
	if first != second {
		t.Errorf("round trip not byte-identical:\nfirst:  %q\nsecond: %q", first, second)
	}
}

// guestFromInput mirrors what the store echoes back after a create.
func guestFromInput(in models.CreateGuestInput) models.Guest {
	return models.Guest{
		GroupID:             in.GroupID,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		AgeType:             in.AgeType,
		GuestType:           in.GuestType,
		DietaryRestrictions: in.DietaryRestrictions,
		PlusOneName:         in.PlusOneName,
		PlusOneAttending:    in.PlusOneAttending,
		ArrivalDate:         in.ArrivalDate,
		DepartureDate:       in.DepartureDate,
		AirportCode:         in.AirportCode,
		FlightNumber:        in.FlightNumber,
		InvitationSent:      in.InvitationSent,
		InvitationSentDate:  in.InvitationSentDate,
		RSVPDeadline:        in.RSVPDeadline,
		Notes:               in.Notes,
	}
}
