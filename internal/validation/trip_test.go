package validation

import (
	"strings"
	"testing"
	"time"

	"wayfarer-backend/internal/apperr"
)

var testNow = time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC)

func validOneWay() *TripRequestPayload {
	return &TripRequestPayload{
		ManagerID: 7,
		Purpose:   "Official",
		TripType:  "One-way",
		ExtraInfo: "Visiting the Lagos office for onboarding",
		TripDetails: []TripLegPayload{
			{Origin: "Abuja", Destination: "Lagos", DepartureDate: "2020-11-07"},
		},
	}
}

func validRoundTrip() *TripRequestPayload {
	p := validOneWay()
	p.TripType = "Round-Trip"
	p.TripDetails[0].ReturnDate = "2020-11-14"
	return p
}

func validMultiLeg() *TripRequestPayload {
	p := validOneWay()
	p.TripType = "Multi-leg"
	p.TripDetails = []TripLegPayload{
		{Origin: "Abuja", Destination: "Lagos", DepartureDate: "2020-11-07"},
		{Origin: "Lagos", Destination: "Accra", DepartureDate: "2020-11-09"},
	}
	return p
}

func wantLabel(t *testing.T, err error, label string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error %q, got nil", label)
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("want validation error, got %T: %v", err, err)
	}
	if err.Error() != label {
		t.Fatalf("message = %q, want %q", err.Error(), label)
	}
}

func TestTripRequest_OneWay_Valid(t *testing.T) {
	legs, err := TripRequest(validOneWay(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(legs))
	}
	if legs[0].Origin != "Abuja" || legs[0].Destination != "Lagos" {
		t.Fatalf("leg = %+v", legs[0])
	}
	if legs[0].ReturnDate != nil {
		t.Fatalf("one-way leg must not carry a return date")
	}
}

func TestTripRequest_OneWay_RejectsReturnDate(t *testing.T) {
	p := validOneWay()
	p.TripDetails[0].ReturnDate = "2020-11-14"
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "A one-way trip should have no return date")
}

func TestTripRequest_OneWay_RejectsTwoLegs(t *testing.T) {
	p := validOneWay()
	p.TripDetails = append(p.TripDetails, p.TripDetails[0])
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "You can only have 1 origin and 1 destination for a one-way trip")
}

func TestTripRequest_RoundTrip_Valid(t *testing.T) {
	legs, err := TripRequest(validRoundTrip(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if legs[0].ReturnDate == nil {
		t.Fatal("round-trip leg must carry a return date")
	}
	if legs[0].ReturnDate.Before(legs[0].DepartureDate) {
		t.Fatal("return date precedes departure")
	}
}

func TestTripRequest_RoundTrip_RequiresReturnDate(t *testing.T) {
	p := validRoundTrip()
	p.TripDetails[0].ReturnDate = ""
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "A return trip must have a return date")
}

func TestTripRequest_RoundTrip_RejectsReturnBeforeDeparture(t *testing.T) {
	p := validRoundTrip()
	p.TripDetails[0].ReturnDate = "2020-11-01"
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "Please enter a valid return date")
}

func TestTripRequest_MultiLeg_Valid(t *testing.T) {
	legs, err := TripRequest(validMultiLeg(), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(legs))
	}
}

func TestTripRequest_MultiLeg_LegCountBounds(t *testing.T) {
	p := validMultiLeg()
	p.TripDetails = p.TripDetails[:1]
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "A Multi-city trip must have a mininmum of 2 and a maximum of 5 trip details")

	p = validMultiLeg()
	for len(p.TripDetails) < 6 {
		p.TripDetails = append(p.TripDetails, TripLegPayload{
			Origin: "Lagos", Destination: "Accra", DepartureDate: "2020-11-09",
		})
	}
	_, err = TripRequest(p, testNow)
	wantLabel(t, err, "A Multi-city trip must have a mininmum of 2 and a maximum of 5 trip details")
}

func TestTripRequest_MultiLeg_RejectsAnyReturnDate(t *testing.T) {
	p := validMultiLeg()
	p.TripDetails[1].ReturnDate = "2020-11-20"
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "A Multi-city trip should have no return date")
}

func TestTripRequest_FieldLabels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *TripRequestPayload)
		label  string
	}{
		{"missing manager", func(p *TripRequestPayload) { p.ManagerID = 0 }, "Please input a valid manager id"},
		{"empty purpose", func(p *TripRequestPayload) { p.Purpose = "" }, "Please add a short and valid purpose"},
		{"short purpose", func(p *TripRequestPayload) { p.Purpose = "a" }, "Please add a short and valid purpose"},
		{"long purpose", func(p *TripRequestPayload) { p.Purpose = strings.Repeat("x", 251) }, "Please add a short and valid purpose"},
		{"bad trip type", func(p *TripRequestPayload) { p.TripType = "kkhkh" }, "Trip type must be One-way, Round-Trip or Multi-leg"},
		{"empty trip type", func(p *TripRequestPayload) { p.TripType = "" }, "Trip type must be One-way, Round-Trip or Multi-leg"},
		{"bad extra info", func(p *TripRequestPayload) { p.ExtraInfo = "nope <script>" }, "Please fill in a valid Address"},
		{"short origin", func(p *TripRequestPayload) { p.TripDetails[0].Origin = "q" }, "Please enter a valid origin"},
		{"short destination", func(p *TripRequestPayload) { p.TripDetails[0].Destination = "q" }, "Please enter a valid destination"},
		{"empty departure", func(p *TripRequestPayload) { p.TripDetails[0].DepartureDate = "" }, "Please enter a valid departure date"},
		{"garbage departure", func(p *TripRequestPayload) { p.TripDetails[0].DepartureDate = "soon" }, "Please enter a valid departure date"},
		{"past departure", func(p *TripRequestPayload) { p.TripDetails[0].DepartureDate = "2019-01-01" }, "Please enter a valid departure date"},
		{"no legs", func(p *TripRequestPayload) { p.TripDetails = nil }, "Please add valid trip details"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validOneWay()
			tc.mutate(p)
			_, err := TripRequest(p, testNow)
			wantLabel(t, err, tc.label)
		})
	}
}

func TestTripRequest_FirstErrorWins(t *testing.T) {
	p := validOneWay()
	p.ManagerID = 0
	p.Purpose = ""
	_, err := TripRequest(p, testNow)
	// managerId is checked before purpose
	wantLabel(t, err, "Please input a valid manager id")
}

func TestTripRequest_GateRunsBeforeFieldChecks(t *testing.T) {
	p := validOneWay()
	p.Purpose = ""
	p.TripDetails[0].ReturnDate = "2020-11-14"
	_, err := TripRequest(p, testNow)
	wantLabel(t, err, "A one-way trip should have no return date")
}

func TestTripRequest_ExtraInfoAllowsCharset(t *testing.T) {
	p := validOneWay()
	p.ExtraInfo = "Suite 12, St. John's road - Lagos/Ikeja"
	if _, err := TripRequest(p, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
