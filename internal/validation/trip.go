package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"wayfarer-backend/internal/apperr"
)

const dateLayout = "2006-01-02"

// Field labels are literal API contract strings; changing them breaks clients.
const (
	labelManagerID     = "Please input a valid manager id"
	labelPurpose       = "Please add a short and valid purpose"
	labelTripType      = "Trip type must be One-way, Round-Trip or Multi-leg"
	labelExtraInfo     = "Please fill in a valid Address"
	labelTripDetails   = "Please add valid trip details"
	labelOrigin        = "Please enter a valid origin"
	labelDestination   = "Please enter a valid destination"
	labelDepartureDate = "Please enter a valid departure date"
	labelReturnDate    = "Please enter a valid return date"
)

var reExtraInfo = regexp.MustCompile(`^[\w',\-\\/.\s]*$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// extraInfo: word characters, apostrophe, comma, hyphen, slash, period,
	// whitespace only
	_ = v.RegisterValidation("addrchars", func(fl validator.FieldLevel) bool {
		return reExtraInfo.MatchString(fl.Field().String())
	})
	return v
}

var v = newValidator()

// check runs one validator tag expression and converts any failure into the
// labeled validation error. Checks are applied in declaration order and the
// first failure wins.
func check(value any, tag, label string) error {
	if err := v.Var(value, tag); err != nil {
		return apperr.Validation(label)
	}
	return nil
}

// TripRequest validates a trip request payload against the field rules and
// the trip-type/leg-count cross-field gate, returning parsed legs on success.
// The cross-field gate runs first; per-field checks follow in order.
func TripRequest(p *TripRequestPayload, now time.Time) ([]ParsedLeg, error) {
	if err := tripTypeGate(p); err != nil {
		return nil, err
	}
	if err := check(p.ManagerID, "required,gt=0", labelManagerID); err != nil {
		return nil, err
	}
	if err := check(p.Purpose, "required,min=3,max=250", labelPurpose); err != nil {
		return nil, err
	}
	if err := check(p.TripType, "required,oneof='One-way' 'Round-Trip' 'Multi-leg'", labelTripType); err != nil {
		return nil, err
	}
	if err := check(p.ExtraInfo, "required,min=3,max=1000,addrchars", labelExtraInfo); err != nil {
		return nil, err
	}
	if len(p.TripDetails) == 0 {
		return nil, apperr.Validation(labelTripDetails)
	}

	today := now.Truncate(24 * time.Hour)
	legs := make([]ParsedLeg, 0, len(p.TripDetails))
	for _, d := range p.TripDetails {
		leg, err := tripLeg(&d, p.TripType, today)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

func tripLeg(d *TripLegPayload, tripType string, today time.Time) (ParsedLeg, error) {
	var leg ParsedLeg
	if err := check(d.Origin, "required,min=3,max=25", labelOrigin); err != nil {
		return leg, err
	}
	if err := check(d.Destination, "required,min=3,max=25", labelDestination); err != nil {
		return leg, err
	}
	if err := check(d.DepartureDate, "required,datetime=2006-01-02", labelDepartureDate); err != nil {
		return leg, err
	}
	departure, err := time.Parse(dateLayout, d.DepartureDate)
	if err != nil || departure.Before(today) {
		return leg, apperr.Validation(labelDepartureDate)
	}
	leg = ParsedLeg{Origin: d.Origin, Destination: d.Destination, DepartureDate: departure}

	if tripType == tripRoundTrip {
		if err := check(d.ReturnDate, "required,datetime=2006-01-02", labelReturnDate); err != nil {
			return leg, err
		}
		ret, err := time.Parse(dateLayout, d.ReturnDate)
		if err != nil || ret.Before(departure) {
			return leg, apperr.Validation(labelReturnDate)
		}
		leg.ReturnDate = &ret
	} else if d.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, d.ReturnDate)
		if err != nil {
			return leg, apperr.Validation(labelReturnDate)
		}
		leg.ReturnDate = &ret
	}
	return leg, nil
}

const (
	tripOneWay    = "One-way"
	tripRoundTrip = "Round-Trip"
	tripMultiLeg  = "Multi-leg"
)

// tripTypeGate enforces the leg-count / return-date pairing for each trip
// type. An unknown trip type falls through so the tripType field check can
// report it with its own label.
func tripTypeGate(p *TripRequestPayload) error {
	legs := len(p.TripDetails)
	if legs == 0 {
		return nil
	}
	switch p.TripType {
	case tripOneWay:
		if legs != 1 {
			return apperr.Validation("You can only have 1 origin and 1 destination for a one-way trip")
		}
		if p.TripDetails[0].ReturnDate != "" {
			return apperr.Validation("A one-way trip should have no return date")
		}
	case tripRoundTrip:
		if legs != 1 {
			return apperr.Validation("You can only have 1 origin and 1 destination for a Return-trip")
		}
		if p.TripDetails[0].ReturnDate == "" {
			return apperr.Validation("A return trip must have a return date")
		}
	case tripMultiLeg:
		if legs < 2 || legs > 5 {
			return apperr.Validation("A Multi-city trip must have a mininmum of 2 and a maximum of 5 trip details")
		}
		for _, d := range p.TripDetails {
			if d.ReturnDate != "" {
				return apperr.Validation("A Multi-city trip should have no return date")
			}
		}
	}
	return nil
}
