package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// vitalRange bounds one measurement, inclusive on both ends.
type vitalRange struct {
	min, max float64
	integral bool
	label    string
}

var vitalRanges = map[string]vitalRange{
	"blood_pressure_systolic":  {40, 300, true, "Blood Pressure Systolic"},
	"blood_pressure_diastolic": {20, 200, true, "Blood Pressure Diastolic"},
	"heart_rate":               {20, 300, true, "Heart Rate"},
	"temperature":              {30.0, 45.0, false, "Temperature"},
	"respiratory_rate":         {5, 100, true, "Respiratory Rate"},
	"oxygen_saturation":        {0, 100, false, "Oxygen Saturation"},
}

// VitalsInput holds raw form values for one set of measurements. Empty
// strings mean the measurement was not taken.
type VitalsInput struct {
	Systolic         string
	Diastolic        string
	HeartRate        string
	Temperature      string
	RespiratoryRate  string
	OxygenSaturation string
	Notes            string
}

func (in VitalsInput) fields() map[string]string {
	return map[string]string{
		"blood_pressure_systolic":  strings.TrimSpace(in.Systolic),
		"blood_pressure_diastolic": strings.TrimSpace(in.Diastolic),
		"heart_rate":               strings.TrimSpace(in.HeartRate),
		"temperature":              strings.TrimSpace(in.Temperature),
		"respiratory_rate":         strings.TrimSpace(in.RespiratoryRate),
		"oxygen_saturation":        strings.TrimSpace(in.OxygenSaturation),
	}
}

// Validate checks every provided measurement against its clinical range, the
// systolic-above-diastolic rule (keyed "blood_pressure"), the at-least-one
// rule (keyed "general"), and the notes length.
func (in VitalsInput) Validate() (bool, Errors) {
	errs := Errors{}
	values := map[string]float64{}

	provided := 0
	for field, raw := range in.fields() {
		if raw == "" {
			continue
		}
		provided++
		r := vitalRanges[field]
		v, err := parseVital(raw, r)
		if err != nil {
			errs[field] = err.Error()
			continue
		}
		if v < r.min || v > r.max {
			errs[field] = rangeMessage(r)
			continue
		}
		values[field] = v
	}

	if sys, ok := values["blood_pressure_systolic"]; ok {
		if dia, ok := values["blood_pressure_diastolic"]; ok && sys <= dia {
			errs["blood_pressure"] = "Systolic blood pressure must be greater than diastolic blood pressure"
		}
	}

	if provided == 0 {
		errs["general"] = "At least one vital sign measurement is required"
	}

	errs.add("notes", TextLength(in.Notes, 500, "Notes"))
	return len(errs) == 0, errs
}

// Payload builds the request body, carrying only the measurements that were
// provided. Call it after Validate succeeds.
func (in VitalsInput) Payload() map[string]any {
	body := map[string]any{}
	for field, raw := range in.fields() {
		if raw == "" {
			continue
		}
		r := vitalRanges[field]
		if r.integral {
			if n, err := strconv.Atoi(raw); err == nil {
				body[field] = n
			}
			continue
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			body[field] = f
		}
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		body["notes"] = notes
	}
	return body
}

func parseVital(raw string, r vitalRange) (float64, error) {
	if r.integral {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fail(r.label, "%s must be an integer", r.label)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fail(r.label, "%s must be a number", r.label)
	}
	return f, nil
}

func rangeMessage(r vitalRange) string {
	if r.integral {
		return fmt.Sprintf("%s must be between %d and %d", r.label, int(r.min), int(r.max))
	}
	return fmt.Sprintf("%s must be between %g and %g", r.label, r.min, r.max)
}
