// Package reference loads the venue reference tables: physical
// characteristics, guest experience and clientele variables. Rows carrying a
// variable name feed the flow model parameters; the rest are descriptive.
package reference

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/suolenkainen/venue-simulation/sim"
)

// Category names one reference table.
type Category string

const (
	SpaceAndLayout            Category = "space_and_layout"
	ShowInfrastructure        Category = "show_infrastructure"
	ComfortAndGuestExperience Category = "comfort_and_guest_experience"
	SafetyAndCompliance       Category = "safety_and_compliance"
	SupportAndBackstage       Category = "support_and_backstage"
	ExternalAndAccess         Category = "external_and_access"
	AdditionalVariables       Category = "additional_variables"
	ClienteleVariables        Category = "clientele_variables"
)

// Categories lists every table in display order.
var Categories = []Category{
	SpaceAndLayout,
	ShowInfrastructure,
	ComfortAndGuestExperience,
	SafetyAndCompliance,
	SupportAndBackstage,
	ExternalAndAccess,
	AdditionalVariables,
	ClienteleVariables,
}

// IsValidCategory reports whether name is a known table.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Variable names looked up when resolving VenueParameters.
const (
	VarMaxCapacity         = "maxCapacity"
	VarGuestComfort        = "guestComfort"
	VarGuestSatisfaction   = "guestSatisfaction"
	VarDrinkSalesPerGuest  = "drinkSalesPerGuest"
	VarWeekdayModifier     = "weekdayModifier"
	VarAvgDrinkPrice       = "avgDrinkPrice"
	VarTurnoverPerHour     = "turnoverPerHour"
	VarOpenHours           = "openHours"
	VarVenueAttractiveness = "venueAttractiveness"
)

// Information is the free-text header of a dataset.
type Information struct {
	RestaurantName string `yaml:"restaurant_name" json:"restaurant_name"`
	Location       string `yaml:"location" json:"location"`
}

// Row is one line of a reference table.
type Row struct {
	Attribute   string      `yaml:"attribute" json:"attribute"`
	Variable    string      `yaml:"variable,omitempty" json:"variable,omitempty"`
	Value       Value       `yaml:"value" json:"value"`
	BaseValue   Value       `yaml:"base_value,omitempty" json:"base_value,omitempty"`
	Unit        string      `yaml:"unit,omitempty" json:"unit,omitempty"`
	Range       Range       `yaml:"range,omitempty" json:"range,omitempty"`
	Effect      string      `yaml:"effect,omitempty" json:"effect,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Upgradeable Upgradeable `yaml:"upgradeable,omitempty" json:"upgradeable,omitempty"`
}

// Tables holds the rows of every category.
type Tables struct {
	SpaceAndLayout            []Row `yaml:"space_and_layout" json:"space_and_layout"`
	ShowInfrastructure        []Row `yaml:"show_infrastructure" json:"show_infrastructure"`
	ComfortAndGuestExperience []Row `yaml:"comfort_and_guest_experience" json:"comfort_and_guest_experience"`
	SafetyAndCompliance       []Row `yaml:"safety_and_compliance" json:"safety_and_compliance"`
	SupportAndBackstage       []Row `yaml:"support_and_backstage" json:"support_and_backstage"`
	ExternalAndAccess         []Row `yaml:"external_and_access" json:"external_and_access"`
	AdditionalVariables       []Row `yaml:"additional_variables" json:"additional_variables"`
	ClienteleVariables        []Row `yaml:"clientele_variables" json:"clientele_variables"`
}

// Dataset is a parsed reference file.
type Dataset struct {
	Information Information `yaml:"information" json:"information"`
	Tables      Tables      `yaml:"venue_physical_characteristics" json:"venue_physical_characteristics"`
}

// LoadDataset reads and parses a YAML reference file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a reference dataset.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}
	ds.Information.RestaurantName = strings.TrimSpace(ds.Information.RestaurantName)
	ds.Information.Location = strings.TrimSpace(ds.Information.Location)
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadParameters resolves VenueParameters from the file at path. A missing
// file is not an error: the built-in defaults are returned with a warning.
// An empty path selects the defaults silently.
func LoadParameters(path string) (sim.VenueParameters, *Dataset, error) {
	if path == "" {
		return sim.DefaultVenueParameters(), &Dataset{}, nil
	}
	ds, err := LoadDataset(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("reference data %q not found, using built-in defaults", path)
		return sim.DefaultVenueParameters(), &Dataset{}, nil
	}
	if err != nil {
		return sim.VenueParameters{}, nil, err
	}
	return ds.VenueParameters(), ds, nil
}

// Validate checks upgradeable tags and rejects a variable defined twice in
// the same table.
func (d *Dataset) Validate() error {
	for _, c := range Categories {
		seen := make(map[string]bool)
		for i, r := range d.Rows(c) {
			prefix := fmt.Sprintf("%s[%d]", c, i)
			if strings.TrimSpace(r.Attribute) == "" && r.Variable == "" {
				return fmt.Errorf("%s: attribute or variable required", prefix)
			}
			if !r.Upgradeable.IsValid() {
				return fmt.Errorf("%s: unknown upgradeable %q; valid: yes, no, sometimes, partial, usually_no", prefix, r.Upgradeable)
			}
			if r.Variable == "" {
				continue
			}
			if seen[r.Variable] {
				return fmt.Errorf("%s: variable %q defined twice", prefix, r.Variable)
			}
			seen[r.Variable] = true
			if n, ok := r.Value.Number(); ok && !sim.IsFinite(n) {
				return fmt.Errorf("%s: variable %q must be a finite number, got %f", prefix, r.Variable, n)
			}
		}
	}
	return nil
}

// Rows returns the rows of category c, nil for an unknown category.
func (d *Dataset) Rows(c Category) []Row {
	t := &d.Tables
	switch c {
	case SpaceAndLayout:
		return t.SpaceAndLayout
	case ShowInfrastructure:
		return t.ShowInfrastructure
	case ComfortAndGuestExperience:
		return t.ComfortAndGuestExperience
	case SafetyAndCompliance:
		return t.SafetyAndCompliance
	case SupportAndBackstage:
		return t.SupportAndBackstage
	case ExternalAndAccess:
		return t.ExternalAndAccess
	case AdditionalVariables:
		return t.AdditionalVariables
	case ClienteleVariables:
		return t.ClienteleVariables
	}
	return nil
}

// Lookup finds the row of category c carrying variable.
func (d *Dataset) Lookup(c Category, variable string) (Row, bool) {
	for _, r := range d.Rows(c) {
		if r.Variable == variable {
			return r, true
		}
	}
	return Row{}, false
}

// Number returns the numeric value of variable in c. Text values, lists and
// missing rows all report false.
func (d *Dataset) Number(c Category, variable string) (float64, bool) {
	r, ok := d.Lookup(c, variable)
	if !ok {
		return 0, false
	}
	return r.Value.Number()
}

// VenueParameters resolves the flow model inputs from the dataset, falling
// back to the defaults for every variable that is absent or not numeric.
func (d *Dataset) VenueParameters() sim.VenueParameters {
	p := sim.DefaultVenueParameters()
	number := func(c Category, name string, fallback float64) float64 {
		if v, ok := d.Number(c, name); ok {
			return v
		}
		return fallback
	}

	p.MaxCapacity = int(sim.RoundHalfAwayFromZero(number(SpaceAndLayout, VarMaxCapacity, float64(p.MaxCapacity))))
	p.GuestComfort = number(ComfortAndGuestExperience, VarGuestComfort, p.GuestComfort)
	p.GuestSatisfaction = number(ComfortAndGuestExperience, VarGuestSatisfaction, p.GuestSatisfaction)
	if v, ok := d.Number(ComfortAndGuestExperience, VarDrinkSalesPerGuest); ok {
		p = p.WithDrinkSalesOverride(v)
	}

	p.WeekdayModifier = number(ClienteleVariables, VarWeekdayModifier, p.WeekdayModifier)
	p.AvgDrinkPrice = number(ClienteleVariables, VarAvgDrinkPrice, p.AvgDrinkPrice)
	p.TurnoverPerHour = number(ClienteleVariables, VarTurnoverPerHour, p.TurnoverPerHour)
	p.OpenHours = int(sim.RoundHalfAwayFromZero(number(ClienteleVariables, VarOpenHours, float64(p.OpenHours))))
	p.VenueAttractiveness = number(ClienteleVariables, VarVenueAttractiveness, p.VenueAttractiveness)
	return p
}
