package features

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrMalformedRecord = errors.New("malformed record")

type Profile string

const (
	ProfileBasic    Profile = "basic"
	ProfileExtended Profile = "extended"
)

const (
	PropertyDescription string = "description"
	PropertySensorDesc  string = "sensor_desc"
	PropertyTimestamp   string = "timestamp"
	PropertyValue       string = "value"
	PropertyDatastream  string = "datastream"
)

type Translator struct {
	profile  Profile
	validate *validator.Validate
}

func NewTranslator(profile Profile) Translator {
	if profile == "" {
		profile = ProfileBasic
	}

	return Translator{
		profile:  profile,
		validate: validator.New(),
	}
}

// Translate turns the latest measurement of a datastream into a point feature identified
// by the code of the device that made the measurement.
func (t Translator) Translate(ds *domain.Datastream) (*geojson.Feature, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: no record", ErrMalformedRecord)
	}

	err := t.validate.Struct(ds)
	if err != nil {
		return nil, fmt.Errorf("%w: datastream %s: %s", ErrMalformedRecord, ds.ID, describe(err))
	}

	f := geojson.NewFeature(orb.Point{*ds.Device.Longitude, *ds.Device.Latitude})
	f.ID = ds.Device.Code
	f.Properties = geojson.Properties{
		PropertyDescription: ds.Device.Description,
		PropertySensorDesc:  ds.Sensor.Description,
		PropertyTimestamp:   ds.MeasurementTimestamp.Format(time.RFC3339Nano),
		PropertyValue:       *ds.MeasurementValue,
	}

	if t.profile == ProfileExtended {
		f.Properties[PropertyDatastream] = ds.ID
	}

	return f, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.StructNamespace(), "Datastream.")
		if fe.Tag() == "required" {
			problems = append(problems, field+" is missing")
		} else {
			problems = append(problems, fmt.Sprintf("%s is not a valid %s", field, fe.Tag()))
		}
	}

	return strings.Join(problems, ", ")
}
