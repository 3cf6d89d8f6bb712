package domain

import "time"

//Landing is the root resource of the service
type Landing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Links       []Link `json:"links"`
}

//Collection describes a named set of features
type Collection struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Links       []Link `json:"links"`
}

//Collections ...
type Collections struct {
	Links       []Link       `json:"links"`
	Collections []Collection `json:"collections"`
}

//Conformance ...
type Conformance struct {
	ConformsTo []string `json:"conformsTo"`
}

// Datastream is the latest measurement reported on a datastream, together with
// the device and sensor that produced it.
type Datastream struct {
	ID                   string     `validate:"required"`
	Device               *Device    `validate:"required"`
	Sensor               *Sensor    `validate:"required"`
	MeasurementTimestamp *time.Time `validate:"required"`
	MeasurementValue     *float64   `validate:"required"`
}

type Device struct {
	Code        string   `validate:"required"`
	Description string
	Latitude    *float64 `validate:"required,latitude"`
	Longitude   *float64 `validate:"required,longitude"`
}

type Sensor struct {
	Description string
}
