package handlers

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/exp/slices"
)

const idColumn string = "id"

type fgbColumn struct {
	name    string
	colType flattypes.ColumnType
}

// convertFeaturesToFlatGeobuf encodes a collection of point features as a FlatGeobuf
// file. The feature id is stored in the first column, followed by one column per property.
func convertFeaturesToFlatGeobuf(name string, fc *geojson.FeatureCollection) ([]byte, error) {
	columns := fgbColumns(fc)

	builder := flatbuffers.NewBuilder(4096)

	header := writer.NewHeader(builder)
	header.SetName(name)
	header.SetGeometryType(flattypes.GeometryTypePoint)

	headerColumns := make([]*writer.Column, 0, len(columns))
	for _, c := range columns {
		col := writer.NewColumn(builder)
		col.SetName(c.name)
		col.SetTitle(c.name)
		col.SetType(c.colType)
		col.SetNullable(true)
		headerColumns = append(headerColumns, col)
	}
	header.SetColumns(headerColumns)

	crs := writer.NewCrs(builder)
	crs.SetOrg("EPSG")
	crs.SetCode(int32(4326))
	crs.SetName("WGS 84")
	header.SetCrs(crs)

	gen := &pointFeatureGenerator{
		features: fc.Features,
		columns:  columns,
	}

	buf := &bytes.Buffer{}
	_, err := writer.NewWriter(header, false, gen, nil).Write(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to write flatgeobuf: %w", err)
	}

	return buf.Bytes(), nil
}

// fgbColumns returns the id column followed by the union of all property names in
// sorted order. Numeric properties become doubles, strings stay strings and anything
// else is stored as json.
func fgbColumns(fc *geojson.FeatureCollection) []fgbColumn {
	types := map[string]flattypes.ColumnType{}

	for _, f := range fc.Features {
		for k, v := range f.Properties {
			t := flattypes.ColumnTypeJson
			switch v.(type) {
			case float64:
				t = flattypes.ColumnTypeDouble
			case string:
				t = flattypes.ColumnTypeString
			}

			if existing, ok := types[k]; ok && existing != t {
				t = flattypes.ColumnTypeJson
			}
			types[k] = t
		}
	}

	names := make([]string, 0, len(types))
	for k := range types {
		if k != idColumn {
			names = append(names, k)
		}
	}
	slices.Sort(names)

	columns := []fgbColumn{{name: idColumn, colType: flattypes.ColumnTypeString}}
	for _, n := range names {
		columns = append(columns, fgbColumn{name: n, colType: types[n]})
	}

	return columns
}

type pointFeatureGenerator struct {
	features []*geojson.Feature
	columns  []fgbColumn
	index    int
}

func (g *pointFeatureGenerator) Generate() *writer.Feature {
	for g.index < len(g.features) {
		f := g.features[g.index]
		g.index++

		p, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		builder := flatbuffers.NewBuilder(1024)

		geometry := writer.NewGeometry(builder)
		geometry.SetType(flattypes.GeometryTypePoint)
		geometry.SetXY([]float64{p.Lon(), p.Lat()})

		feature := writer.NewFeature(builder)
		feature.SetGeometry(geometry)
		feature.SetProperties(encodeFGBProperties(f, g.columns))

		return feature
	}

	return nil
}

// encodeFGBProperties writes each non null value as a little endian column index
// followed by the value. Strings and json are prefixed with their length.
func encodeFGBProperties(f *geojson.Feature, columns []fgbColumn) []byte {
	buf := &bytes.Buffer{}

	for idx, c := range columns {
		var value any
		if c.name == idColumn {
			if f.ID == nil {
				continue
			}
			value = fmt.Sprintf("%v", f.ID)
		} else {
			v, ok := f.Properties[c.name]
			if !ok || v == nil {
				continue
			}
			value = v
		}

		binary.Write(buf, binary.LittleEndian, uint16(idx))

		switch c.colType {
		case flattypes.ColumnTypeDouble:
			binary.Write(buf, binary.LittleEndian, math.Float64bits(value.(float64)))
		case flattypes.ColumnTypeString:
			writeFGBString(buf, []byte(value.(string)))
		default:
			b, err := json.Marshal(value)
			if err != nil {
				b = []byte("null")
			}
			writeFGBString(buf, b)
		}
	}

	return buf.Bytes()
}

func writeFGBString(buf *bytes.Buffer, b []byte) {
	binary.Write(buf, binary.LittleEndian, uint32(len(b)))
	buf.Write(b)
}
