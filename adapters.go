package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/tidwall/gjson"
)

// correlationTopN is how many correlation entries the table shows.
const correlationTopN = 5

type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type StackedSeries struct {
	Labels     []string  `json:"labels"`
	NoDementia []float64 `json:"no_dementia"`
	Dementia   []float64 `json:"dementia"`
}

type RadarDataset struct {
	Label string     `json:"label"`
	Data  []float64  `json:"data"`
	Color RadarColor `json:"color"`
}

type RadarInput struct {
	Labels   []string       `json:"labels"`
	Datasets []RadarDataset `json:"datasets"`
}

type CorrelationEntry struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// SummaryStats keeps the backend's own formatting of each figure.
type SummaryStats struct {
	Total            string `json:"total"`
	PercentAlzheimer string `json:"percent_alzheimer"`
	MeanAge          string `json:"mean_age"`
	GenderMale       string `json:"gender_male"`
	GenderFemale     string `json:"gender_female"`
}

func adaptSummary(doc gjson.Result) (SummaryStats, error) {
	if !doc.IsObject() {
		return SummaryStats{}, noData("summary")
	}
	field := func(name string) string {
		v := doc.Get(name)
		if !v.Exists() || v.Type == gjson.Null {
			return "n/a"
		}
		return v.String()
	}
	return SummaryStats{
		Total:            field("total"),
		PercentAlzheimer: field("percent_alzheimer"),
		MeanAge:          field("mean_age"),
		GenderMale:       field("gender_male"),
		GenderFemale:     field("gender_female"),
	}, nil
}

// labelValueAdapter reads a `labels` array and the co-indexed numeric array
// named valuesField.
func labelValueAdapter(valuesField string) func(gjson.Result) (Series, error) {
	return func(doc gjson.Result) (Series, error) {
		labels := doc.Get("labels")
		values := doc.Get(valuesField)
		if !labels.IsArray() || !values.IsArray() {
			return Series{}, noData("labels/" + valuesField)
		}
		vs, err := floatsOf(values, valuesField)
		if err != nil {
			return Series{}, err
		}
		return Series{Labels: stringsOf(labels), Values: vs}, nil
	}
}

// categoryAdapter reshapes a mapping keyed by CategoryKey. With an empty
// path each entry must be a bare number; otherwise path names the nested
// field to extract, e.g. "MMSE.mean".
func categoryAdapter(order []CategoryKey, path string) func(gjson.Result) (Series, error) {
	return func(doc gjson.Result) (Series, error) {
		if !doc.IsObject() {
			return Series{}, noData("category mapping")
		}

		entries := make(map[CategoryKey]gjson.Result)
		var seen []CategoryKey
		doc.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if _, dup := entries[k]; !dup {
				seen = append(seen, k)
			}
			entries[k] = value
			return true
		})
		if len(seen) == 0 {
			return Series{}, noData("category mapping")
		}

		out := Series{}
		for _, k := range orderedKeys(order, seen) {
			v := entries[k]
			field := k
			if path != "" {
				v = v.Get(path)
				field = k + "." + path
			}
			if v.Type != gjson.Number {
				return Series{}, &ShapeError{Field: field}
			}
			out.Labels = append(out.Labels, categoryLabel(k))
			out.Values = append(out.Values, v.Float())
		}
		return out, nil
	}
}

func adaptEducation(doc gjson.Result) (StackedSeries, error) {
	labels := doc.Get("labels")
	if !labels.IsArray() {
		return StackedSeries{}, noData("labels")
	}
	noDementia, err := floatsOf(doc.Get("no_dementia"), "no_dementia")
	if err != nil {
		return StackedSeries{}, err
	}
	dementia, err := floatsOf(doc.Get("dementia"), "dementia")
	if err != nil {
		return StackedSeries{}, err
	}
	return StackedSeries{Labels: stringsOf(labels), NoDementia: noDementia, Dementia: dementia}, nil
}

func radarAdapter(theme *Theme) func(gjson.Result) (RadarInput, error) {
	return func(doc gjson.Result) (RadarInput, error) {
		labels := doc.Get("labels")
		datasets := doc.Get("datasets")
		if !labels.IsArray() || !datasets.IsArray() {
			return RadarInput{}, noData("labels/datasets")
		}

		out := RadarInput{Labels: stringsOf(labels)}
		for i, ds := range datasets.Array() {
			data, err := floatsOf(ds.Get("data"), fmt.Sprintf("datasets.%d.data", i))
			if err != nil {
				return RadarInput{}, err
			}
			out.Datasets = append(out.Datasets, RadarDataset{
				Label: ds.Get("label").String(),
				Data:  data,
				Color: theme.radarColor(i),
			})
		}
		return out, nil
	}
}

func adaptCorrelation(doc gjson.Result) ([]CorrelationEntry, error) {
	features := doc.Get("features")
	values := doc.Get("values")
	if !features.IsArray() || !values.IsArray() {
		return nil, noData("features/values")
	}
	vs, err := floatsOf(values, "values")
	if err != nil {
		return nil, err
	}
	return topCorrelations(stringsOf(features), vs, correlationTopN), nil
}

// topCorrelations zips features with values and keeps the n strongest by
// absolute value. Equal magnitudes keep their input order.
func topCorrelations(features []string, values []float64, n int) []CorrelationEntry {
	size := min(len(features), len(values))
	entries := make([]CorrelationEntry, 0, size)
	for i := 0; i < size; i++ {
		entries = append(entries, CorrelationEntry{Feature: features[i], Value: values[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return math.Abs(entries[i].Value) > math.Abs(entries[j].Value)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func stringsOf(arr gjson.Result) []string {
	if !arr.IsArray() {
		return []string{}
	}
	items := arr.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

// floatsOf reads a numeric array. An absent or null field gives an empty,
// non-nil slice; a scalar in place of the array or a non-numeric element is a
// ShapeError naming field.
func floatsOf(arr gjson.Result, field string) ([]float64, error) {
	if !arr.Exists() || arr.Type == gjson.Null {
		return []float64{}, nil
	}
	if !arr.IsArray() {
		return nil, &ShapeError{Field: field}
	}
	items := arr.Array()
	out := make([]float64, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.Number {
			return nil, &ShapeError{Field: fmt.Sprintf("%s.%d", field, i)}
		}
		out = append(out, item.Float())
	}
	return out, nil
}
