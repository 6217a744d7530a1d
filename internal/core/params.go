package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value a simulation reports about itself.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the values a sim currently runs with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, value int64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

// FloatParam builds a floating point Parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
