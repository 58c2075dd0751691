package plating

import (
	"strconv"

	"plating-ca/internal/core"
)

// Parameters reports the board configuration and live progress counters.
func (b *Board) Parameters() core.ParameterSnapshot {
	cov := b.Coverage()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", b.cfg.Width),
				intParam("h", "Height", b.cfg.Height),
				int64Param("seed", "Seed", b.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Survival rule", string(b.cfg.Params.Rule)),
				stringParam("neighborhood", "Activation neighborhood", string(b.cfg.Params.Neighborhood)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("generation", "Generation", b.generation),
				intParam("alive", "Alive cells", cov.Alive),
				floatParam("coverage", "Interior coverage", cov.Fraction()),
				intParam("front", "Growth front row", cov.Front),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 4, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
