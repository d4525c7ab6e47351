package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"matchnet/nn"
)

// ParamData represents one serializable matrix or vector.
type ParamData struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// LayerParams contains the weight matrix and bias vector of one
// transition.
type LayerParams struct {
	Weight *ParamData `json:"weight"`
	Bias   *ParamData `json:"bias"`
}

// ModelParams represents all generated parameters of a network, ordered
// by transition.
type ModelParams struct {
	Version string        `json:"version"`
	Seed    int64         `json:"seed"`
	Layers  []LayerParams `json:"layers"`
}

// SaveParams saves model parameters to a JSON file.
func SaveParams(filepath string, params *ModelParams) error {
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadParams loads model parameters from a JSON file.
func LoadParams(filepath string) (*ModelParams, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}
	var params ModelParams
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}
	return &params, nil
}

// FromNetwork converts generated parameters to their serializable form.
func FromNetwork(seed int64, p nn.Params) *ModelParams {
	mp := &ModelParams{Version: "1.0", Seed: seed, Layers: make([]LayerParams, len(p))}
	for l, layer := range p {
		r, c := layer.W.Dims()
		w := make([]float64, r*c)
		for i := 0; i < r; i++ {
			copy(w[i*c:(i+1)*c], layer.W.RawRowView(i))
		}
		b := append([]float64(nil), layer.B.RawVector().Data...)
		mp.Layers[l] = LayerParams{
			Weight: &ParamData{Shape: []int{r, c}, Data: w},
			Bias:   &ParamData{Shape: []int{r}, Data: b},
		}
	}
	return mp
}

// ToNetwork converts serialized parameters back into network form,
// checking that every shape is consistent.
func ToNetwork(mp *ModelParams) (nn.Params, error) {
	if len(mp.Layers) == 0 {
		return nil, fmt.Errorf("params document has no layers")
	}
	p := make(nn.Params, len(mp.Layers))
	for l, lp := range mp.Layers {
		if lp.Weight == nil || lp.Bias == nil {
			return nil, fmt.Errorf("layer %d is missing weight or bias", l)
		}
		if len(lp.Weight.Shape) != 2 {
			return nil, fmt.Errorf("layer %d weight shape %v is not 2-D", l, lp.Weight.Shape)
		}
		r, c := lp.Weight.Shape[0], lp.Weight.Shape[1]
		if len(lp.Weight.Data) != r*c {
			return nil, fmt.Errorf("layer %d weight has %d values, shape %v needs %d",
				l, len(lp.Weight.Data), lp.Weight.Shape, r*c)
		}
		if len(lp.Bias.Shape) != 1 || lp.Bias.Shape[0] != r || len(lp.Bias.Data) != r {
			return nil, fmt.Errorf("layer %d bias does not match %d output neurons", l, r)
		}
		p[l] = nn.Layer{
			W: mat.NewDense(r, c, append([]float64(nil), lp.Weight.Data...)),
			B: mat.NewVecDense(r, append([]float64(nil), lp.Bias.Data...)),
		}
	}
	return p, nil
}
