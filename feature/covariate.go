package feature

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Covariate labels an exogenous regressor column such as a weather
// measurement supplied by the caller.
type Covariate struct {
	Name string `json:"name"`
}

func NewCovariate(name string) *Covariate {
	return &Covariate{name}
}

func (c Covariate) String() string {
	return fmt.Sprintf("cov_%s", c.Name)
}

func (c Covariate) Get(label string) (string, bool) {
	if strings.ToLower(label) == "name" {
		return c.Name, true
	}
	return "", false
}

func (c Covariate) Type() FeatureType {
	return FeatureTypeCovariate
}

func (c Covariate) Decode() map[string]string {
	res := make(map[string]string)
	res["name"] = c.Name
	return res
}

func (c *Covariate) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &labelStr); err != nil {
		return err
	}
	c.Name = labelStr.Name
	return nil
}
