package inline

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/stylepick/stylepick/studio"
)

type Applied struct {
	Attribute string `json:"attribute" jsonschema:"enum=font,enum=size,enum=color"`
	Key       string `json:"key"`
}

type Output struct {
	Applied []*Applied     `json:"applied"`
	Preview studio.Preview `json:"preview"`
}

func asJson(picks []Pick, preview studio.Preview) ([]byte, error) {
	applied := lo.Map(picks, func(p Pick, _ int) *Applied {
		return &Applied{
			Attribute: p.Attribute.String(),
			Key:       p.Key,
		}
	})

	return json.Marshal(&Output{
		Applied: applied,
		Preview: preview,
	})
}
