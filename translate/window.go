package translate

import (
	"encoding/json"

	"github.com/serverless/stream-functions/function"
)

// stashWindowConfig merges the windowing parameters into the user-config bag
// under the reserved key, stashing the user's class name inside the block.
// The caller's WindowConfig is not mutated.
func stashWindowConfig(configs map[string]interface{}, windowConfig *function.WindowConfig, className string) {
	window := *windowConfig
	window.ActualWindowFunctionClassName = className
	configs[function.WindowConfigKey] = window
}

// extractWindowConfig deserializes the descriptor's user-config string and
// splits out the reserved windowing block, if present. The returned map never
// contains the reserved key.
func extractWindowConfig(serialized string) (map[string]interface{}, *function.WindowConfig, error) {
	if serialized == "" {
		return map[string]interface{}{}, nil, nil
	}

	userConfig := map[string]interface{}{}
	if err := json.Unmarshal([]byte(serialized), &userConfig); err != nil {
		return nil, nil, err
	}

	raw, ok := userConfig[function.WindowConfigKey]
	if !ok {
		return userConfig, nil, nil
	}
	delete(userConfig, function.WindowConfigKey)

	// The block arrives as an untyped map; round-trip it through JSON to get
	// the typed record back.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, err
	}
	windowConfig := &function.WindowConfig{}
	if err := json.Unmarshal(encoded, windowConfig); err != nil {
		return nil, nil, err
	}

	return userConfig, windowConfig, nil
}
