package builder

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Diff computes the RFC 7386 merge patch that transforms prev's wire output
// into next's. A client already holding prev's tree can apply the patch
// instead of re-receiving the whole document. Neither builder is validated;
// a missing root diffs as an empty object.
func Diff(prev, next *Builder) ([]byte, error) {
	prevJSON, err := json.Marshal(prev.Serialize())
	if err != nil {
		return nil, fmt.Errorf("marshal previous tree: %w", err)
	}
	nextJSON, err := json.Marshal(next.Serialize())
	if err != nil {
		return nil, fmt.Errorf("marshal next tree: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(prevJSON, nextJSON)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return patch, nil
}
