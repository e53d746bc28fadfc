package search

import "github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"

// suggestions derives advice from the final filtered count. The zero-count
// and high-count branches are mutually exclusive by construction.
func suggestions(filtered int64, relaxed bool, in intent.Intent, highWater int64) []string {
	var out []string
	switch {
	case filtered == 0:
		out = append(out, "No homestays matched. Try broader keywords or fewer required features.")
		if in.MinRating != nil || in.MinAverageRating != nil {
			out = append(out, "Lowering the minimum rating may return more results.")
		}
	case filtered > highWater:
		out = append(out, "Large result set. Add a minimum rating or narrow the location to refine it.")
	}
	if relaxed && filtered > 0 {
		out = append(out, "Strict filters matched nothing, so required features were treated as optional.")
	}
	return out
}
