package tables

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ShadingResult describes whether a cell is visually shaded.
type ShadingResult struct {
	Shaded bool
	Fill   string // normalized fill, set only when Shaded
}

// ResolveShading reports whether a cell carries a direct fill that is
// neither AUTO nor white. Row and table style shading is not considered,
// so banded table styles never count as shading. trace may be nil.
func ResolveShading(c *wml.Cell, trace *slog.Logger) ShadingResult {
	fill := c.Fill()
	res := ShadingResult{}
	if fill != "" && fill != "AUTO" && fill != "FFFFFF" && wml.IsHexColor(fill) {
		res = ShadingResult{Shaded: true, Fill: fill}
	}
	logging.Or(trace).Debug("shading resolved",
		slog.String("fill", fill),
		slog.Bool("shaded", res.Shaded))
	return res
}
