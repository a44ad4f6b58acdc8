package termtest

// Feature names for the renderer capabilities that vary across terminals.
const (
	FeatureTrueColor  = "truecolor"
	FeatureBoxDrawing = "box_drawing"
	FeatureBraille    = "braille"
	FeatureBlocks     = "block_glyphs"
	FeatureAltScreen  = "alt_screen"
	FeatureResize     = "resize_events"
)

// Features returns every graded feature name.
func Features() []string {
	return []string{
		FeatureTrueColor,
		FeatureBoxDrawing,
		FeatureBraille,
		FeatureBlocks,
		FeatureAltScreen,
		FeatureResize,
	}
}

// Support statuses.
const (
	StatusFull        = "full"
	StatusDegraded    = "degraded"
	StatusUnsupported = "unsupported"
)

// Support grades one feature on one terminal. Workaround is set whenever
// the status is not full.
type Support struct {
	Feature    string
	Terminal   string
	Status     string
	Workaround string
}

// Check grades every feature against the profile.
func Check(p Profile) []Support {
	features := Features()
	results := make([]Support, 0, len(features))
	for _, f := range features {
		results = append(results, checkFeature(f, p))
	}
	return results
}

func checkFeature(feature string, p Profile) Support {
	s := Support{Feature: feature, Terminal: p.Name, Status: StatusFull}

	switch feature {
	case FeatureTrueColor:
		if !p.TrueColor() {
			s.Status = StatusDegraded
			s.Workaround = "map the palette to the 256-color cube with theme.Downsample"
		}
	case FeatureBoxDrawing:
		if !p.BoxDrawing {
			s.Status = StatusUnsupported
			s.Workaround = "configure widgets without borders"
		}
	case FeatureBraille:
		if !p.Braille {
			s.Status = StatusUnsupported
			s.Workaround = "plot series with a sparkline's block glyphs instead of a chart"
		}
	case FeatureBlocks:
		if !p.Blocks {
			s.Status = StatusDegraded
			s.Workaround = "progress bars and sparklines round to whole cells"
		}
	case FeatureAltScreen:
		if !p.AltScreen {
			s.Status = StatusDegraded
			s.Workaround = "run on the inline backend below the prompt"
		}
	case FeatureResize:
		if !p.Resize {
			s.Status = StatusDegraded
			s.Workaround = "re-read the terminal size before every frame"
		}
	}
	return s
}
