package props

// DataPoint is one sample in a dataset.
type DataPoint struct {
	X float64
	Y float64
}

// Dataset is a named series of points for chart widgets.
type Dataset struct {
	Name   string
	Style  Style
	Points []DataPoint
}

// NewDataset returns an empty named series.
func NewDataset(name string) Dataset {
	return Dataset{Name: name}
}

// WithStyle returns the dataset drawn in the given style.
func (d Dataset) WithStyle(s Style) Dataset {
	d.Style = s
	return d
}

// Push returns the dataset with one more point appended.
func (d Dataset) Push(x, y float64) Dataset {
	d.Points = append(d.Points, DataPoint{X: x, Y: y})
	return d
}

// Equal reports whether two datasets hold the same name, style and points.
func (d Dataset) Equal(o Dataset) bool {
	if d.Name != o.Name || d.Style != o.Style || len(d.Points) != len(o.Points) {
		return false
	}
	for i := range d.Points {
		if d.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}
