package editor

// Layout maps between logical columns and horizontal positions. The engine
// never measures text itself; the rendering layer supplies this.
type Layout interface {
	// ColumnX returns the horizontal position of column in line.
	ColumnX(line string, column int) int
	// ResolveColumn returns the column in line closest to targetX.
	ResolveColumn(line string, targetX int) int
}

// Monospace is a Layout where every unit is one position wide.
type Monospace struct{}

func (Monospace) ColumnX(line string, column int) int {
	return max(0, min(column, len(line)))
}

func (Monospace) ResolveColumn(line string, targetX int) int {
	return max(0, min(targetX, len(line)))
}
