package model

// DataSource is a single row of the Data Sources section. Share is the
// percentage contribution of the source to the model, in [0, 100].
type DataSource struct {
	Name  string
	Share float64
}
