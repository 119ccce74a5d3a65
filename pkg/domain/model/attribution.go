package model

// FeatureAttribution is a single feature row of the Model Interpretability
// section. SHAP and LIME values are pre-computed display values from the
// dataset; nothing in this system derives them.
type FeatureAttribution struct {
	Feature    string
	SHAPValue  float64
	LIMEWeight float64
}
